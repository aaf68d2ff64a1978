// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"fmt"
	"strings"
)

// Colour identifies one of the eight standard terminal colours.
type Colour uint

const (
	// BLACK terminal colour
	BLACK Colour = iota
	// RED terminal colour
	RED
	// GREEN terminal colour
	GREEN
	// YELLOW terminal colour
	YELLOW
	// BLUE terminal colour
	BLUE
	// MAGENTA terminal colour
	MAGENTA
	// CYAN terminal colour
	CYAN
	// WHITE terminal colour
	WHITE
)

// AnsiEscape represents an ANSI escape sequence used for formatting text in a
// terminal, built from a sequence of SGR codes.
type AnsiEscape struct {
	codes []uint
}

// NewAnsiEscape constructs an empty escape.
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{nil}
}

// ResetAnsiEscape constructs an escape which resets all formatting.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{0}}
}

// BoldAnsiEscape constructs an escape for bold text.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{1}}
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col Colour) AnsiEscape {
	return p.with(30 + uint(col))
}

// BgColour sets the background colour
func (p AnsiEscape) BgColour(col Colour) AnsiEscape {
	return p.with(40 + uint(col))
}

// Build constructs the final escape sequence.  An empty escape yields the empty
// string.
func (p AnsiEscape) Build() string {
	if len(p.codes) == 0 {
		return ""
	}
	//
	var codes = make([]string, len(p.codes))
	//
	for i, c := range p.codes {
		codes[i] = fmt.Sprintf("%d", c)
	}
	//
	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";"))
}

// Wrap some text in this escape, such that formatting is reset afterwards.  If
// escapes are disabled, the text is returned unchanged.
func (p AnsiEscape) Wrap(text string, enable bool) string {
	if !enable || len(p.codes) == 0 {
		return text
	}
	//
	return p.Build() + text + ResetAnsiEscape().Build()
}

func (p AnsiEscape) with(code uint) AnsiEscape {
	codes := make([]uint, len(p.codes), len(p.codes)+1)
	copy(codes, p.codes)
	//
	return AnsiEscape{append(codes, code)}
}

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
package source

import (
	"fmt"
	"os"
	"sort"
)

// File represents a given source file (typically stored on disk, but
// expressions typed on the command line are wrapped in the same way).
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
	// Starting offset of each line, computed on demand.
	lines []int
}

// ReadFile reads a given source file from disk, or produces an error.
func ReadFile(filename string) (*File, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return NewSourceFile(filename, bytes), nil
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	// Convert bytes into runes for easier parsing
	return &File{filename, []rune(string(bytes)), nil}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// FindFirstEnclosingLine determines the first line in this source file which
// encloses the start of a span.  If the start is beyond the bounds of the file
// then the last physical line is returned.  The returned line need not enclose
// the entire span, since spans can cross multiple lines.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	var (
		offsets = s.lineOffsets()
		// Index of the last line starting at or before the span.
		n = sort.SearchInts(offsets, span.start+1) - 1
	)
	//
	start := offsets[max(n, 0)]
	end := len(s.contents)
	//
	if n+1 < len(offsets) {
		// Exclude the newline itself
		end = offsets[n+1] - 1
	}
	//
	return Line{s.contents, Span{start, end}, max(n, 0) + 1}
}

func (s *File) lineOffsets() []int {
	if s.lines == nil {
		s.lines = []int{0}
		//
		for i, c := range s.contents {
			if c == '\n' {
				s.lines = append(s.lines, i+1)
			}
		}
	}
	//
	return s.lines
}

// Line provides information about a given line within a source file.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// String returns the contents of this line (without its newline).
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line in a file has
// line number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original text.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// SyntaxError is a structured error which retains the span of the original
// text where an error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface, reporting the line and column (both
// counting from 1) at which this error starts.
func (p *SyntaxError) Error() string {
	line := p.FirstEnclosingLine()
	//
	return fmt.Sprintf("%s:%d:%d: %s", p.srcfile.filename, line.Number(), p.span.start-line.Start()+1, p.msg)
}

// FirstEnclosingLine determines the first line in the source file to which this
// error is associated.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}

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
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter is useful for printing tables to the terminal.  Rows are added
// incrementally, and cells can be given an escape (e.g. for colour).
type TablePrinter struct {
	widths        []uint
	maxWidths     []uint
	rows          [][]string
	escapes       [][]AnsiEscape
	enableEscapes bool
}

// NewTablePrinter constructs a new table with a given number of columns.
func NewTablePrinter(columns uint) *TablePrinter {
	return &TablePrinter{make([]uint, columns), make([]uint, columns), nil, nil, true}
}

// Width returns the number of columns in this table.
func (p *TablePrinter) Width() uint {
	return uint(len(p.widths))
}

// Height returns the number of rows in this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// AddRow appends a row to this table, returning its index.
func (p *TablePrinter) AddRow(vals ...string) uint {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	for i, val := range vals {
		p.widths[i] = max(p.widths[i], uint(utf8.RuneCountInString(val)))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]AnsiEscape, len(vals)))
	//
	return uint(len(p.rows) - 1)
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// SetEscape sets the escape to use when printing a given cell.
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// them as, otherwise, you get a lot of visible escape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetMaxWidth puts an upper bound on the width of a given column, where zero
// means unbounded.  Cells exceeding this are truncated.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.maxWidths[col] = width
}

// Print the table to a given writer.
func (p *TablePrinter) Print(w io.Writer) {
	for i, row := range p.rows {
		var builder strings.Builder
		//
		for j, cell := range row {
			width := p.widths[j]
			//
			if p.maxWidths[j] > 0 {
				width = min(width, p.maxWidths[j])
			}
			//
			text := truncate(cell, width)
			text += strings.Repeat(" ", int(width)-utf8.RuneCountInString(text))
			//
			builder.WriteString(" ")
			builder.WriteString(p.escapes[i][j].Wrap(text, p.enableEscapes))
			builder.WriteString(" |")
		}
		//
		fmt.Fprintln(w, builder.String())
	}
}

// Truncate a string to a given width (in runes), marking truncation with "..".
func truncate(text string, width uint) string {
	var runes = []rune(text)
	//
	if uint(len(runes)) <= width {
		return text
	} else if width <= 2 {
		return string(runes[:width])
	}
	//
	return string(runes[:width-2]) + ".."
}

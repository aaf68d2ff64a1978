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
package sexp

import (
	"unicode"

	"github.com/consensys/go-algebra/pkg/util/collection/stack"
	"github.com/consensys/go-algebra/pkg/util/source"
)

// Parse a given string into an S-expression, or return an error if the string
// is malformed.  A source map is also returned for debugging purposes.  An
// empty (or comment only) string yields a nil S-expression.
func Parse(s *source.File) (SExp, *source.Map[SExp], *source.SyntaxError) {
	p := NewParser(s)
	// Parse the input
	term, err := p.Parse()
	// Sanity check everything was parsed
	if err == nil {
		p.SkipWhiteSpace()
		//
		if p.index != len(p.text) {
			return nil, nil, p.errorAt(p.index, "unexpected remainder")
		}
	}
	// Done
	return term, p.srcmap, err
}

// ParseAll converts a given string into zero or more S-expressions, or returns
// an error if the string is malformed.  Unlike Parse, this continues parsing
// after the first S-expression is encountered.
func ParseAll(s *source.File) ([]SExp, *source.Map[SExp], *source.SyntaxError) {
	var (
		p     = NewParser(s)
		terms []SExp
	)
	//
	for {
		term, err := p.Parse()
		//
		if err != nil {
			return terms, p.srcmap, err
		} else if term == nil {
			return terms, p.srcmap, nil
		}
		//
		terms = append(terms, term)
	}
}

// Parser reads S-expressions from a source file one at a time.  Lists are
// parsed without recursion, hence arbitrarily deep nesting is permitted.
type Parser struct {
	srcfile *source.File
	text    []rune
	// Current position within text
	index int
	// Mapping from constructed S-Expressions to their spans in the original text.
	srcmap *source.Map[SExp]
}

// NewParser constructs a new instance of Parser
func NewParser(srcfile *source.File) *Parser {
	return &Parser{srcfile, srcfile.Contents(), 0, source.NewSourceMap[SExp](srcfile)}
}

// SourceMap returns the internal source map constructed during parsing.  Using
// this one can determine, for each SExp, where in the original text it
// originated.  This is helpful, for example, when reporting syntax errors.
func (p *Parser) SourceMap() *source.Map[SExp] {
	return p.srcmap
}

// A list whose closing bracket has not yet been reached.
type openList struct {
	start    int
	elements []SExp
}

// Parse the next S-Expression, returning nil at the end of the input.
func (p *Parser) Parse() (SExp, *source.SyntaxError) {
	var open = stack.NewStack[openList]()
	//
	for {
		var term SExp
		//
		p.SkipWhiteSpace()
		//
		start := p.index
		//
		switch {
		case p.index == len(p.text) && open.IsEmpty():
			return nil, nil
		case p.index == len(p.text):
			return nil, p.errorAt(p.index-1, "unexpected end-of-file")
		case p.text[p.index] == '(':
			p.index++
			open.Push(openList{start, nil})
			//
			continue
		case p.text[p.index] == ')':
			if open.IsEmpty() {
				return nil, p.errorAt(p.index, "unexpected end-of-list")
			}
			//
			p.index++
			list := open.Pop()
			start, term = list.start, &List{list.elements}
		default:
			term = &Symbol{string(p.parseSymbol())}
		}
		// Register item in source map
		p.srcmap.Put(term, source.NewSpan(start, p.index))
		//
		if open.IsEmpty() {
			return term, nil
		}
		//
		list := open.Peek(0)
		list.elements = append(list.elements, term)
		open.Replace(0, list)
	}
}

// SkipWhiteSpace skips over any whitespace, including comments which run from
// ';' to the end of the line.
func (p *Parser) SkipWhiteSpace() {
	for comment := false; p.index < len(p.text); p.index++ {
		switch c := p.text[p.index]; {
		case c == '\n':
			comment = false
		case c == ';':
			comment = true
		case !comment && !unicode.IsSpace(c):
			return
		}
	}
}

func (p *Parser) parseSymbol() []rune {
	var start = p.index
	//
	for ; p.index < len(p.text); p.index++ {
		if c := p.text[p.index]; c == '(' || c == ')' || c == ';' || unicode.IsSpace(c) {
			break
		}
	}
	//
	return p.text[start:p.index]
}

// Construct a parser error at a given position in the input stream.
func (p *Parser) errorAt(index int, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(source.NewSpan(index, index+1), msg)
}

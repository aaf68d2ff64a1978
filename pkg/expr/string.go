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
package expr

import (
	"math/big"
	"strings"
)

// Precedence levels used when rendering.  A subexpression whose precedence is
// below that required by its context is parenthesised.
const (
	precAdd  = 1
	precMul  = 2
	precPow  = 3
	precAtom = 4
)

// String returns a deterministic, human-readable infix rendering of a given
// expression, such as "x + 1", "-x", "x^(1/2)/x" or "sin(x)^2".  Constants of
// sums are written last, and negative terms are written as subtractions.
func (s *Store) String(id Id) string {
	str, _ := s.render(id)
	return str
}

// Render an expression returning its text and precedence.
func (s *Store) render(id Id) (string, int) {
	var node = &s.nodes[id]
	//
	switch node.op {
	case INTEGER:
		if node.value.Sign() < 0 {
			return node.value.Num().String(), precAdd
		}
		//
		return node.value.Num().String(), precAtom
	case RATIONAL:
		if node.value.Sign() < 0 {
			return node.value.String(), precAdd
		}
		//
		return node.value.String(), precMul
	case SYMBOL:
		return node.name, precAtom
	case ADD:
		return s.renderAdd(node.children), precAdd
	case MUL:
		return s.renderMul(node.children, false)
	case POW:
		if base, exponent, ok := s.reciprocal(id); ok {
			return "1/" + s.renderPower(base, exponent), precMul
		}
		//
		return s.renderPow(node.children[0], node.children[1]), precPow
	case FUNCTION:
		return node.name + "(" + s.renderList(node.children) + ")", precAtom
	case PIECEWISE:
		var builder strings.Builder
		//
		builder.WriteString("piecewise(")
		//
		for i, b := range s.Branches(id) {
			if i != 0 {
				builder.WriteString(", ")
			}
			//
			builder.WriteString("(")
			builder.WriteString(s.String(b.Value))
			builder.WriteString(", ")
			builder.WriteString(s.String(b.Condition))
			builder.WriteString(")")
		}
		//
		builder.WriteString(")")
		//
		return builder.String(), precAtom
	}
	//
	panic("unknown operator")
}

func (s *Store) renderList(items []Id) string {
	var builder strings.Builder
	//
	for i, item := range items {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(s.String(item))
	}
	//
	return builder.String()
}

func (s *Store) renderAdd(terms []Id) string {
	var builder strings.Builder
	// Move constant (if any) to the end.
	if s.IsNumber(terms[0]) {
		ordered := make([]Id, 0, len(terms))
		ordered = append(ordered, terms[1:]...)
		terms = append(ordered, terms[0])
	}
	//
	for i, t := range terms {
		switch {
		case i == 0:
			builder.WriteString(s.renderAt(t, precAdd))
		case s.isNegativeTerm(t):
			str, p := s.renderNegated(t)
			//
			builder.WriteString(" - ")
			builder.WriteString(parenthesise(str, p, precMul))
		default:
			builder.WriteString(" + ")
			builder.WriteString(s.renderAt(t, precAdd))
		}
	}
	//
	return builder.String()
}

// Determine whether a term is "negative" (i.e. a negative literal, or a product
// with a negative coefficient).
func (s *Store) isNegativeTerm(id Id) bool {
	node := &s.nodes[id]
	//
	switch {
	case node.IsNumber():
		return node.value.Sign() < 0
	case node.op == MUL:
		c := &s.nodes[node.children[0]]
		return c.IsNumber() && c.value.Sign() < 0
	}
	//
	return false
}

// Render the negation of a negative term.
func (s *Store) renderNegated(id Id) (string, int) {
	node := &s.nodes[id]
	//
	if node.IsNumber() {
		return new(big.Rat).Neg(node.value).RatString(), precMul
	}
	//
	return s.renderMul(node.children, true)
}

func (s *Store) renderMul(factors []Id, negate bool) (string, int) {
	var (
		coefficient = big.NewRat(1, 1)
		numerator   []string
		denominator []string
		builder     strings.Builder
	)
	//
	if n := &s.nodes[factors[0]]; n.IsNumber() {
		coefficient = n.value
		factors = factors[1:]
	}
	//
	if negate {
		coefficient = new(big.Rat).Neg(coefficient)
	}
	//
	if num := new(big.Int).Abs(coefficient.Num()); num.Cmp(big.NewInt(1)) != 0 {
		numerator = append(numerator, num.String())
	}
	//
	if !coefficient.IsInt() {
		denominator = append(denominator, coefficient.Denom().String())
	}
	//
	for _, f := range factors {
		if base, exponent, ok := s.reciprocal(f); ok {
			denominator = append(denominator, s.renderPower(base, exponent))
		} else {
			numerator = append(numerator, s.renderAt(f, precMul))
		}
	}
	//
	if coefficient.Sign() < 0 {
		builder.WriteString("-")
	}
	//
	if len(numerator) == 0 {
		builder.WriteString("1")
	} else {
		builder.WriteString(strings.Join(numerator, "*"))
	}
	//
	switch len(denominator) {
	case 0:
	case 1:
		builder.WriteString("/")
		builder.WriteString(denominator[0])
	default:
		builder.WriteString("/(")
		builder.WriteString(strings.Join(denominator, "*"))
		builder.WriteString(")")
	}
	//
	if coefficient.Sign() < 0 {
		return builder.String(), precAdd
	}
	//
	return builder.String(), precMul
}

// Check whether a given factor has a negative integer exponent and, if so,
// return its base and the negated exponent.
func (s *Store) reciprocal(id Id) (Id, *big.Int, bool) {
	node := &s.nodes[id]
	//
	if node.op == POW {
		if e := &s.nodes[node.children[1]]; e.IsInteger() && e.value.Sign() < 0 {
			return node.children[0], new(big.Int).Neg(e.value.Num()), true
		}
	}
	//
	return 0, nil, false
}

// Render base^exponent for a positive integer exponent, as it appears in the
// denominator of a product.
func (s *Store) renderPower(base Id, exponent *big.Int) string {
	if exponent.IsInt64() && exponent.Int64() == 1 {
		return s.renderAt(base, precPow)
	}
	//
	return s.renderAt(base, precAtom) + "^" + exponent.String()
}

func (s *Store) renderPow(base Id, exponent Id) string {
	var (
		b = s.renderAt(base, precAtom)
		e = &s.nodes[exponent]
	)
	//
	if e.op == SYMBOL || (e.IsInteger() && e.value.Sign() >= 0) {
		return b + "^" + s.String(exponent)
	}
	//
	return b + "^(" + s.String(exponent) + ")"
}

// Render an expression, parenthesising if its precedence is below that given.
func (s *Store) renderAt(id Id, prec int) string {
	str, p := s.render(id)
	//
	return parenthesise(str, p, prec)
}

func parenthesise(str string, p int, prec int) string {
	if p < prec {
		return "(" + str + ")"
	}
	//
	return str
}

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
	"slices"

	"github.com/consensys/go-algebra/pkg/util/math"
)

// MAX_FOLD_BITS bounds the size (in bits) of integer powers folded during
// construction.  Larger powers are kept as POW nodes.
const MAX_FOLD_BITS = 4096

// Add constructs the canonical sum of zero or more expressions.  Nested sums
// are flattened (one level, since children are already canonical), numeric
// children are folded into a single constant, zero is dropped and the remaining
// terms are sorted.  An empty sum is 0, and a sum of one term is that term.
func (s *Store) Add(children ...Id) Id {
	var (
		constant = new(big.Rat)
		terms    []Id
	)
	//
	for _, c := range children {
		node := &s.nodes[c]
		//
		switch {
		case node.op == ADD:
			for _, d := range node.children {
				if n := &s.nodes[d]; n.IsNumber() {
					constant.Add(constant, n.value)
				} else {
					terms = append(terms, d)
				}
			}
		case node.IsNumber():
			constant.Add(constant, node.value)
		default:
			terms = append(terms, c)
		}
	}
	//
	return s.assemble(ADD, constant, terms)
}

// Mul constructs the canonical product of zero or more expressions.  Nested
// products are flattened, numeric children are folded into a single
// coefficient, one is dropped and the remaining factors are sorted.  A zero
// coefficient makes the whole product 0.  An empty product is 1, and a product
// of one factor is that factor.
func (s *Store) Mul(children ...Id) Id {
	var (
		constant = big.NewRat(1, 1)
		factors  []Id
	)
	//
	for _, c := range children {
		node := &s.nodes[c]
		//
		switch {
		case node.op == MUL:
			for _, d := range node.children {
				if n := &s.nodes[d]; n.IsNumber() {
					constant.Mul(constant, n.value)
				} else {
					factors = append(factors, d)
				}
			}
		case node.IsNumber():
			constant.Mul(constant, node.value)
		default:
			factors = append(factors, c)
		}
	}
	//
	if constant.Sign() == 0 {
		return s.Integer(0)
	}
	//
	return s.assemble(MUL, constant, factors)
}

// Assemble a sum or product from its folded constant and remaining children.
func (s *Store) assemble(op Op, constant *big.Rat, rest []Id) Id {
	var (
		neutral  = op == ADD && constant.Sign() == 0 || op == MUL && isOne(constant)
		children []Id
	)
	//
	if len(rest) == 0 {
		return s.Number(constant)
	} else if neutral && len(rest) == 1 {
		return rest[0]
	}
	//
	slices.SortFunc(rest, s.Compare)
	//
	if !neutral {
		children = make([]Id, 0, len(rest)+1)
		children = append(children, s.Number(constant))
		children = append(children, rest...)
	} else {
		children = slices.Clone(rest)
	}
	//
	return s.intern(op, nil, "", children)
}

// Pow constructs the canonical power of a base and exponent.  An exponent of one
// returns the base, and an exponent of zero returns 1 (except for 0^0 which is
// kept as is).  An integer base raised to a (reasonably small) non-negative
// integer exponent is folded.
func (s *Store) Pow(base Id, exponent Id) Id {
	var (
		b = &s.nodes[base]
		e = &s.nodes[exponent]
	)
	//
	if e.IsInteger() {
		switch {
		case isOne(e.value):
			return base
		case e.value.Sign() == 0 && b.IsNumber() && b.value.Sign() == 0:
			// 0^0 is left alone
		case e.value.Sign() == 0:
			return s.Integer(1)
		case b.IsInteger() && e.value.Sign() > 0 && e.value.Num().IsUint64():
			if r, ok := math.PowInt(b.value.Num(), e.value.Num().Uint64(), MAX_FOLD_BITS); ok {
				return s.BigInteger(r)
			}
		}
	}
	//
	return s.intern(POW, nil, "", []Id{base, exponent})
}

// Neg constructs the negation of an expression (i.e. -1 * e).
func (s *Store) Neg(e Id) Id {
	return s.Mul(s.Integer(-1), e)
}

// Sub constructs the difference of two expressions.
func (s *Store) Sub(lhs Id, rhs Id) Id {
	return s.Add(lhs, s.Neg(rhs))
}

// Div constructs the quotient of two expressions (i.e. lhs * rhs^-1).  Division
// of two literals is folded.  This panics when dividing anything by a zero
// literal.
func (s *Store) Div(lhs Id, rhs Id) Id {
	var (
		l = &s.nodes[lhs]
		r = &s.nodes[rhs]
	)
	//
	if r.IsNumber() && r.value.Sign() == 0 {
		panic("division by zero")
	} else if l.IsNumber() && r.IsNumber() {
		return s.Number(new(big.Rat).Quo(l.value, r.value))
	} else if r.IsNumber() {
		return s.Mul(lhs, s.Number(new(big.Rat).Inv(r.value)))
	}
	//
	return s.Mul(lhs, s.Pow(rhs, s.Integer(-1)))
}

// Sqrt constructs the square root of an expression (i.e. e^(1/2)).
func (s *Store) Sqrt(e Id) Id {
	return s.Pow(e, s.Number(big.NewRat(1, 2)))
}

// IsNumber checks whether a given expression is a numeric literal.
func (s *Store) IsNumber(id Id) bool {
	return s.nodes[id].IsNumber()
}

// IsValue checks whether a given expression is the integer literal k.
func (s *Store) IsValue(id Id, k int64) bool {
	node := &s.nodes[id]
	//
	return node.op == INTEGER && node.value.Num().IsInt64() && node.value.Num().Int64() == k
}

// NumberOf returns the value of a numeric literal, or false if the expression is
// not numeric.  The returned value is a copy.
func (s *Store) NumberOf(id Id) (*big.Rat, bool) {
	if node := &s.nodes[id]; node.IsNumber() {
		return new(big.Rat).Set(node.value), true
	}
	//
	return nil, false
}

// NodeCount returns the number of nodes in the tree rooted at a given
// expression, where shared subexpressions are counted once per occurrence.
func (s *Store) NodeCount(id Id) uint {
	var count uint = 1
	//
	for _, c := range s.nodes[id].children {
		count += s.NodeCount(c)
	}
	//
	return count
}

func isOne(v *big.Rat) bool {
	return v.IsInt() && v.Num().IsInt64() && v.Num().Int64() == 1
}

// Symbols returns the distinct symbol names occurring in a given expression,
// in sorted order.
func (s *Store) Symbols(id Id) []string {
	var (
		names []string
		seen  = make(map[Id]bool)
	)
	//
	s.collectSymbols(id, seen, &names)
	slices.Sort(names)
	//
	return names
}

// Contains checks whether a node with a given operator occurs anywhere in a
// given expression.
func (s *Store) Contains(id Id, op Op) bool {
	var node = &s.nodes[id]
	//
	if node.op == op {
		return true
	}
	//
	for _, c := range node.children {
		if s.Contains(c, op) {
			return true
		}
	}
	//
	return false
}

func (s *Store) collectSymbols(id Id, seen map[Id]bool, names *[]string) {
	if seen[id] {
		return
	}
	//
	seen[id] = true
	//
	if node := &s.nodes[id]; node.op == SYMBOL {
		*names = append(*names, node.name)
	} else {
		for _, c := range node.children {
			s.collectSymbols(c, seen, names)
		}
	}
}

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
	"strings"
)

// Rank of each operator in the canonical ordering.  Numbers come first, so that
// the folded constant of a sum or product is always its first child.
var opRank = [...]int{
	INTEGER:   0,
	RATIONAL:  0,
	SYMBOL:    1,
	POW:       2,
	MUL:       3,
	ADD:       4,
	FUNCTION:  5,
	PIECEWISE: 6,
}

// Compare provides a total order over the expressions of a store which depends
// only on their content (never on handles or allocation order).  Numbers are
// ordered by value, symbols by name, functions by name then arguments, and
// other composite nodes lexicographically by children then by arity.  This
// returns a negative value if lhs < rhs, zero if they are equal and a positive
// value otherwise.
func (s *Store) Compare(lhs Id, rhs Id) int {
	if lhs == rhs {
		return 0
	}
	//
	var (
		l = &s.nodes[lhs]
		r = &s.nodes[rhs]
	)
	//
	if c := opRank[l.op] - opRank[r.op]; c != 0 {
		return c
	}
	//
	switch l.op {
	case INTEGER, RATIONAL:
		return l.value.Cmp(r.value)
	case SYMBOL:
		return strings.Compare(l.name, r.name)
	case FUNCTION:
		if c := strings.Compare(l.name, r.name); c != 0 {
			return c
		}
	}
	//
	return s.compareChildren(l.children, r.children)
}

func (s *Store) compareChildren(lhs []Id, rhs []Id) int {
	n := min(len(lhs), len(rhs))
	//
	for i := 0; i < n; i++ {
		if c := s.Compare(lhs[i], rhs[i]); c != 0 {
			return c
		}
	}
	//
	return len(lhs) - len(rhs)
}

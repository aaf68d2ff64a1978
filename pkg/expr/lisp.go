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
	"github.com/consensys/go-algebra/pkg/util/source/sexp"
)

// Lisp converts an expression into an S-expression in the same syntax accepted
// by Parse.  Hence, Parse(store, Lisp(id).String(false)) returns id.
func (s *Store) Lisp(id Id) sexp.SExp {
	var node = &s.nodes[id]
	//
	switch node.op {
	case INTEGER, RATIONAL:
		return sexp.NewSymbol(node.value.RatString())
	case SYMBOL:
		return sexp.NewSymbol(node.name)
	case ADD:
		return s.lispList("+", node.children)
	case MUL:
		return s.lispList("*", node.children)
	case POW:
		return s.lispList("^", node.children)
	case FUNCTION:
		return s.lispList(node.name, node.children)
	case PIECEWISE:
		return s.lispList("piecewise", node.children)
	}
	//
	panic("unknown operator")
}

func (s *Store) lispList(head string, children []Id) *sexp.List {
	elements := make([]sexp.SExp, len(children)+1)
	elements[0] = sexp.NewSymbol(head)
	//
	for i, c := range children {
		elements[i+1] = s.Lisp(c)
	}
	//
	return sexp.NewList(elements)
}

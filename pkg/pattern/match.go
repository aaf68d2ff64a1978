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
package pattern

import (
	"maps"
	"math/big"
	"slices"

	"github.com/consensys/go-algebra/pkg/expr"
)

// Bindings maps wildcard names to the expressions they matched.
type Bindings map[string]expr.Id

// Match attempts to match a pattern against a given expression, returning the
// resulting bindings on success.  Sums and products are matched modulo
// commutativity: each argument pattern must match a distinct child of a node
// with the same operator and arity.  Matching fails fast on any operator,
// arity, literal or name mismatch.
func Match(store *expr.Store, p Pattern, id expr.Id) (Bindings, bool) {
	bindings := make(Bindings)
	//
	if match(store, p, id, bindings) {
		return bindings, true
	}
	//
	return nil, false
}

// Match a pattern against an expression, extending the given bindings.  The
// bindings may be left partially extended on failure.
func match(store *expr.Store, p Pattern, id expr.Id, bindings Bindings) bool {
	var node = store.Get(id)
	//
	switch p := p.(type) {
	case *Any:
		if p.Name == "_" {
			return true
		} else if bound, ok := bindings[p.Name]; ok {
			return bound == id
		}
		//
		bindings[p.Name] = id
		//
		return true
	case *Symbol:
		return node.IsSymbol(p.Name)
	case *Integer:
		return node.IsInteger() && node.Value().Cmp(new(big.Rat).SetInt64(p.Value)) == 0
	case *Rational:
		return node.IsNumber() && node.Value().Cmp(big.NewRat(p.Num, p.Den)) == 0
	case *Function:
		if !node.IsFunction(p.Name, len(p.Args)) {
			return false
		}
		//
		for i, arg := range p.Args {
			if !match(store, arg, node.Child(i), bindings) {
				return false
			}
		}
		//
		return true
	case *Power:
		return node.Op() == expr.POW && match(store, p.Base, node.Child(0), bindings) &&
			match(store, p.Exponent, node.Child(1), bindings)
	case *Add:
		return node.Op() == expr.ADD && matchCommutative(store, p.Args, node.Children(), bindings)
	case *Mul:
		return node.Op() == expr.MUL && matchCommutative(store, p.Args, node.Children(), bindings)
	}
	//
	return false
}

// Match the arguments of a commutative pattern against the children of a node,
// such that every child is used exactly once.
func matchCommutative(store *expr.Store, args []Pattern, children []expr.Id, bindings Bindings) bool {
	if len(args) != len(children) {
		return false
	}
	// Try the most specific patterns first
	ordered := slices.Clone(args)
	slices.SortStableFunc(ordered, func(l, r Pattern) int {
		return r.specificity() - l.specificity()
	})
	//
	return assign(store, ordered, children, make([]bool, len(children)), bindings)
}

// Assign the first pattern to an unused child, and then recursively assign the
// remainder.  Bindings are restored from a snapshot before each alternative is
// explored.
func assign(store *expr.Store, args []Pattern, children []expr.Id, used []bool, bindings Bindings) bool {
	if len(args) == 0 {
		return true
	}
	//
	snapshot := maps.Clone(bindings)
	//
	for i, child := range children {
		if used[i] {
			continue
		}
		//
		used[i] = true
		//
		if match(store, args[0], child, bindings) && assign(store, args[1:], children, used, bindings) {
			return true
		}
		// Backtrack
		used[i] = false
		//
		clear(bindings)
		maps.Copy(bindings, snapshot)
	}
	//
	return false
}

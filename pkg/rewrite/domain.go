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
package rewrite

import (
	"math/big"

	"github.com/consensys/go-algebra/pkg/assume"
	"github.com/consensys/go-algebra/pkg/expr"
)

// RewriteDomain performs a single bottom-up pass of rewrites which are valid
// only under assumptions about the symbols involved:
//
//	abs(u)         => u or -u     when u is known non-negative or negative
//	sign(u)        => 1, -1 or 0  when the sign of u is known
//	(u^2k)^(1/2)   => u^k         when u is known non-negative
//	(u^2k)^(1/2)   => abs(u)^k    when u is known real
//	ln(u*v)        => ln(u) + ln(v) when all factors are known positive
//	ln(u^k)        => k*ln(u)     when u is known positive and k real
//
// A nil context is equivalent to an empty one.
func RewriteDomain(store *expr.Store, id expr.Id, ctx *assume.Context) expr.Id {
	var d = domain{store, ctx}
	//
	return store.Transform(id, func(id expr.Id) expr.Id {
		var node = store.Get(id)
		//
		switch {
		case node.Op() == expr.POW:
			return d.squareRoot(node, id)
		case node.IsFunction("abs", 1):
			return d.abs(node.Child(0), id)
		case node.IsFunction("sign", 1):
			return d.sign(node.Child(0), id)
		case node.IsFunction("ln", 1):
			return d.logarithm(node.Child(0), id)
		}
		//
		return id
	})
}

type domain struct {
	store *expr.Store
	ctx   *assume.Context
}

func (p domain) holds(id expr.Id, prop assume.Property) bool {
	return p.ctx.Holds(p.store, id, prop) == assume.True
}

func (p domain) abs(u expr.Id, id expr.Id) expr.Id {
	switch {
	case p.holds(u, assume.Nonnegative):
		return u
	case p.holds(u, assume.Negative):
		return p.store.Neg(u)
	}
	//
	return id
}

func (p domain) sign(u expr.Id, id expr.Id) expr.Id {
	switch {
	case p.store.IsValue(u, 0):
		return p.store.Integer(0)
	case p.holds(u, assume.Positive):
		return p.store.Integer(1)
	case p.holds(u, assume.Negative):
		return p.store.Integer(-1)
	}
	//
	return id
}

func (p domain) squareRoot(node *expr.Node, id expr.Id) expr.Id {
	var (
		store = p.store
		base  = store.Get(node.Child(0))
	)
	//
	if e, ok := store.NumberOf(node.Child(1)); !ok || e.Cmp(big.NewRat(1, 2)) != 0 || base.Op() != expr.POW {
		return id
	}
	//
	m, ok := store.NumberOf(base.Child(1))
	//
	if !ok || !m.IsInt() || m.Num().Bit(0) != 0 {
		return id
	}
	//
	var (
		u = base.Child(0)
		k = store.Number(m.Mul(m, big.NewRat(1, 2)))
	)
	//
	switch {
	case p.holds(u, assume.Nonnegative):
		return store.Pow(u, k)
	case p.holds(u, assume.Real):
		return store.Pow(store.Func("abs", u), k)
	}
	//
	return id
}

func (p domain) logarithm(u expr.Id, id expr.Id) expr.Id {
	var (
		store = p.store
		arg   = store.Get(u)
	)
	//
	switch arg.Op() {
	case expr.MUL:
		terms := make([]expr.Id, arg.Arity())
		//
		for i, f := range arg.Children() {
			if !p.holds(f, assume.Positive) {
				return id
			}
			//
			terms[i] = store.Func("ln", f)
		}
		//
		return store.Add(terms...)
	case expr.POW:
		if p.holds(arg.Child(0), assume.Positive) && p.holds(arg.Child(1), assume.Real) {
			return store.Mul(arg.Child(1), store.Func("ln", arg.Child(0)))
		}
	}
	//
	return id
}

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
package simplify

import (
	"math/big"

	"github.com/consensys/go-algebra/pkg/expr"
)

// Collect like terms, such as x + 2*x => 3*x.  Terms are grouped by their
// non-numeric part and the coefficients of each group are summed.
func collectLikeTerms(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store     = p.store
		terms     = store.Get(id).Children()
		groups    = make(map[expr.Id]*big.Rat)
		order     []expr.Id
		constant  []expr.Id
		collected = false
	)
	//
	for _, t := range terms {
		if store.IsNumber(t) {
			constant = append(constant, t)
			continue
		}
		//
		c, rest := splitCoefficient(store, t)
		//
		if sum, ok := groups[rest]; ok {
			sum.Add(sum, c)
			collected = true
		} else {
			groups[rest] = c
			order = append(order, rest)
		}
	}
	//
	if !collected {
		return id, false
	}
	//
	for _, rest := range order {
		if c := groups[rest]; c.Sign() != 0 {
			constant = append(constant, term(store, c, rest))
		}
	}
	//
	return store.Add(constant...), true
}

// Apply the Pythagorean identities c*R*sin(u)^2 + c*R*cos(u)^2 => c*R and
// c*R*cosh(u)^2 - c*R*sinh(u)^2 => c*R, for any argument u and remainder R.
func pythagoreanIdentity(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		terms = store.Get(id).Children()
	)
	//
	for _, sq := range squaredFunctions(store, terms, "sin", "cosh") {
		var partner expr.Id
		//
		if sq.name == "sin" {
			partner = term(store, sq.coefficient, sq.rest, squared(store, "cos", sq.arg))
		} else {
			partner = term(store, neg(sq.coefficient), sq.rest, squared(store, "sinh", sq.arg))
		}
		//
		if j := indexOf(terms, partner, sq.index); j >= 0 {
			args := append(without(terms, sq.index, j), term(store, sq.coefficient, sq.rest))
			return store.Add(args...), true
		}
	}
	//
	return id, false
}

// Apply the complementary forms of the Pythagorean identities, such as
// c*R - c*R*sin(u)^2 => c*R*cos(u)^2 and c*R + c*R*sinh(u)^2 => c*R*cosh(u)^2.
func complementIdentity(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		terms = store.Get(id).Children()
	)
	//
	for _, sq := range squaredFunctions(store, terms, "sin", "cos", "sinh", "cosh") {
		var (
			c         = sq.coefficient
			partner   expr.Id
			remainder expr.Id
		)
		//
		switch sq.name {
		case "sin":
			partner = term(store, neg(c), sq.rest)
			remainder = term(store, neg(c), sq.rest, squared(store, "cos", sq.arg))
		case "cos":
			partner = term(store, neg(c), sq.rest)
			remainder = term(store, neg(c), sq.rest, squared(store, "sin", sq.arg))
		case "sinh":
			partner = term(store, c, sq.rest)
			remainder = term(store, c, sq.rest, squared(store, "cosh", sq.arg))
		case "cosh":
			partner = term(store, neg(c), sq.rest)
			remainder = term(store, c, sq.rest, squared(store, "sinh", sq.arg))
		}
		//
		if j := indexOf(terms, partner, sq.index); j >= 0 {
			args := append(without(terms, sq.index, j), remainder)
			return store.Add(args...), true
		}
	}
	//
	return id, false
}

// Apply the double angle identities c*R*cos(u)^2 - c*R*sin(u)^2 =>
// c*R*cos(2u), k*R - 2k*R*sin(u)^2 => k*R*cos(2u) and 2k*R*cos(u)^2 - k*R =>
// k*R*cos(2u).
func doubleAngleIdentity(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		terms = store.Get(id).Children()
	)
	//
	for _, sq := range squaredFunctions(store, terms, "sin", "cos") {
		var (
			c      = sq.coefficient
			double = store.Func("cos", store.Mul(store.Integer(2), sq.arg))
		)
		//
		type candidate struct {
			partner expr.Id
			result  expr.Id
		}
		//
		var candidates []candidate
		//
		if sq.name == "cos" {
			candidates = []candidate{
				{term(store, neg(c), sq.rest, squared(store, "sin", sq.arg)), term(store, c, sq.rest, double)},
				{term(store, mulRat(c, -1, 2), sq.rest), term(store, mulRat(c, 1, 2), sq.rest, double)},
			}
		} else {
			candidates = []candidate{
				{term(store, mulRat(c, -1, 2), sq.rest), term(store, mulRat(c, -1, 2), sq.rest, double)},
			}
		}
		//
		for _, cand := range candidates {
			if j := indexOf(terms, cand.partner, sq.index); j >= 0 {
				args := append(without(terms, sq.index, j), cand.result)
				return store.Add(args...), true
			}
		}
	}
	//
	return id, false
}

// Apply the half angle identities k + k*cos(v) => 2k*cos(v/2)^2 and
// k - k*cos(v) => 2k*sin(v/2)^2, but only when this strictly reduces the size
// of the expression or, failing that, keeps its size whilst halving v into a
// smaller argument (e.g. when v = 2u).  The rewrite consumes the constant term
// of the sum, which the double angle identities require, hence the two cannot
// cycle.
func halfAngleIdentity(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		terms = store.Get(id).Children()
	)
	//
	k, ok := store.NumberOf(terms[0])
	//
	if !ok {
		return id, false
	}
	//
	for i, t := range terms[1:] {
		c, rest := splitCoefficient(store, t)
		//
		if node := store.Get(rest); !node.IsFunction("cos", 1) {
			continue
		}
		//
		var (
			arg  = store.Get(rest).Child(0)
			half = p.simplify(store.Mul(store.Number(big.NewRat(1, 2)), arg))
			tie  = store.NodeCount(half) < store.NodeCount(arg)
			name string
		)
		//
		switch {
		case c.Cmp(k) == 0:
			name = "cos"
		case c.Cmp(neg(k)) == 0:
			name = "sin"
		default:
			continue
		}
		//
		replacement := term(store, mulRat(k, 2, 1), store.Integer(1), squared(store, name, half))
		//
		if r, ok := p.reduces(id, append(without(terms, 0, i+1), replacement), tie); ok {
			return r, true
		}
	}
	//
	return id, false
}

// Apply the sum-to-product identities to pairs of terms c*f(a) and +/-c*f(b)
// where f is sin or cos, but only when this strictly reduces the size of the
// expression.
func sumToProductIdentity(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		terms = store.Get(id).Children()
	)
	//
	for i := range terms {
		for j := i + 1; j < len(terms); j++ {
			if product, ok := sumToProduct(store, terms[i], terms[j]); ok {
				if r, ok := p.reduces(id, append(without(terms, i, j), product), false); ok {
					return r, true
				}
			}
		}
	}
	//
	return id, false
}

// Construct the sum of a given set of terms and simplify it, returning the
// result only if it is strictly smaller than a given expression (or, when ties
// are permitted, no larger and different).
func (p *Simplifier) reduces(id expr.Id, terms []expr.Id, tie bool) (expr.Id, bool) {
	var (
		candidate = p.simplify(p.store.Add(terms...))
		before    = p.store.NodeCount(id)
		after     = p.store.NodeCount(candidate)
	)
	//
	if after < before || (tie && after == before && candidate != id) {
		return candidate, true
	}
	//
	return id, false
}

// Rewrite the sum of two terms c*f(a) and +/-c*f(b), where f is either sin or
// cos, as a product.
func sumToProduct(store *expr.Store, lhs expr.Id, rhs expr.Id) (expr.Id, bool) {
	var (
		lc, lf = splitCoefficient(store, lhs)
		rc, rf = splitCoefficient(store, rhs)
		ln     = store.Get(lf)
		rn     = store.Get(rf)
	)
	//
	if ln.Op() != expr.FUNCTION || ln.Arity() != 1 || ln.Name() != rn.Name() || rn.Arity() != 1 {
		return 0, false
	} else if ln.Name() != "sin" && ln.Name() != "cos" {
		return 0, false
	}
	//
	var (
		a    = ln.Child(0)
		b    = rn.Child(0)
		half = store.Number(big.NewRat(1, 2))
		sum  = store.Mul(half, store.Add(a, b))
		diff = store.Mul(half, store.Sub(a, b))
		plus = lc.Cmp(rc) == 0
	)
	//
	if !plus && lc.Cmp(neg(rc)) != 0 {
		return 0, false
	}
	//
	switch {
	case ln.Name() == "sin" && plus:
		return term(store, mulRat(lc, 2, 1), store.Func("sin", sum), store.Func("cos", diff)), true
	case ln.Name() == "sin":
		return term(store, mulRat(lc, 2, 1), store.Func("cos", sum), store.Func("sin", diff)), true
	case plus:
		return term(store, mulRat(lc, 2, 1), store.Func("cos", sum), store.Func("cos", diff)), true
	default:
		return term(store, mulRat(lc, -2, 1), store.Func("sin", sum), store.Func("sin", diff)), true
	}
}

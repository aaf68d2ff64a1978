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

	"github.com/consensys/go-algebra/pkg/assume"
	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/consensys/go-algebra/pkg/util/math"
)

// Fold powers of literals, such as (2/3)^2 => 4/9 and 2^-1 => 1/2, along with
// 1^u => 1 and 0^k => 0 for positive k.  Powers which are too large are left
// unevaluated, as is 0^k for non-positive k.
func foldLiteralPower(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store       = p.store
		node        = store.Get(id)
		base, isNum = store.NumberOf(node.Child(0))
		k, isK      = store.NumberOf(node.Child(1))
	)
	//
	switch {
	case !isNum:
		return id, false
	case store.IsValue(node.Child(0), 1):
		return store.Integer(1), true
	case base.Sign() == 0:
		if isK && k.Sign() > 0 {
			return store.Integer(0), true
		}
	case isK && k.IsInt() && k.Num().IsUint64():
		return powRat(store, id, base, k.Num().Uint64(), false)
	case isK && k.IsInt() && new(big.Int).Neg(k.Num()).IsUint64():
		return powRat(store, id, base, new(big.Int).Neg(k.Num()).Uint64(), true)
	}
	//
	return id, false
}

func powRat(store *expr.Store, id expr.Id, base *big.Rat, k uint64, invert bool) (expr.Id, bool) {
	num, ok1 := math.PowInt(base.Num(), k, expr.MAX_FOLD_BITS)
	den, ok2 := math.PowInt(base.Denom(), k, expr.MAX_FOLD_BITS)
	//
	if !ok1 || !ok2 {
		return id, false
	} else if invert {
		num, den = den, num
	}
	//
	return store.Number(new(big.Rat).SetFrac(num, den)), true
}

// Apply (u^a)^n => u^(a*n) for integer n.
func powerOfPower(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		node  = store.Get(id)
		base  = store.Get(node.Child(0))
	)
	//
	if base.Op() != expr.POW || store.Op(node.Child(1)) != expr.INTEGER {
		return id, false
	}
	//
	return store.Pow(base.Child(0), store.Mul(base.Child(1), node.Child(1))), true
}

// Apply (u*v)^n => u^n*v^n for integer n.
func powerOfProduct(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		node  = store.Get(id)
		base  = store.Get(node.Child(0))
	)
	//
	if base.Op() != expr.MUL || store.Op(node.Child(1)) != expr.INTEGER {
		return id, false
	}
	//
	factors := make([]expr.Id, base.Arity())
	//
	for i, f := range base.Children() {
		factors[i] = store.Pow(f, node.Child(1))
	}
	//
	return store.Mul(factors...), true
}

// Simplify rational powers of positive literals by extracting perfect powers
// and rationalising denominators.  For example, sqrt(12) => 2*sqrt(3),
// sqrt(4/9) => 2/3, 8^(2/3) => 4 and (1/2)^(1/2) => sqrt(2)/2.  Specifically,
// r^(p/q) = r^k * r^(s/q) where k = floor(p/q), and then for r = n/d this uses
// (n/d)^(s/q) = (n^s * d^(q-s))^(1/q) / d.
func extractRadical(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store  = p.store
		node   = store.Get(id)
		r, ok1 = store.NumberOf(node.Child(0))
		e, ok2 = store.NumberOf(node.Child(1))
	)
	//
	if !ok1 || !ok2 || r.Sign() <= 0 || e.IsInt() || !e.Denom().IsUint64() {
		return id, false
	}
	//
	var (
		k = floor(e)
		q = e.Denom().Uint64()
		// numerator of the proper fractional part
		s = new(big.Int).Sub(e.Num(), new(big.Int).Mul(k, e.Denom())).Uint64()
		// n^s * d^(q-s)
		ns, ok3 = math.PowInt(r.Num(), s, expr.MAX_FOLD_BITS)
		dq, ok4 = math.PowInt(r.Denom(), q-s, expr.MAX_FOLD_BITS)
	)
	//
	if !ok3 || !ok4 || !k.IsInt64() {
		return id, false
	}
	// r^k
	integral, ok := ratPow(r, k.Int64())
	//
	if !ok {
		return id, false
	}
	//
	var (
		m       = new(big.Int).Mul(ns, dq)
		a, b    = math.ExtractPower(m, q)
		root    expr.Id
		outside = new(big.Rat).SetFrac(a, r.Denom())
	)
	//
	switch {
	case a.Cmp(big.NewInt(1)) == 0 && r.IsInt():
		// Nothing to extract, so retain the original radicand
		root = store.Pow(store.Number(r), store.Number(ratio(s, q)))
	case b.Cmp(big.NewInt(1)) == 0:
		root = store.Integer(1)
	default:
		root = store.Pow(store.BigInteger(b), store.Number(ratio(1, q)))
	}
	//
	return store.Mul(store.Number(integral), store.Number(outside), root), true
}

// Compute r^k for a (possibly negative) integer k, provided the result is not
// too large.  This requires r to be non-zero when k is negative.
func ratPow(r *big.Rat, k int64) (*big.Rat, bool) {
	var (
		n        = uint64(k)
		num, den *big.Int
		ok1, ok2 bool
	)
	//
	if k < 0 {
		n = uint64(-k)
	}
	//
	num, ok1 = math.PowInt(r.Num(), n, expr.MAX_FOLD_BITS)
	den, ok2 = math.PowInt(r.Denom(), n, expr.MAX_FOLD_BITS)
	//
	if !ok1 || !ok2 {
		return nil, false
	} else if k < 0 {
		num, den = den, num
	}
	//
	return new(big.Rat).SetFrac(num, den), true
}

func ratio(num uint64, den uint64) *big.Rat {
	return new(big.Rat).SetFrac(new(big.Int).SetUint64(num), new(big.Int).SetUint64(den))
}

// Apply (u^m)^(1/2) => u^(m/2) for even m, provided m/2 is even or u is known
// to be non-negative.  Otherwise, (u^m)^(1/2) => abs(u)^(m/2).  This follows
// the usual convention that symbols range over the reals.
func rootOfEvenPower(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		node  = store.Get(id)
		half  = store.Number(big.NewRat(1, 2))
		base  = store.Get(node.Child(0))
	)
	//
	if node.Child(1) != half || base.Op() != expr.POW || store.Op(base.Child(1)) != expr.INTEGER {
		return id, false
	}
	//
	var (
		u    = base.Child(0)
		m, _ = store.NumberOf(base.Child(1))
	)
	//
	if m.Num().Bit(0) != 0 {
		return id, false
	}
	//
	var (
		h    = new(big.Rat).Mul(m, big.NewRat(1, 2))
		even = h.Num().Bit(0) == 0
	)
	//
	if even || p.ctx.Holds(store, u, assume.Nonnegative) == assume.True {
		return store.Pow(u, store.Number(h)), true
	}
	//
	return store.Pow(store.Func("abs", u), store.Number(h)), true
}

// Split fractional powers of symbols, such as x^(3/2) => x*x^(1/2).
func splitSymbolPower(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var node = p.store.Get(id)
	//
	return p.store.Mul(splitFractionalPower(p.store, node.Child(0), node.Child(1))...), true
}

// Apply abs(u)^m => u^m for even m, when u is known to be real.
func evenPowerOfAbs(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		node  = store.Get(id)
		base  = store.Get(node.Child(0))
		m, ok = store.NumberOf(node.Child(1))
	)
	//
	if !ok || !m.IsInt() || m.Num().Bit(0) != 0 || !base.IsFunction("abs", 1) {
		return id, false
	} else if p.ctx.Holds(store, base.Child(0), assume.Real) != assume.True {
		return id, false
	}
	//
	return store.Pow(base.Child(0), node.Child(1)), true
}

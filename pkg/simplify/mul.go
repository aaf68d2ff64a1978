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

// Collect factors with a common base by summing their exponents, such as
// x*x^2 => x^3.  Fractional powers of symbols are kept split into integral and
// proper fractional parts (e.g. x*x^(1/2) is left alone), and the numeric
// coefficient is never merged into a power.
func collectLikeBases(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store     = p.store
		c, _      = splitCoefficient(store, id)
		groups    = make(map[expr.Id][]expr.Id)
		order     []expr.Id
		collected = false
	)
	//
	for _, f := range factorsOf(store, id) {
		base, exponent := splitPower(store, f)
		//
		if _, ok := groups[base]; ok {
			collected = true
		} else {
			order = append(order, base)
		}
		//
		groups[base] = append(groups[base], exponent)
	}
	//
	if !collected {
		return id, false
	}
	//
	args := []expr.Id{store.Number(c)}
	//
	for _, base := range order {
		exponent := p.simplify(store.Add(groups[base]...))
		args = append(args, splitFractionalPower(store, base, exponent)...)
	}
	//
	return store.Mul(args...), true
}

// Split x^e, where x is a symbol and e a non-integral rational, into
// x^floor(e) * x^(e - floor(e)).  For example, x^(3/2) => x*x^(1/2) and
// x^(-1/2) => x^(1/2)/x.  Otherwise, the power is returned as is.
func splitFractionalPower(store *expr.Store, base expr.Id, exponent expr.Id) []expr.Id {
	var node = store.Get(exponent)
	//
	if store.Op(base) == expr.SYMBOL && node.Op() == expr.RATIONAL {
		var (
			e = node.Value()
			f = floor(e)
		)
		//
		if f.Sign() != 0 {
			fraction := new(big.Rat).Sub(e, new(big.Rat).SetInt(f))
			return []expr.Id{store.Pow(base, store.BigInteger(f)), store.Pow(base, store.Number(fraction))}
		}
	}
	//
	return []expr.Id{store.Pow(base, exponent)}
}

// Apply sin(u)*cos(u) => sin(2u)/2.
func sinCosProduct(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store   = p.store
		c, _    = splitCoefficient(store, id)
		factors = factorsOf(store, id)
	)
	//
	for i, f := range factors {
		if node := store.Get(f); node.IsFunction("sin", 1) {
			cos := store.Func("cos", node.Child(0))
			//
			if j := indexOf(factors, cos, i); j >= 0 {
				double := store.Func("sin", store.Mul(store.Integer(2), node.Child(0)))
				args := append(without(factors, i, j), store.Number(mulRat(c, 1, 2)), double)
				//
				return store.Mul(args...), true
			}
		}
	}
	//
	return id, false
}

// Distribute a numeric coefficient over a sum, such as 2*(x + 1) => 2*x + 2.
func distributeCoefficient(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		node  = store.Get(id)
	)
	//
	if node.Arity() != 2 || !store.IsNumber(node.Child(0)) || store.Op(node.Child(1)) != expr.ADD {
		return id, false
	}
	//
	var (
		c     = node.Child(0)
		terms = store.Get(node.Child(1)).Children()
		args  = make([]expr.Id, len(terms))
	)
	//
	for i, t := range terms {
		args[i] = store.Mul(c, t)
	}
	//
	return store.Add(args...), true
}

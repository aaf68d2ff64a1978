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
)

// Rules used to tidy up after an explicit transformation, which must not undo
// that transformation.
const cleanupRules = ARITHMETIC | TRIG_VALUES | FUNCTIONS

// ContractLogarithms combines logarithms, applying ln(u) + ln(v) => ln(u*v)
// and k*ln(u) => ln(u^k) for integer k.  This is the inverse of the logarithm
// expansion performed by Simplify and, hence, is never applied by it.  The
// result is simplified under the given assumptions, excluding logarithm
// identities.
func ContractLogarithms(store *expr.Store, id expr.Id, ctx *assume.Context) expr.Id {
	contracted := store.Transform(id, func(id expr.Id) expr.Id {
		switch store.Op(id) {
		case expr.ADD:
			return contractSum(store, id)
		case expr.MUL:
			if arg, ok := logarithmArgument(store, id); ok && arg != id {
				return store.Func("ln", arg)
			}
		}
		//
		return id
	})
	//
	return NewSimplifier(store, ctx, ALL&^LOGARITHMS).Apply(contracted)
}

// Contract all logarithmic terms of a sum into a single logarithm.
func contractSum(store *expr.Store, id expr.Id) expr.Id {
	var (
		terms []expr.Id
		args  []expr.Id
	)
	//
	for _, t := range store.Get(id).Children() {
		if arg, ok := logarithmArgument(store, t); ok {
			args = append(args, arg)
		} else {
			terms = append(terms, t)
		}
	}
	//
	if len(args) < 2 {
		return id
	}
	//
	return store.Add(append(terms, store.Func("ln", store.Mul(args...)))...)
}

// Determine u^k for a term of the form k*ln(u) with integer k.
func logarithmArgument(store *expr.Store, id expr.Id) (expr.Id, bool) {
	var (
		c, rest = splitCoefficient(store, id)
		node    = store.Get(rest)
	)
	//
	if !c.IsInt() || !node.IsFunction("ln", 1) {
		return 0, false
	}
	//
	return store.Pow(node.Child(0), store.BigInteger(c.Num())), true
}

// ExpandTrig expands products and powers of sines and cosines into sums, using
// the product-to-sum identities (e.g. sin(a)*cos(b) => (sin(a+b) + sin(a-b))/2)
// and power reduction (e.g. sin(u)^2 => (1 - cos(2u))/2).
func ExpandTrig(store *expr.Store, id expr.Id) expr.Id {
	cleanup := NewSimplifier(store, nil, cleanupRules)
	//
	for {
		next := cleanup.Apply(store.Transform(id, func(id expr.Id) expr.Id {
			return expandTrig(store, id)
		}))
		//
		if next == id {
			return id
		}
		//
		id = next
	}
}

func expandTrig(store *expr.Store, id expr.Id) expr.Id {
	var (
		node = store.Get(id)
		half = store.Number(big.NewRat(1, 2))
	)
	//
	switch node.Op() {
	case expr.POW:
		var (
			base = store.Get(node.Child(0))
			n, _ = store.NumberOf(node.Child(1))
		)
		//
		if !isSinOrCos(base) || n == nil || !n.IsInt() || n.Cmp(big.NewRat(2, 1)) < 0 {
			return id
		}
		//
		var (
			u      = base.Child(0)
			cos2u  = store.Func("cos", store.Mul(store.Integer(2), u))
			rest   = store.Pow(node.Child(0), store.Number(new(big.Rat).Sub(n, big.NewRat(2, 1))))
			reduce expr.Id
		)
		//
		if base.Name() == "sin" {
			reduce = store.Sub(store.Integer(1), cos2u)
		} else {
			reduce = store.Add(store.Integer(1), cos2u)
		}
		//
		return store.Mul(rest, half, reduce)
	case expr.MUL:
		factors := node.Children()
		//
		for i := range factors {
			for j := i + 1; j < len(factors); j++ {
				if sum, ok := productToSum(store, factors[i], factors[j]); ok {
					return store.Mul(append(without(factors, i, j), half, sum)...)
				}
			}
		}
	}
	//
	return id
}

// Rewrite the product of two sines or cosines as a sum (omitting the factor
// of 1/2).
func productToSum(store *expr.Store, lhs expr.Id, rhs expr.Id) (expr.Id, bool) {
	var (
		l = store.Get(lhs)
		r = store.Get(rhs)
	)
	//
	if !isSinOrCos(l) || !isSinOrCos(r) {
		return 0, false
	} else if l.Name() == "cos" && r.Name() == "sin" {
		l, r = r, l
	}
	//
	var (
		a    = l.Child(0)
		b    = r.Child(0)
		sum  = store.Add(a, b)
		diff = store.Sub(a, b)
	)
	//
	switch {
	case l.Name() == "sin" && r.Name() == "sin":
		return store.Sub(store.Func("cos", diff), store.Func("cos", sum)), true
	case l.Name() == "cos":
		return store.Add(store.Func("cos", diff), store.Func("cos", sum)), true
	default:
		return store.Add(store.Func("sin", sum), store.Func("sin", diff)), true
	}
}

// SumToProduct rewrites sums of sines or cosines as products, such as
// sin(a) + sin(b) => 2*sin((a+b)/2)*cos((a-b)/2).  Only pairs of terms with
// equal (or opposite) coefficients are rewritten.
func SumToProduct(store *expr.Store, id expr.Id) expr.Id {
	rewritten := store.Transform(id, func(id expr.Id) expr.Id {
		if store.Op(id) != expr.ADD {
			return id
		}
		//
		terms := store.Get(id).Children()
		//
		for i := 0; i < len(terms); i++ {
			for j := i + 1; j < len(terms); j++ {
				if product, ok := sumToProduct(store, terms[i], terms[j]); ok {
					terms = append(without(terms, i, j), product)
					i, j = -1, len(terms)
				}
			}
		}
		//
		return store.Add(terms...)
	})
	//
	return NewSimplifier(store, nil, cleanupRules).Apply(rewritten)
}

func isSinOrCos(node *expr.Node) bool {
	return node.IsFunction("sin", 1) || node.IsFunction("cos", 1)
}

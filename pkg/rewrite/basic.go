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

	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/consensys/go-algebra/pkg/util/math"
)

// Values of unary functions at zero which are folded by the basic rewrite.
var basicZeros = map[string]int64{
	"exp": 1, "sin": 0, "cos": 1, "tan": 0, "sinh": 0, "cosh": 1,
}

// RewriteBasic performs a single bottom-up pass of constant identities: ln(1)
// => 0, f(0) for exp, sin, cos, tan, sinh and cosh, abs of literals and
// literal rational powers with integer exponents.  Each node is rebuilt through
// the canonicalizing constructors, hence x^1 => x and 0 + x => x come for
// free.
func RewriteBasic(store *expr.Store, id expr.Id) expr.Id {
	return store.Transform(id, func(id expr.Id) expr.Id {
		var node = store.Get(id)
		//
		switch node.Op() {
		case expr.FUNCTION:
			return basicFunction(store, node, id)
		case expr.POW:
			return basicPower(store, node, id)
		}
		//
		return id
	})
}

func basicFunction(store *expr.Store, node *expr.Node, id expr.Id) expr.Id {
	if node.Arity() != 1 {
		return id
	}
	//
	arg := node.Child(0)
	//
	if v, ok := basicZeros[node.Name()]; ok && store.IsValue(arg, 0) {
		return store.Integer(v)
	} else if node.Name() == "ln" && store.IsValue(arg, 1) {
		return store.Integer(0)
	} else if c, ok := store.NumberOf(arg); ok && node.Name() == "abs" {
		return store.Number(c.Abs(c))
	}
	//
	return id
}

func basicPower(store *expr.Store, node *expr.Node, id expr.Id) expr.Id {
	var (
		base, ok1 = store.NumberOf(node.Child(0))
		k, ok2    = store.NumberOf(node.Child(1))
	)
	//
	if !ok1 || !ok2 || !k.IsInt() || !k.Num().IsInt64() {
		return id
	} else if base.Sign() == 0 && k.Sign() <= 0 {
		// 0^0 and 0^-k are left alone
		return id
	}
	//
	var (
		n        = k.Num().Int64()
		num, den = base.Num(), base.Denom()
	)
	//
	if n < 0 {
		num, den, n = den, num, -n
	}
	//
	p, ok1 := math.PowInt(num, uint64(n), expr.MAX_FOLD_BITS)
	q, ok2 := math.PowInt(den, uint64(n), expr.MAX_FOLD_BITS)
	//
	if !ok1 || !ok2 {
		return id
	}
	//
	return store.Number(new(big.Rat).SetFrac(p, q))
}

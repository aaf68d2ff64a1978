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
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/consensys/go-algebra/pkg/modeval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Simplify_Idempotent(t *testing.T) {
	var (
		store = expr.NewStore()
		gen   = newGenerator(store, 1, []string{"sin", "cos", "tan", "sinh", "cosh", "atan", "ln", "exp", "abs"},
			"2", "3", "-1", "1/2", "-1/2", "3/2", "y")
	)
	//
	for range 250 {
		e := gen.expr(3)
		r := Simplify(store, e)
		//
		require.Equal(t, store.String(r), store.String(Simplify(store, r)), "simplifying %s", store.String(e))
	}
}

func Test_Simplify_Sound(t *testing.T) {
	var (
		store = expr.NewStore()
		gen   = newGenerator(store, 2, []string{"f", "g"}, "0", "1", "2", "3")
	)
	//
	for range 250 {
		e := gen.expr(3)
		r := NewSimplifier(store, nil, ARITHMETIC).Apply(e)
		//
		ok, err := modeval.Equivalent(store, e, r, 4)
		require.NoError(t, err)
		assert.True(t, ok, "%s => %s", store.String(e), store.String(r))
	}
}

// Generates random expressions over the symbols x, y and z, small literals,
// a given set of unary functions and a given set of exponents.
type generator struct {
	store     *expr.Store
	rng       *rand.Rand
	functions []string
	exponents []expr.Id
}

func newGenerator(store *expr.Store, seed uint64, functions []string, exponents ...string) *generator {
	var ids = make([]expr.Id, len(exponents))
	//
	for i, e := range exponents {
		if r, ok := new(big.Rat).SetString(e); ok {
			ids[i] = store.Number(r)
		} else {
			ids[i] = store.Symbol(e)
		}
	}
	//
	return &generator{store, rand.New(rand.NewPCG(seed, seed)), functions, ids}
}

func (p *generator) expr(depth int) expr.Id {
	if depth == 0 || p.rng.IntN(4) == 0 {
		return p.leaf()
	}
	//
	switch p.rng.IntN(4) {
	case 0:
		return p.store.Add(p.exprs(depth-1, 2+p.rng.IntN(2))...)
	case 1:
		return p.store.Mul(p.exprs(depth-1, 2+p.rng.IntN(2))...)
	case 2:
		return p.store.Pow(p.expr(depth-1), p.exponents[p.rng.IntN(len(p.exponents))])
	default:
		return p.store.Func(p.functions[p.rng.IntN(len(p.functions))], p.expr(depth-1))
	}
}

func (p *generator) exprs(depth int, n int) []expr.Id {
	var ids = make([]expr.Id, n)
	//
	for i := range ids {
		ids[i] = p.expr(depth)
	}
	//
	return ids
}

func (p *generator) leaf() expr.Id {
	switch p.rng.IntN(3) {
	case 0:
		return p.store.Symbol([]string{"x", "y", "z"}[p.rng.IntN(3)])
	case 1:
		return p.store.Integer(int64(p.rng.IntN(6) - 2))
	default:
		return p.store.Number(big.NewRat(int64(p.rng.IntN(5)-2), int64(1+p.rng.IntN(3))))
	}
}

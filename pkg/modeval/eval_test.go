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
package modeval

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Eval_Literals(t *testing.T) {
	store := expr.NewStore()
	//
	checkEval(t, store, "3", nil, fr.NewElement(3))
	checkEval(t, store, "(- 3)", nil, neg(fr.NewElement(3)))
	// 1/2 * 2 = 1
	half := evalText(t, store, "1/2", nil)
	two := fr.NewElement(2)
	half.Mul(&half, &two)
	assert.True(t, half.IsOne())
}

func Test_Eval_Arithmetic(t *testing.T) {
	store := expr.NewStore()
	env := Environment{"x": fr.NewElement(5), "y": fr.NewElement(7)}
	//
	checkEval(t, store, "(+ x y 1)", env, fr.NewElement(13))
	checkEval(t, store, "(* x y 2)", env, fr.NewElement(70))
	checkEval(t, store, "(^ x 3)", env, fr.NewElement(125))
	checkEval(t, store, "(- y x)", env, fr.NewElement(2))
	// x * x^-1 = 1
	checkEval(t, store, "(* x (^ y 2) (^ x -1))", env, fr.NewElement(49))
}

func Test_Eval_Functions(t *testing.T) {
	store := expr.NewStore()
	env := Environment{"x": fr.NewElement(5), "y": fr.NewElement(5)}
	//
	fx := evalText(t, store, "(sin x)", env)
	fy := evalText(t, store, "(sin y)", env)
	gx := evalText(t, store, "(cos x)", env)
	// Uninterpreted functions agree on equal arguments only.
	assert.True(t, fx.Equal(&fy))
	assert.False(t, fx.Equal(&gx))
}

func Test_Eval_FunctionHash(t *testing.T) {
	store := expr.NewStore()
	env := Environment{"x": fr.NewElement(5)}
	// f(x) is hashed to the field from its name and the encoding of x
	five := fr.NewElement(5)
	bytes := five.Bytes()
	expected, err := fr.Hash(append([]byte("f\x00"), bytes[:]...), functionDomain, 1)
	require.NoError(t, err)
	checkEval(t, store, "(f x)", env, expected[0])
	// Arity and names are distinguished
	fx := evalText(t, store, "(f x)", env)
	fxx := evalText(t, store, "(f x x)", env)
	f := evalText(t, store, "(f)", env)
	g := evalText(t, store, "(g)", env)
	assert.False(t, fx.Equal(&fxx))
	assert.False(t, f.Equal(&g))
}

func Test_Eval_Errors(t *testing.T) {
	store := expr.NewStore()
	env := Environment{"x": fr.NewElement(0)}
	//
	for _, text := range []string{"(sqrt x)", "(^ 2 y)", "(^ x -1)", "(piecewise 1 x)"} {
		e, err := expr.Parse(store, text)
		require.NoError(t, err)
		//
		_, err = Eval(store, e, env)
		assert.ErrorIs(t, err, ErrNotEvaluable, text)
	}
	// Unbound symbol
	e, err := expr.Parse(store, "(+ x z)")
	require.NoError(t, err)
	_, err = Eval(store, e, env)
	assert.ErrorContains(t, err, "unbound symbol z")
}

func Test_Equivalent_01(t *testing.T) {
	checkEquivalent(t, "(^ (+ x 1) 2)", "(+ (^ x 2) (* 2 x) 1)", true)
	checkEquivalent(t, "(^ (+ x y) 2)", "(+ (^ x 2) (^ y 2))", false)
	checkEquivalent(t, "(/ (- (^ x 2) 1) (- x 1))", "(+ x 1)", true)
	checkEquivalent(t, "(* (sin x) (sin x))", "(^ (sin x) 2)", true)
	checkEquivalent(t, "(sin (+ x y))", "(sin (+ y x))", true)
	checkEquivalent(t, "(sin (* 2 x))", "(* 2 (sin x))", false)
}

func Test_Equivalent_02(t *testing.T) {
	store := expr.NewStore()
	lhs, err := expr.Parse(store, "(sqrt x)")
	require.NoError(t, err)
	rhs, err := expr.Parse(store, "x")
	require.NoError(t, err)
	//
	_, err = Equivalent(store, lhs, rhs, 4)
	assert.ErrorIs(t, err, ErrNotEvaluable)
}

func checkEquivalent(t *testing.T, lhs string, rhs string, expected bool) {
	store := expr.NewStore()
	l, err := expr.Parse(store, lhs)
	require.NoError(t, err)
	r, err := expr.Parse(store, rhs)
	require.NoError(t, err)
	//
	actual, err := Equivalent(store, l, r, 8)
	require.NoError(t, err)
	assert.Equal(t, expected, actual, "%s == %s", lhs, rhs)
}

func checkEval(t *testing.T, store *expr.Store, text string, env Environment, expected fr.Element) {
	actual := evalText(t, store, text, env)
	assert.True(t, actual.Equal(&expected), "%s: expected %s, got %s", text, expected.String(), actual.String())
}

func evalText(t *testing.T, store *expr.Store, text string, env Environment) fr.Element {
	e, err := expr.Parse(store, text)
	require.NoError(t, err)
	//
	v, err := Eval(store, e, env)
	require.NoError(t, err)
	//
	return v
}

func neg(x fr.Element) fr.Element {
	var res fr.Element
	return *res.Neg(&x)
}

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
	"testing"

	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/consensys/go-algebra/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Match_Function(t *testing.T) {
	s := expr.NewStore()
	x := s.Symbol("x")
	//
	b := checkMatch(t, s, "(sin ?u)", s.Func("sin", x))
	assert.Equal(t, Bindings{"u": x}, b)
	checkNoMatch(t, s, "(sin ?u)", s.Func("cos", x))
	checkNoMatch(t, s, "(sin ?u)", s.Func("sin", x, x))
	checkNoMatch(t, s, "(sin ?u)", x)
	checkMatch(t, s, "(f x)", s.Func("f", x))
	checkNoMatch(t, s, "(f x)", s.Func("f", s.Symbol("y")))
}

func Test_Match_Literals(t *testing.T) {
	s := expr.NewStore()
	x := s.Symbol("x")
	//
	checkMatch(t, s, "(^ ?x 2)", s.Pow(x, s.Integer(2)))
	checkNoMatch(t, s, "(^ ?x 2)", s.Pow(x, s.Integer(3)))
	checkMatch(t, s, "(^ ?x 1/2)", s.Sqrt(x))
	checkMatch(t, s, "(sqrt ?x)", s.Sqrt(x))
	checkNoMatch(t, s, "(^ ?x 1/2)", s.Pow(x, s.Integer(2)))
	checkMatch(t, s, "0", s.Integer(0))
	checkNoMatch(t, s, "0", s.Integer(1))
	checkNoMatch(t, s, "x", s.Symbol("y"))
}

func Test_Match_Repeated(t *testing.T) {
	s := expr.NewStore()
	x := s.Symbol("x")
	y := s.Symbol("y")
	two := s.Integer(2)
	pythagoras := "(+ (^ (sin ?u) 2) (^ (cos ?u) 2))"
	//
	b := checkMatch(t, s, pythagoras, s.Add(s.Pow(s.Func("sin", x), two), s.Pow(s.Func("cos", x), two)))
	assert.Equal(t, Bindings{"u": x}, b)
	checkNoMatch(t, s, pythagoras, s.Add(s.Pow(s.Func("sin", x), two), s.Pow(s.Func("cos", y), two)))
	checkMatch(t, s, "(f ?a ?a)", s.Func("f", x, x))
	checkNoMatch(t, s, "(f ?a ?a)", s.Func("f", x, y))
	// Anonymous wildcards never bind
	b = checkMatch(t, s, "(f ?_ ?_)", s.Func("f", x, y))
	assert.Empty(t, b)
}

func Test_Match_Commutative(t *testing.T) {
	s := expr.NewStore()
	x := s.Symbol("x")
	y := s.Symbol("y")
	z := s.Symbol("z")
	sum := s.Add(x, s.Func("sin", x))
	//
	checkMatch(t, s, "(+ ?a (sin ?a))", sum)
	checkMatch(t, s, "(+ (sin ?a) ?a)", sum)
	checkNoMatch(t, s, "(+ ?a (sin ?a))", s.Add(y, s.Func("sin", x)))
	checkNoMatch(t, s, "(+ ?a ?b)", s.Add(x, y, z))
	checkNoMatch(t, s, "(* ?a ?b)", s.Add(x, y))
	//
	b := checkMatch(t, s, "(* ?a ?a ?b)", s.Mul(y, x, x))
	assert.Equal(t, Bindings{"a": x, "b": y}, b)
	//
	b = checkMatch(t, s, "(* -1 ?a)", s.Neg(s.Func("f", x)))
	assert.Equal(t, Bindings{"a": s.Func("f", x)}, b)
	checkMatch(t, s, "(- ?a)", s.Neg(x))
}

func Test_Match_Backtracking(t *testing.T) {
	s := expr.NewStore()
	x := s.Symbol("x")
	y := s.Symbol("y")
	two := s.Integer(2)
	e := s.Add(x, s.Pow(x, two), s.Pow(y, two))
	// The first assignment of ?a must be undone
	b := checkMatch(t, s, "(+ (^ ?a 2) (^ ?b 2) ?b)", e)
	assert.Equal(t, Bindings{"a": y, "b": x}, b)
	//
	b = checkMatch(t, s, "(+ (^ ?a 2) (^ ?b 2) ?a)", e)
	assert.Equal(t, Bindings{"a": x, "b": y}, b)
	//
	checkNoMatch(t, s, "(+ (^ ?a 2) (^ ?a 2) ?b)", e)
}

func Test_Parse_Patterns(t *testing.T) {
	for _, text := range []string{
		"?x",
		"x",
		"-3",
		"1/2",
		"(+ (^ (sin ?u) 2) (^ (cos ?u) 2))",
		"(* -1 ?a (f))",
		"(ln (exp ?u))",
	} {
		p, err := Parse(text)
		require.NoError(t, err, text)
		assert.Equal(t, text, p.String())
	}
	// Normalisation
	checkPatternString(t, "(- ?a ?b)", "(+ ?a (* -1 ?b))")
	checkPatternString(t, "(/ ?a ?b)", "(* ?a (^ ?b -1))")
	checkPatternString(t, "(sqrt ?a)", "(^ ?a 1/2)")
	checkPatternString(t, "4/2", "2")
}

func Test_Parse_PatternErrors(t *testing.T) {
	for _, text := range []string{"", "(^ ?a)", "?1x", "1/0", "(+ ?a", "(1f ?a)", "#"} {
		var serr *source.SyntaxError
		//
		_, err := Parse(text)
		require.Error(t, err, text)
		assert.ErrorAs(t, err, &serr, text)
	}
}

func Test_Instantiate(t *testing.T) {
	s := expr.NewStore()
	x := s.Symbol("x")
	y := s.Symbol("y")
	//
	template, err := Parse("(+ ?a (* 2 ?b) 1/2 (^ ?a 2) (g ?b))")
	require.NoError(t, err)
	//
	id, err := Instantiate(s, template, Bindings{"a": x, "b": y})
	require.NoError(t, err)
	assert.Equal(t, "x + x^2 + 2*y + g(y) + 1/2", s.String(id))
	//
	_, err = Instantiate(s, template, Bindings{"a": x})
	assert.EqualError(t, err, "unbound wildcard ?b")
}

func Test_Wildcards(t *testing.T) {
	p, err := Parse("(+ ?b (f ?a ?b) ?_)")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, Wildcards(p))
}

func checkMatch(t *testing.T, s *expr.Store, text string, id expr.Id) Bindings {
	t.Helper()
	//
	p, err := Parse(text)
	require.NoError(t, err)
	//
	b, ok := Match(s, p, id)
	require.True(t, ok, "%s should match %s", text, s.String(id))
	//
	return b
}

func checkNoMatch(t *testing.T, s *expr.Store, text string, id expr.Id) {
	t.Helper()
	//
	p, err := Parse(text)
	require.NoError(t, err)
	//
	b, ok := Match(s, p, id)
	assert.False(t, ok, "%s should not match %s", text, s.String(id))
	assert.Nil(t, b)
}

func checkPatternString(t *testing.T, text string, expected string) {
	t.Helper()
	//
	p, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, expected, p.String())
}

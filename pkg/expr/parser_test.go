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
package expr

import (
	"math/big"
	"testing"

	"github.com/consensys/go-algebra/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_01(t *testing.T) {
	s := NewStore()
	x := s.Symbol("x")
	y := s.Symbol("y")
	//
	checkParse(t, s, "x", x)
	checkParse(t, s, "-3", s.Integer(-3))
	checkParse(t, s, "2/4", s.Number(big.NewRat(1, 2)))
	checkParse(t, s, "(+ x 1)", s.Add(x, s.Integer(1)))
	checkParse(t, s, "(+)", s.Integer(0))
	checkParse(t, s, "(* 2 x y)", s.Mul(s.Integer(2), x, y))
	checkParse(t, s, "(- x)", s.Neg(x))
	checkParse(t, s, "(- x y 1)", s.Add(x, s.Neg(y), s.Integer(-1)))
	checkParse(t, s, "(/ x 2)", s.Mul(s.Number(big.NewRat(1, 2)), x))
	checkParse(t, s, "(/ x y)", s.Mul(x, s.Pow(y, s.Integer(-1))))
	checkParse(t, s, "(^ x 2)", s.Pow(x, s.Integer(2)))
	checkParse(t, s, "(sqrt x)", s.Pow(x, s.Number(big.NewRat(1, 2))))
	checkParse(t, s, "(sin x)", s.Func("sin", x))
	checkParse(t, s, "(f)", s.Func("f"))
	checkParse(t, s, "(piecewise x (gt x 0) (- x) 1)",
		s.Piecewise(Branch{x, s.Func("gt", x, s.Integer(0))}, Branch{s.Neg(x), s.Integer(1)}))
}

func Test_Parse_02(t *testing.T) {
	s := NewStore()
	x := s.Symbol("x")
	//
	checkParse(t, s, "(+ (^ (sin x) 2) (^ (cos x) 2))",
		s.Add(s.Pow(s.Func("sin", x), s.Integer(2)), s.Pow(s.Func("cos", x), s.Integer(2))))
	checkParse(t, s, "  ; comment\n (ln (exp x_1'))", s.Func("ln", s.Func("exp", s.Symbol("x_1'"))))
}

func Test_Parse_Err(t *testing.T) {
	s := NewStore()
	//
	checkParseError(t, s, "", "empty expression")
	checkParseError(t, s, "(+ x", "")
	checkParseError(t, s, "x y", "unexpected remainder")
	checkParseError(t, s, "1/0", ErrInvalidRational.Error())
	checkParseError(t, s, "(/ x 0)", "division by zero")
	checkParseError(t, s, "(^ x)", "incorrect number of arguments")
	checkParseError(t, s, "(sqrt x y)", "incorrect number of arguments")
	checkParseError(t, s, "(-)", "incorrect number of arguments")
	checkParseError(t, s, "(piecewise x)", "piecewise requires (value, condition) pairs")
	checkParseError(t, s, "3x", "unknown symbol \"3x\"")
	checkParseError(t, s, "((f) x)", "invalid list")
	checkParseError(t, s, "(3f x)", "invalid function name \"3f\"")
}

func Test_Parse_Source(t *testing.T) {
	s := NewStore()
	srcfile := source.NewSourceFile("test.lisp", []byte("(+ x 1)\n; next\n(sin y)\n"))
	//
	ids, errs := ParseSource(s, srcfile)
	require.Empty(t, errs)
	assert.Equal(t, []Id{s.Add(s.Symbol("x"), s.Integer(1)), s.Func("sin", s.Symbol("y"))}, ids)
	//
	_, errs = ParseSource(s, source.NewSourceFile("bad.lisp", []byte("(+ x 1)\n(+ 1/0 y)")))
	require.Len(t, errs, 1)
	assert.Equal(t, "bad.lisp", errs[0].SourceFile().Filename())
}

func Test_Lisp_RoundTrip(t *testing.T) {
	s := NewStore()
	x := s.Symbol("x")
	y := s.Symbol("y")
	exprs := []Id{
		x,
		s.Integer(-7),
		s.Number(big.NewRat(-3, 4)),
		s.Add(x, s.Mul(s.Integer(-2), y), s.Integer(3)),
		s.Mul(s.Sqrt(x), s.Pow(y, s.Integer(-1))),
		s.Pow(s.Integer(0), s.Integer(0)),
		s.Func("atan2", y, x),
		s.Piecewise(Branch{x, s.Func("ge", x, s.Integer(0))}, Branch{s.Neg(x), s.Integer(1)}),
	}
	//
	for _, e := range exprs {
		text := s.Lisp(e).String(false)
		id, err := Parse(s, text)
		require.NoError(t, err, text)
		assert.Equal(t, e, id, text)
	}
}

func checkParse(t *testing.T, s *Store, text string, expected Id) {
	t.Helper()
	//
	id, err := Parse(s, text)
	require.NoError(t, err)
	assert.Equal(t, s.String(expected), s.String(id))
	assert.Equal(t, expected, id)
}

func checkParseError(t *testing.T, s *Store, text string, msg string) {
	t.Helper()
	//
	var serr *source.SyntaxError
	//
	_, err := Parse(s, text)
	require.Error(t, err, text)
	require.ErrorAs(t, err, &serr)
	//
	if msg != "" {
		assert.Equal(t, msg, serr.Message())
	}
}

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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Store_Interning(t *testing.T) {
	s := NewStore()
	x1 := s.Symbol("x")
	x2 := s.Symbol("x")
	y := s.Symbol("y")
	//
	assert.Equal(t, x1, x2)
	assert.NotEqual(t, x1, y)
	assert.Equal(t, s.Add(x1, y), s.Add(y, x2))
	assert.Equal(t, s.Mul(x1, y), s.Mul(y, x1))
	assert.Equal(t, s.Func("sin", x1), s.Func("sin", x2))
	assert.NotEqual(t, s.Func("sin", x1), s.Func("cos", x1))
	assert.Equal(t, s.Integer(2), s.BigInteger(big.NewInt(2)))
}

func Test_Store_Rational(t *testing.T) {
	s := NewStore()
	//
	half, err := s.Rational(2, 4)
	require.NoError(t, err)
	assert.Equal(t, RATIONAL, s.Op(half))
	assert.Equal(t, "1/2", s.String(half))
	//
	neg, err := s.Rational(3, -6)
	require.NoError(t, err)
	assert.Equal(t, "-1/2", s.String(neg))
	//
	two, err := s.Rational(4, 2)
	require.NoError(t, err)
	assert.Equal(t, INTEGER, s.Op(two))
	assert.Equal(t, s.Integer(2), two)
	//
	_, err = s.Rational(1, 0)
	assert.ErrorIs(t, err, ErrInvalidRational)
}

func Test_Store_Add(t *testing.T) {
	s := NewStore()
	x := s.Symbol("x")
	y := s.Symbol("y")
	//
	assert.Equal(t, s.Integer(0), s.Add())
	assert.Equal(t, x, s.Add(x))
	assert.Equal(t, x, s.Add(x, s.Integer(0)))
	assert.Equal(t, s.Integer(5), s.Add(s.Integer(2), s.Integer(3)))
	// Flattening and constant folding
	sum := s.Add(s.Add(x, s.Integer(1)), s.Add(y, s.Integer(2)))
	node := s.Get(sum)
	require.Equal(t, ADD, node.Op())
	require.Equal(t, 3, node.Arity())
	assert.Equal(t, s.Integer(3), node.Child(0))
	assert.Equal(t, x, node.Child(1))
	assert.Equal(t, y, node.Child(2))
	// Constant cancels
	assert.Equal(t, s.Add(x, y), s.Add(sum, s.Integer(-3)))
}

func Test_Store_Mul(t *testing.T) {
	s := NewStore()
	x := s.Symbol("x")
	y := s.Symbol("y")
	//
	assert.Equal(t, s.Integer(1), s.Mul())
	assert.Equal(t, x, s.Mul(x))
	assert.Equal(t, x, s.Mul(s.Integer(1), x))
	assert.Equal(t, s.Integer(0), s.Mul(x, s.Integer(0), y))
	assert.Equal(t, s.Integer(6), s.Mul(s.Integer(2), s.Integer(3)))
	//
	prod := s.Mul(s.Mul(s.Integer(2), x), s.Mul(y, s.Integer(3)))
	node := s.Get(prod)
	require.Equal(t, MUL, node.Op())
	assert.Equal(t, []Id{s.Integer(6), x, y}, node.Children())
	// Like factors are not collected by the constructor
	assert.Equal(t, 2, s.Get(s.Mul(x, x)).Arity())
}

func Test_Store_Pow(t *testing.T) {
	s := NewStore()
	x := s.Symbol("x")
	zero := s.Integer(0)
	//
	assert.Equal(t, x, s.Pow(x, s.Integer(1)))
	assert.Equal(t, s.Integer(1), s.Pow(x, zero))
	assert.Equal(t, POW, s.Op(s.Pow(zero, zero)))
	assert.Equal(t, s.Integer(8), s.Pow(s.Integer(2), s.Integer(3)))
	assert.Equal(t, s.Integer(-8), s.Pow(s.Integer(-2), s.Integer(3)))
	assert.Equal(t, POW, s.Op(s.Pow(s.Integer(2), s.Integer(-1))))
	// Too large to fold
	assert.Equal(t, POW, s.Op(s.Pow(s.Integer(3), s.Integer(100000))))
}

func Test_Store_Div(t *testing.T) {
	s := NewStore()
	x := s.Symbol("x")
	//
	assert.Equal(t, "x/2", s.String(s.Div(x, s.Integer(2))))
	assert.Equal(t, "1/x", s.String(s.Div(s.Integer(1), x)))
	assert.Equal(t, "3/4", s.String(s.Div(s.Integer(3), s.Integer(4))))
	assert.Panics(t, func() { s.Div(x, s.Integer(0)) })
	assert.Panics(t, func() { s.Div(s.Integer(1), s.Integer(0)) })
	assert.Panics(t, func() { s.Div(s.Func("f", x), s.Number(new(big.Rat))) })
}

func Test_Store_Digest(t *testing.T) {
	s1 := NewStore()
	s2 := NewStore()
	// Allocate in different orders
	a1 := s1.Add(s1.Func("sin", s1.Symbol("x")), s1.Symbol("y"))
	s2.Symbol("z")
	a2 := s2.Add(s2.Symbol("y"), s2.Func("sin", s2.Symbol("x")))
	//
	assert.Equal(t, s1.Digest(a1), s2.Digest(a2))
	assert.NotEqual(t, s1.Digest(s1.Symbol("x")), s1.Digest(s1.Symbol("y")))
	assert.NotEqual(t, s1.Digest(s1.Integer(2)), s1.Digest(s1.Integer(-2)))
}

func Test_Store_Compare(t *testing.T) {
	s := NewStore()
	x := s.Symbol("x")
	y := s.Symbol("y")
	items := []Id{
		s.Integer(-1), s.Integer(2), x, y, s.Pow(x, s.Integer(2)), s.Mul(s.Integer(2), x),
		s.Add(x, y), s.Func("cos", x), s.Func("sin", x), s.Piecewise(Branch{x, y}),
	}
	// Strictly increasing
	for i := range items {
		for j := range items {
			switch {
			case i < j:
				assert.Negative(t, s.Compare(items[i], items[j]), "%s < %s", s.String(items[i]), s.String(items[j]))
			case i > j:
				assert.Positive(t, s.Compare(items[i], items[j]), "%s > %s", s.String(items[i]), s.String(items[j]))
			default:
				assert.Zero(t, s.Compare(items[i], items[j]))
			}
		}
	}
}

func Test_Store_NodeCount(t *testing.T) {
	s := NewStore()
	x := s.Symbol("x")
	sx := s.Func("sin", x)
	//
	assert.Equal(t, uint(1), s.NodeCount(x))
	assert.Equal(t, uint(2), s.NodeCount(sx))
	assert.Equal(t, uint(5), s.NodeCount(s.Add(sx, sx)))
}

func Test_Store_Branches(t *testing.T) {
	s := NewStore()
	x := s.Symbol("x")
	c := s.Func("gt", x, s.Integer(0))
	pw := s.Piecewise(Branch{x, c}, Branch{s.Neg(x), s.Integer(1)})
	//
	assert.Equal(t, []Branch{{x, c}, {s.Neg(x), s.Integer(1)}}, s.Branches(pw))
	assert.Equal(t, pw, s.Rebuild(pw, s.Get(pw).Children()))
}

func Test_Store_Rebuild(t *testing.T) {
	s := NewStore()
	x := s.Symbol("x")
	sum := s.Add(x, s.Symbol("y"))
	//
	assert.Equal(t, s.Add(x, s.Integer(1)), s.Rebuild(sum, []Id{x, s.Integer(1)}))
	assert.Equal(t, x, s.Rebuild(x, nil))
}

func Test_Store_NumberOf(t *testing.T) {
	s := NewStore()
	//
	v, ok := s.NumberOf(s.Integer(7))
	require.True(t, ok)
	assert.Zero(t, v.Cmp(big.NewRat(7, 1)))
	// Returned value is a copy
	v.SetInt64(8)
	assert.Equal(t, "7", s.String(s.Integer(7)))
	//
	_, ok = s.NumberOf(s.Symbol("x"))
	assert.False(t, ok)
	assert.True(t, s.IsValue(s.Integer(-3), -3))
	assert.False(t, s.IsValue(s.Symbol("x"), 0))
}

func Test_Store_Symbols(t *testing.T) {
	s := NewStore()
	y := s.Symbol("y")
	x := s.Symbol("x")
	e := s.Add(s.Func("sin", y), s.Mul(x, y), s.Pow(x, s.Integer(2)))
	//
	assert.Equal(t, []string{"x", "y"}, s.Symbols(e))
	assert.Empty(t, s.Symbols(s.Integer(1)))
}

func Test_Store_Contains(t *testing.T) {
	s := NewStore()
	x := s.Symbol("x")
	e := s.Add(s.Mul(s.Integer(2), s.Func("sin", x)), x)
	//
	assert.True(t, s.Contains(e, FUNCTION))
	assert.True(t, s.Contains(e, MUL))
	assert.False(t, s.Contains(e, POW))
	assert.False(t, s.Contains(x, FUNCTION))
}

func Test_Store_Transform(t *testing.T) {
	s := NewStore()
	x := s.Symbol("x")
	y := s.Symbol("y")
	f := s.Func("f", x)
	e := s.Add(f, s.Mul(y, f))
	visits := 0
	// Replace every occurrence of x by 2
	r := s.Transform(e, func(id Id) Id {
		visits++
		//
		if id == x {
			return s.Integer(2)
		}
		//
		return id
	})
	//
	assert.Equal(t, s.Add(s.Func("f", s.Integer(2)), s.Mul(y, s.Func("f", s.Integer(2)))), r)
	// x, f(x), y, y*f(x) and the sum, each visited once
	assert.Equal(t, 5, visits)
}

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
package assume

import (
	"math/big"
	"testing"

	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Context_Scopes(t *testing.T) {
	ctx := NewContext()
	//
	assert.Equal(t, Unknown, ctx.Has("x", Positive))
	ctx.Assume("x", Positive)
	assert.Equal(t, True, ctx.Has("x", Positive))
	//
	ctx.Push()
	ctx.Assume("y", Negative)
	assert.Equal(t, uint(2), ctx.Depth())
	assert.Equal(t, True, ctx.Has("x", Positive))
	assert.Equal(t, True, ctx.Has("y", Negative))
	//
	require.True(t, ctx.Pop())
	assert.Equal(t, Unknown, ctx.Has("y", Negative))
	assert.Equal(t, True, ctx.Has("x", Positive))
	// Base frame cannot be popped
	assert.False(t, ctx.Pop())
	assert.Equal(t, uint(1), ctx.Depth())
	assert.Equal(t, True, ctx.Has("x", Positive))
}

func Test_Context_PopRestores(t *testing.T) {
	ctx := NewContext()
	ctx.Assume("x", Integer)
	ctx.Push()
	ctx.Assume("x", Positive)
	assert.Equal(t, True, ctx.Has("x", Nonzero))
	ctx.Pop()
	// Outer frame unaffected by assumptions made in inner frame
	assert.Equal(t, True, ctx.Has("x", Integer))
	assert.Equal(t, Unknown, ctx.Has("x", Positive))
	assert.Equal(t, Unknown, ctx.Has("x", Nonzero))
}

func Test_Context_Closure(t *testing.T) {
	ctx := NewContext()
	//
	ctx.Assume("p", Positive)
	ctx.Assume("n", Negative)
	ctx.Assume("i", Integer)
	ctx.Assume("z", Nonnegative)
	ctx.Assume("z", Nonzero)
	//
	for _, prop := range []Property{Real, Nonzero, Nonnegative, Positive} {
		assert.Equal(t, True, ctx.Has("p", prop), prop.String())
		assert.Equal(t, True, ctx.Has("z", prop), prop.String())
	}
	//
	for _, prop := range []Property{Real, Nonzero, Negative} {
		assert.Equal(t, True, ctx.Has("n", prop), prop.String())
	}
	//
	assert.Equal(t, Unknown, ctx.Has("n", Nonnegative))
	assert.Equal(t, True, ctx.Has("i", Real))
	assert.Equal(t, Unknown, ctx.Has("i", Nonzero))
}

func Test_Context_NeverFalse(t *testing.T) {
	ctx := NewContext()
	ctx.Assume("x", Positive)
	//
	for _, prop := range Properties {
		assert.NotEqual(t, False, ctx.Has("x", prop))
		assert.NotEqual(t, False, ctx.Has("y", prop))
	}
}

func Test_Context_Clone(t *testing.T) {
	ctx := NewContext()
	ctx.Assume("x", Real)
	clone := ctx.Clone()
	clone.Assume("x", Positive)
	clone.Push()
	//
	assert.Equal(t, Unknown, ctx.Has("x", Positive))
	assert.Equal(t, True, clone.Has("x", Positive))
	assert.Equal(t, uint(1), ctx.Depth())
	assert.Equal(t, uint(2), clone.Depth())
}

func Test_ParseProperty(t *testing.T) {
	for _, prop := range Properties {
		p, err := ParseProperty(prop.String())
		require.NoError(t, err)
		assert.Equal(t, prop, p)
	}
	//
	p, err := ParseProperty("Positive")
	require.NoError(t, err)
	assert.Equal(t, Positive, p)
	//
	_, err = ParseProperty("nonpositive")
	assert.Error(t, err)
	_, err = ParseProperty("complex")
	assert.Error(t, err)
}

func Test_PropertySet_String(t *testing.T) {
	assert.Equal(t, "{}", PropertySet(0).String())
	assert.Equal(t, "{real,positive,nonzero,nonnegative}", NewPropertySet(Positive).Close().String())
}

func Test_Holds_Literals(t *testing.T) {
	var (
		s   = expr.NewStore()
		ctx = NewContext()
	)
	//
	assert.Equal(t, True, ctx.Holds(s, s.Integer(3), Positive))
	assert.Equal(t, False, ctx.Holds(s, s.Integer(3), Negative))
	assert.Equal(t, False, ctx.Holds(s, s.Integer(0), Nonzero))
	assert.Equal(t, True, ctx.Holds(s, s.Integer(0), Nonnegative))
	assert.Equal(t, False, ctx.Holds(s, s.Number(big.NewRat(1, 2)), Integer))
	assert.Equal(t, True, ctx.Holds(s, s.Number(big.NewRat(-1, 2)), Negative))
}

func Test_Holds_Expressions(t *testing.T) {
	var (
		s   = expr.NewStore()
		ctx = NewContext()
		x   = s.Symbol("x")
		y   = s.Symbol("y")
		two = s.Integer(2)
	)
	//
	ctx.Assume("x", Positive)
	ctx.Assume("y", Real)
	// Symbols never answer False
	assert.Equal(t, Unknown, ctx.Holds(s, y, Positive))
	assert.Equal(t, Unknown, ctx.Holds(s, s.Symbol("z"), Real))
	// Sums
	assert.Equal(t, True, ctx.Holds(s, s.Add(x, two), Positive))
	assert.Equal(t, True, ctx.Holds(s, s.Add(s.Pow(y, two), s.Integer(1)), Positive))
	assert.Equal(t, Unknown, ctx.Holds(s, s.Add(x, y), Positive))
	assert.Equal(t, True, ctx.Holds(s, s.Add(x, y), Real))
	// Products
	assert.Equal(t, True, ctx.Holds(s, s.Mul(two, x), Positive))
	assert.Equal(t, True, ctx.Holds(s, s.Neg(x), Negative))
	assert.Equal(t, Unknown, ctx.Holds(s, s.Mul(x, y), Positive))
	// Powers
	assert.Equal(t, True, ctx.Holds(s, s.Sqrt(x), Positive))
	assert.Equal(t, True, ctx.Holds(s, s.Pow(y, two), Nonnegative))
	assert.Equal(t, Unknown, ctx.Holds(s, s.Pow(y, two), Positive))
	assert.Equal(t, Unknown, ctx.Holds(s, s.Sqrt(y), Real))
	// Functions
	assert.Equal(t, True, ctx.Holds(s, s.Func("exp", y), Positive))
	assert.Equal(t, True, ctx.Holds(s, s.Func("cosh", y), Positive))
	assert.Equal(t, True, ctx.Holds(s, s.Func("abs", y), Nonnegative))
	assert.Equal(t, True, ctx.Holds(s, s.Func("abs", x), Positive))
	assert.Equal(t, Unknown, ctx.Holds(s, s.Func("sin", x), Positive))
	assert.Equal(t, Unknown, ctx.Holds(s, s.Func("exp", s.Symbol("z")), Positive))
}

func Test_Holds_NilContext(t *testing.T) {
	var (
		s   = expr.NewStore()
		ctx *Context
	)
	//
	assert.Equal(t, Unknown, ctx.Holds(s, s.Symbol("x"), Real))
	assert.Equal(t, Unknown, ctx.Holds(s, s.Pow(s.Symbol("x"), s.Integer(2)), Nonnegative))
	assert.Equal(t, True, ctx.Holds(s, s.Func("abs", s.Symbol("x")), Nonnegative))
	assert.Equal(t, False, ctx.Holds(s, s.Integer(-1), Nonnegative))
}

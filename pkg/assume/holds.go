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

	"github.com/consensys/go-algebra/pkg/expr"
)

// Holds determines whether a given property holds for a given expression.
// Numeric literals are decided exactly and, hence, may answer False.  For all
// other expressions the answer is either True (when the property can be
// derived from the assumptions on symbols using simple sign rules) or Unknown.
// A nil context is treated as having no assumptions.
func (p *Context) Holds(store *expr.Store, id expr.Id, prop Property) Truth {
	if value, ok := store.NumberOf(id); ok {
		if literalProperties(value).Contains(prop) {
			return True
		}
		//
		return False
	} else if p.derive(store, id).Contains(prop) {
		return True
	}
	//
	return Unknown
}

// Derive the properties known to hold for an expression.
func (p *Context) derive(store *expr.Store, id expr.Id) PropertySet {
	var node = store.Get(id)
	//
	switch node.Op() {
	case expr.INTEGER, expr.RATIONAL:
		return literalProperties(node.Value())
	case expr.SYMBOL:
		if p == nil {
			return 0
		}
		//
		return p.Properties(node.Name())
	case expr.ADD:
		return p.deriveSum(store, node.Children())
	case expr.MUL:
		return p.deriveProduct(store, node.Children())
	case expr.POW:
		return p.derivePower(store, node.Child(0), node.Child(1))
	case expr.FUNCTION:
		return p.deriveFunction(store, node)
	case expr.PIECEWISE:
		var (
			set      = ^PropertySet(0)
			children = node.Children()
		)
		// Only values matter
		for i := 0; i < len(children); i += 2 {
			set &= p.derive(store, children[i])
		}
		//
		if len(children) == 0 {
			return 0
		}
		//
		return set
	}
	//
	return 0
}

func (p *Context) deriveSum(store *expr.Store, terms []expr.Id) PropertySet {
	var (
		all    = ^PropertySet(0)
		anyPos = false
		anyNeg = false
		set    PropertySet
	)
	//
	for _, t := range terms {
		props := p.derive(store, t)
		all &= props
		anyPos = anyPos || props.Contains(Positive)
		anyNeg = anyNeg || props.Contains(Negative)
	}
	//
	set = all & NewPropertySet(Real, Integer, Nonnegative, nonpositive)
	//
	if all.Contains(Nonnegative) && anyPos {
		set = set.With(Positive)
	}
	//
	if all.Contains(nonpositive) && anyNeg {
		set = set.With(Negative)
	}
	//
	return set.Close()
}

func (p *Context) deriveProduct(store *expr.Store, factors []expr.Id) PropertySet {
	var (
		all       = ^PropertySet(0)
		negatives = 0
		signed    = true
		weak      = true
		set       PropertySet
	)
	//
	for _, f := range factors {
		props := p.derive(store, f)
		all &= props
		//
		switch {
		case props.Contains(Positive):
		case props.Contains(Negative):
			negatives++
		case props.Contains(Nonnegative):
			signed = false
		case props.Contains(nonpositive):
			signed = false
			negatives++
		default:
			signed, weak = false, false
		}
	}
	//
	set = all & NewPropertySet(Real, Integer, Nonzero)
	//
	switch {
	case signed && negatives%2 == 0:
		set = set.With(Positive)
	case signed:
		set = set.With(Negative)
	case weak && negatives%2 == 0:
		set = set.With(Nonnegative)
	case weak:
		set = set.With(nonpositive)
	}
	//
	return set.Close()
}

func (p *Context) derivePower(store *expr.Store, base expr.Id, exponent expr.Id) PropertySet {
	var (
		b       = p.derive(store, base)
		e       = p.derive(store, exponent)
		k, isK  = store.NumberOf(exponent)
		integer = isK && k.IsInt()
		set     PropertySet
	)
	//
	switch {
	case b.Contains(Positive) && e.Contains(Real):
		set = NewPropertySet(Positive)
	case integer && b.Contains(Real) && (b.Contains(Nonzero) || k.Sign() > 0):
		even := k.Num().Bit(0) == 0
		// Real base raised to an integer power remains real
		set = NewPropertySet(Real)
		//
		if b.Contains(Nonzero) {
			set = set.With(Nonzero)
		}
		//
		switch {
		case even:
			set = set.With(Nonnegative)
		case b.Contains(Nonnegative):
			set = set.With(Nonnegative)
		case b.Contains(nonpositive):
			set = set.With(nonpositive)
		}
		//
		if b.Contains(Integer) && k.Sign() > 0 {
			set = set.With(Integer)
		}
	case isK && k.Sign() > 0 && b.Contains(Nonnegative):
		set = NewPropertySet(Nonnegative, Real)
	}
	//
	return set.Close()
}

func (p *Context) deriveFunction(store *expr.Store, node *expr.Node) PropertySet {
	if node.Arity() != 1 {
		return 0
	}
	//
	arg := p.derive(store, node.Child(0))
	//
	switch node.Name() {
	case "exp", "cosh":
		if arg.Contains(Real) {
			return NewPropertySet(Positive).Close()
		}
	case "abs":
		if arg.Contains(Nonzero) {
			return NewPropertySet(Positive).Close()
		}
		//
		return NewPropertySet(Real, Nonnegative)
	case "sqrt":
		if arg.Contains(Positive) {
			return NewPropertySet(Positive).Close()
		} else if arg.Contains(Nonnegative) {
			return NewPropertySet(Real, Nonnegative)
		}
	case "sinh", "tanh", "atan", "asinh":
		// Odd and sign preserving on the reals
		if arg.Contains(Real) {
			return arg & NewPropertySet(Real, Positive, Negative, Nonzero, Nonnegative, nonpositive)
		}
	}
	//
	return 0
}

// Determine the properties of a numeric literal.
func literalProperties(value *big.Rat) PropertySet {
	set := NewPropertySet(Real)
	//
	if value.IsInt() {
		set = set.With(Integer)
	}
	//
	switch value.Sign() {
	case 1:
		set = set.With(Positive)
	case -1:
		set = set.With(Negative)
	default:
		set = set.With(Nonnegative).With(nonpositive)
	}
	//
	return set.Close()
}

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
	"slices"

	"github.com/consensys/go-algebra/pkg/assume"
	"github.com/consensys/go-algebra/pkg/expr"
)

// Odd functions satisfy f(-u) = -f(u), whilst even functions satisfy
// f(-u) = f(u).
var (
	oddFunctions  = []string{"sin", "tan", "sinh", "tanh", "asin", "atan", "asinh", "atanh"}
	evenFunctions = []string{"cos", "cosh"}
)

// Pairs of functions f, g where f(g(u)) = u (on the principal branch).
var inversePairs = map[string]string{
	"atan": "tan", "tan": "atan",
	"asin": "sin", "sin": "asin",
	"acos": "cos", "cos": "acos",
	"atanh": "tanh", "tanh": "atanh",
	"asinh": "sinh", "sinh": "asinh",
	"acosh": "cosh", "cosh": "acosh",
}

// Comparison functions, which evaluate to 1 (true) or 0 (false).
var comparisons = []string{"lt", "le", "gt", "ge", "eq", "ne"}

// Values of functions at zero.
var valuesAtZero = map[string]int64{
	"sin": 0, "tan": 0, "sinh": 0, "tanh": 0, "asin": 0, "atan": 0, "asinh": 0, "atanh": 0,
	"cos": 1, "cosh": 1,
}

// Apply ln(1) => 0 and ln(exp(u)) => u, along with ln(u*v) => ln(u) + ln(v)
// when all factors are known positive and ln(u^k) => k*ln(u) when u is known
// positive and k real.
func logarithmIdentity(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		node  = store.Get(id)
	)
	//
	if !node.IsFunction("ln", 1) {
		return id, false
	}
	//
	var (
		u   = node.Child(0)
		arg = store.Get(u)
	)
	//
	switch {
	case store.IsValue(u, 1):
		return store.Integer(0), true
	case arg.IsFunction("exp", 1):
		return arg.Child(0), true
	case arg.Op() == expr.MUL && p.allPositive(arg.Children()):
		terms := make([]expr.Id, arg.Arity())
		//
		for i, f := range arg.Children() {
			terms[i] = store.Func("ln", f)
		}
		//
		return store.Add(terms...), true
	case arg.Op() == expr.POW && p.holds(arg.Child(0), assume.Positive) && p.holds(arg.Child(1), assume.Real):
		return store.Mul(arg.Child(1), store.Func("ln", arg.Child(0))), true
	}
	//
	return id, false
}

// Apply exp(0) => 1, along with exp(ln(u)) => u and exp(k*ln(u)) => u^k when u
// is known positive.
func exponentialIdentity(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		node  = store.Get(id)
	)
	//
	if !node.IsFunction("exp", 1) {
		return id, false
	}
	//
	var (
		u    = node.Child(0)
		c, r = splitCoefficient(store, u)
		arg  = store.Get(r)
	)
	//
	switch {
	case store.IsValue(u, 0):
		return store.Integer(1), true
	case arg.IsFunction("ln", 1) && p.holds(arg.Child(0), assume.Positive):
		return store.Pow(arg.Child(0), store.Number(c)), true
	}
	//
	return id, false
}

// Evaluate trigonometric and hyperbolic functions (and their inverses) at zero,
// along with acos(1) => 0.
func trigAtZero(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		node  = store.Get(id)
	)
	//
	if node.Arity() != 1 {
		return id, false
	} else if v, ok := valuesAtZero[node.Name()]; ok && store.IsValue(node.Child(0), 0) {
		return store.Integer(v), true
	} else if node.Name() == "acos" && store.IsValue(node.Child(0), 1) {
		return store.Integer(0), true
	}
	//
	return id, false
}

// Apply f(-u) => -f(u) for odd functions, and f(-u) => f(u) for even functions.
func parity(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		node  = store.Get(id)
	)
	//
	var (
		odd  = slices.Contains(oddFunctions, node.Name())
		even = slices.Contains(evenFunctions, node.Name())
	)
	//
	if node.Arity() != 1 || (!odd && !even) || !isNegative(store, node.Child(0)) {
		return id, false
	}
	//
	u := store.Func(node.Name(), store.Neg(node.Child(0)))
	//
	if odd {
		return store.Neg(u), true
	}
	//
	return u, true
}

// Apply f(g(u)) => u where f and g are inverse functions, such as atan(tan(u)).
// Strictly, this holds only on the principal branch of the inverse function.
func inverseCancellation(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		node  = store.Get(id)
	)
	//
	if node.Arity() != 1 {
		return id, false
	} else if inverse, ok := inversePairs[node.Name()]; ok && store.Get(node.Child(0)).IsFunction(inverse, 1) {
		return store.Get(node.Child(0)).Child(0), true
	}
	//
	return id, false
}

// Simplify absolute values: abs of literals, abs(abs(u)) => abs(u),
// abs(c*u) => |c|*abs(u) for numeric c, abs(u) => u when u is known
// non-negative and abs(u) => -u when u is known negative.
func absIdentity(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		node  = store.Get(id)
	)
	//
	if !node.IsFunction("abs", 1) {
		return id, false
	}
	//
	var (
		u    = node.Child(0)
		c, r = splitCoefficient(store, u)
	)
	//
	switch {
	case store.IsNumber(u):
		return store.Number(c.Abs(c)), true
	case store.Get(u).IsFunction("abs", 1):
		return u, true
	case c.Cmp(big.NewRat(1, 1)) != 0:
		return store.Mul(store.Number(c.Abs(c)), store.Func("abs", r)), true
	case p.holds(u, assume.Nonnegative):
		return u, true
	case p.holds(u, assume.Negative):
		return store.Neg(u), true
	}
	//
	return id, false
}

// Normalise sqrt(u) => u^(1/2).
func sqrtFunction(p *Simplifier, id expr.Id) (expr.Id, bool) {
	if node := p.store.Get(id); node.IsFunction("sqrt", 1) {
		return p.store.Sqrt(node.Child(0)), true
	}
	//
	return id, false
}

// Decide comparisons lt, le, gt, ge, eq and ne, yielding 1 (true) or 0 (false),
// when the sign of the difference of their arguments is known.
func comparison(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		node  = store.Get(id)
	)
	//
	if node.Arity() != 2 || !slices.Contains(comparisons, node.Name()) {
		return id, false
	}
	// Determine sign of difference (if possible), where 2 signals unknown
	var (
		sign = 2
		d    = store.Integer(0)
	)
	//
	if node.Child(0) != node.Child(1) {
		d = p.simplify(store.Sub(node.Child(0), node.Child(1)))
	}
	//
	switch {
	case store.IsNumber(d):
		sign = store.Get(d).Sign()
	case p.holds(d, assume.Positive):
		sign = 1
	case p.holds(d, assume.Negative):
		sign = -1
	}
	//
	var outcome bool
	//
	switch {
	case sign == 2:
		return id, false
	case node.Name() == "lt":
		outcome = sign < 0
	case node.Name() == "le":
		outcome = sign <= 0
	case node.Name() == "gt":
		outcome = sign > 0
	case node.Name() == "ge":
		outcome = sign >= 0
	case node.Name() == "eq":
		outcome = sign == 0
	case node.Name() == "ne":
		outcome = sign != 0
	default:
		return id, false
	}
	//
	if outcome {
		return store.Integer(1), true
	}
	//
	return store.Integer(0), true
}

// Check whether a property is known to hold for an expression.
func (p *Simplifier) holds(id expr.Id, prop assume.Property) bool {
	return p.ctx.Holds(p.store, id, prop) == assume.True
}

// Check whether all given expressions are known positive.
func (p *Simplifier) allPositive(ids []expr.Id) bool {
	for _, id := range ids {
		if !p.holds(id, assume.Positive) {
			return false
		}
	}
	//
	return true
}

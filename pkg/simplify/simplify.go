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
	"github.com/consensys/go-algebra/pkg/assume"
	"github.com/consensys/go-algebra/pkg/expr"
)

// RuleSet determines which families of identities are applied by a simplifier.
type RuleSet uint16

const (
	// ARITHMETIC covers like-term and like-base collection, distribution of
	// numeric coefficients and folding of literal powers.
	ARITHMETIC RuleSet = 1 << iota
	// RADICALS covers perfect power extraction, rationalisation and square
	// roots of even powers.
	RADICALS
	// LOGARITHMS covers logarithm and exponential identities.
	LOGARITHMS
	// TRIGONOMETRY covers trigonometric and hyperbolic identities, such as the
	// Pythagorean and double angle identities.
	TRIGONOMETRY
	// TRIG_VALUES covers values at zero, parity and inverse function
	// cancellation.
	TRIG_VALUES
	// FUNCTIONS covers abs, sqrt, comparisons and piecewise expressions.
	FUNCTIONS
	// ALL rules.
	ALL = ARITHMETIC | RADICALS | LOGARITHMS | TRIGONOMETRY | TRIG_VALUES | FUNCTIONS
)

// Simplify reduces an expression to a canonical, semantically equivalent form
// without any assumptions about its symbols.  See SimplifyWith.
func Simplify(store *expr.Store, id expr.Id) expr.Id {
	return SimplifyWith(store, id, assume.NewContext())
}

// SimplifyWith reduces an expression to a canonical, semantically equivalent
// form under the given assumptions.  Children are simplified before their
// parent is rebuilt through the canonicalizing constructors, after which the
// node-level identities are applied.  Whenever an identity fires, the
// resulting expression is itself simplified.  This repeats until the
// expression no longer changes, hence the result is a fixpoint:
// SimplifyWith(SimplifyWith(e)) == SimplifyWith(e).  Simplification is
// deterministic and never fails for a well-formed expression.
func SimplifyWith(store *expr.Store, id expr.Id, ctx *assume.Context) expr.Id {
	return NewSimplifier(store, ctx, ALL).Apply(id)
}

// SimplifyRadicals applies only the radical identities (along with the
// canonicalizing constructors), for example turning sqrt(12) into 2*sqrt(3).
func SimplifyRadicals(store *expr.Store, id expr.Id, ctx *assume.Context) expr.Id {
	return NewSimplifier(store, ctx, RADICALS).Apply(id)
}

// SimplifyLogarithms applies only the logarithm and exponential identities
// (along with the canonicalizing constructors).  Expansions such as
// ln(x*y) => ln(x) + ln(y) require the factors to be known positive.
func SimplifyLogarithms(store *expr.Store, id expr.Id, ctx *assume.Context) expr.Id {
	return NewSimplifier(store, ctx, LOGARITHMS).Apply(id)
}

// Simplifier applies a given set of identities to expressions in a store.  A
// simplifier caches every result it computes, and therefore should not be
// reused across different assumption contexts.
type Simplifier struct {
	store *expr.Store
	ctx   *assume.Context
	rules RuleSet
	// Maps expressions to their simplified forms.
	cache map[expr.Id]expr.Id
}

// NewSimplifier constructs a simplifier for a given store, assumptions context
// and set of rules.  A nil context is equivalent to an empty one.
func NewSimplifier(store *expr.Store, ctx *assume.Context, rules RuleSet) *Simplifier {
	if ctx == nil {
		ctx = assume.NewContext()
	}
	//
	return &Simplifier{store, ctx, rules, make(map[expr.Id]expr.Id)}
}

// Apply this simplifier to a given expression, returning its fixpoint.
func (p *Simplifier) Apply(id expr.Id) expr.Id {
	for {
		next := p.simplify(id)
		//
		if next == id {
			return id
		}
		//
		id = next
	}
}

// Simplify an expression bottom-up.
func (p *Simplifier) simplify(id expr.Id) expr.Id {
	if r, ok := p.cache[id]; ok {
		return r
	}
	//
	var (
		node   = p.store.Get(id)
		result = id
	)
	//
	if node.Arity() > 0 {
		children := make([]expr.Id, node.Arity())
		//
		for i, c := range node.Children() {
			children[i] = p.simplify(c)
		}
		//
		rebuilt := p.store.Rebuild(id, children)
		//
		if rewritten := p.rewrite(rebuilt); rewritten != rebuilt {
			result = p.simplify(rewritten)
		} else {
			result = rebuilt
		}
	}
	// Results are fixpoints
	p.cache[id] = result
	p.cache[result] = result
	//
	return result
}

// Apply the node-level identities to a node whose children are already
// simplified.  This returns the node itself when no identity applies.
func (p *Simplifier) rewrite(id expr.Id) expr.Id {
	var rules []rule
	//
	switch p.store.Op(id) {
	case expr.ADD:
		rules = sumRules
	case expr.MUL:
		rules = productRules
	case expr.POW:
		rules = powerRules
	case expr.FUNCTION:
		rules = functionRules
	case expr.PIECEWISE:
		rules = piecewiseRules
	}
	//
	for _, r := range rules {
		if p.rules&r.family == 0 {
			continue
		} else if next, ok := r.apply(p, id); ok && next != id {
			return next
		}
	}
	//
	return id
}

// Node-level identities for each kind of node, tried in order.
var (
	sumRules       []rule
	productRules   []rule
	powerRules     []rule
	functionRules  []rule
	piecewiseRules []rule
)

func init() {
	sumRules = []rule{
		{ARITHMETIC, collectLikeTerms},
		{TRIGONOMETRY, pythagoreanIdentity},
		{TRIGONOMETRY, complementIdentity},
		{TRIGONOMETRY, doubleAngleIdentity},
		{TRIGONOMETRY, halfAngleIdentity},
		{TRIGONOMETRY, sumToProductIdentity},
	}
	productRules = []rule{
		{ARITHMETIC, collectLikeBases},
		{TRIGONOMETRY, sinCosProduct},
		{ARITHMETIC, distributeCoefficient},
	}
	powerRules = []rule{
		{ARITHMETIC, foldLiteralPower},
		{ARITHMETIC, powerOfPower},
		{ARITHMETIC, powerOfProduct},
		{RADICALS, extractRadical},
		{RADICALS, rootOfEvenPower},
		{RADICALS, splitSymbolPower},
		{FUNCTIONS, evenPowerOfAbs},
	}
	functionRules = []rule{
		{LOGARITHMS, logarithmIdentity},
		{LOGARITHMS, exponentialIdentity},
		{TRIG_VALUES, trigAtZero},
		{TRIG_VALUES, parity},
		{TRIG_VALUES, inverseCancellation},
		{FUNCTIONS, absIdentity},
		{FUNCTIONS, sqrtFunction},
		{FUNCTIONS, comparison},
	}
	piecewiseRules = []rule{
		{FUNCTIONS, reducePiecewise},
	}
}

// rule is a node-level identity belonging to a given family.
type rule struct {
	family RuleSet
	apply  func(*Simplifier, expr.Id) (expr.Id, bool)
}

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
	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/consensys/go-algebra/pkg/pattern"
)

// Guard is an optional side condition on the bindings of a rule.
type Guard func(*expr.Store, pattern.Bindings) bool

// Builder constructs the replacement for a matched expression.
type Builder func(*expr.Store, pattern.Bindings) expr.Id

// Rule is an immutable rewrite rule.  A rule applies to an expression when its
// pattern matches and its guard (if any) accepts the resulting bindings.  Guards
// and builders must be pure functions of the store and bindings.
type Rule struct {
	// Name identifies the rule in logs and metrics.
	Name    string
	Pattern pattern.Pattern
	// Guard may be nil, in which case every match is accepted.
	Guard Guard
	Build Builder
}

// Apply this rule to a given expression (but not its subexpressions),
// returning the replacement or false if the rule does not apply.
func (p *Rule) Apply(store *expr.Store, id expr.Id) (expr.Id, bool) {
	bindings, ok := pattern.Match(store, p.Pattern, id)
	//
	if !ok || (p.Guard != nil && !p.Guard(store, bindings)) {
		return id, false
	}
	//
	return p.Build(store, bindings), true
}

// Registry holds rules in declaration order.
type Registry struct {
	rules []Rule
}

// NewRegistry constructs a registry from zero or more rules.
func NewRegistry(rules ...Rule) *Registry {
	return &Registry{rules}
}

// Add one or more rules to the end of this registry.
func (p *Registry) Add(rules ...Rule) {
	p.rules = append(p.rules, rules...)
}

// Rules returns the rules of this registry in declaration order.
func (p *Registry) Rules() []Rule {
	return p.rules
}

// Len returns the number of rules in this registry.
func (p *Registry) Len() uint {
	return uint(len(p.rules))
}

// ApplyFirstRule applies the first rule (in declaration order) which applies
// to a given expression, returning false if no rule applies.
func ApplyFirstRule(store *expr.Store, rules []Rule, id expr.Id) (expr.Id, bool) {
	for i := range rules {
		if r, ok := rules[i].Apply(store, id); ok {
			ruleFirings.WithLabelValues(rules[i].Name).Inc()
			return r, true
		}
	}
	//
	return id, false
}

// ApplyBestRuleByNodeCount evaluates every rule which applies to a given
// expression, and returns the result with the fewest nodes.  Ties are broken by
// declaration order.  This returns false if no rule applies.
func ApplyBestRuleByNodeCount(store *expr.Store, rules []Rule, id expr.Id) (expr.Id, bool) {
	var (
		best  = id
		count uint
		index = -1
	)
	//
	for i := range rules {
		if r, ok := rules[i].Apply(store, id); ok {
			if n := store.NodeCount(r); index < 0 || n < count {
				best, count, index = r, n, i
			}
		}
	}
	//
	if index < 0 {
		return id, false
	}
	//
	ruleFirings.WithLabelValues(rules[index].Name).Inc()
	//
	return best, true
}

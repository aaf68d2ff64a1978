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
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/consensys/go-algebra/pkg/assume"
	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/consensys/go-algebra/pkg/pattern"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// RuleFile is the YAML representation of a set of rewrite rules.  For example:
//
//	rules:
//	  - name: log-of-square
//	    pattern: (ln (^ ?x 2))
//	    result: (* 2 (ln ?x))
//	    guards:
//	      - var: x
//	        property: positive
type RuleFile struct {
	Rules []RuleEntry `yaml:"rules"`
}

// RuleEntry is the YAML representation of a single rewrite rule.
type RuleEntry struct {
	Name    string       `yaml:"name"`
	Pattern string       `yaml:"pattern"`
	Result  string       `yaml:"result"`
	Guards  []GuardEntry `yaml:"guards,omitempty"`
}

// GuardEntry requires the expression bound to a wildcard to have a property.
type GuardEntry struct {
	Var      string `yaml:"var"`
	Property string `yaml:"property"`
}

// ReadRuleFile reads and compiles the rules in a given YAML file.  See
// LoadRules.
func ReadRuleFile(filename string, ctx *assume.Context) (*Registry, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading rule file: %w", err)
	}
	//
	registry, err := LoadRules(bytes, ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	log.Debugf("loaded %d rules from %s", registry.Len(), filename)
	//
	return registry, nil
}

// LoadRules compiles a set of YAML rules.  Patterns and results are written
// as S-expressions with ?name wildcards.  The builder of each rule instantiates
// its result with the bindings of its pattern, whilst its guards are decided
// under the given assumptions (which may be nil).
func LoadRules(bytes []byte, ctx *assume.Context) (*Registry, error) {
	var file RuleFile
	//
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("unmarshaling rules: %w", err)
	}
	//
	registry := NewRegistry()
	//
	for i, entry := range file.Rules {
		rule, err := compileRule(entry, ctx)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, entry.Name, err)
		}
		//
		registry.Add(rule)
	}
	//
	return registry, nil
}

func compileRule(entry RuleEntry, ctx *assume.Context) (Rule, error) {
	if entry.Name == "" {
		return Rule{}, errors.New("missing name")
	}
	//
	lhs, err := pattern.Parse(entry.Pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("pattern: %w", err)
	}
	//
	rhs, err := pattern.Parse(entry.Result)
	if err != nil {
		return Rule{}, fmt.Errorf("result: %w", err)
	} else if err := checkTemplate(lhs, rhs); err != nil {
		return Rule{}, fmt.Errorf("result: %w", err)
	}
	//
	guard, err := compileGuards(lhs, entry.Guards, ctx)
	if err != nil {
		return Rule{}, err
	}
	//
	build := func(store *expr.Store, bindings pattern.Bindings) expr.Id {
		id, err := pattern.Instantiate(store, rhs, bindings)
		// Templates are checked when the rule is compiled
		if err != nil {
			panic(err.Error())
		}
		//
		return id
	}
	//
	return Rule{entry.Name, lhs, guard, build}, nil
}

// Check a result template can be instantiated with the bindings of a pattern,
// by instantiating it with placeholder bindings.
func checkTemplate(lhs pattern.Pattern, rhs pattern.Pattern) error {
	var (
		store    = expr.NewStore()
		bindings = make(pattern.Bindings)
	)
	//
	for _, name := range pattern.Wildcards(lhs) {
		bindings[name] = store.Symbol(name)
	}
	//
	_, err := pattern.Instantiate(store, rhs, bindings)
	//
	return err
}

func compileGuards(lhs pattern.Pattern, entries []GuardEntry, ctx *assume.Context) (Guard, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	//
	type guard struct {
		name string
		prop assume.Property
	}
	//
	var (
		wildcards = pattern.Wildcards(lhs)
		guards    = make([]guard, len(entries))
	)
	//
	for i, entry := range entries {
		prop, err := assume.ParseProperty(entry.Property)
		if err != nil {
			return nil, fmt.Errorf("guard %d: %w", i, err)
		} else if !slices.Contains(wildcards, entry.Var) {
			return nil, fmt.Errorf("guard %d: unknown wildcard ?%s", i, entry.Var)
		}
		//
		guards[i] = guard{entry.Var, prop}
	}
	//
	return func(store *expr.Store, bindings pattern.Bindings) bool {
		for _, g := range guards {
			if ctx.Holds(store, bindings[g.name], g.prop) != assume.True {
				return false
			}
		}
		//
		return true
	}, nil
}

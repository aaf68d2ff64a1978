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
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// Pattern describes the shape of the expressions it matches.  A pattern is
// either a wildcard (Any), a literal (Symbol, Integer, Rational) or a composite
// (Function, Add, Mul, Power) whose arguments are themselves patterns.  Patterns
// are pure data, and can be shared freely.
type Pattern interface {
	// Specificity determines the order in which the arguments of commutative
	// patterns are tried.  More specific patterns are tried first.
	specificity() int
	// String returns the pattern in S-expression syntax.
	String() string
}

// Any is a wildcard matching any expression, and binding it to the given name.
// Repeated occurrences of the same name must bind the same expression.  The
// name "_" matches anything without binding.
type Any struct {
	Name string
}

// Symbol matches the symbol of a given name.
type Symbol struct {
	Name string
}

// Integer matches an integer literal of a given value.
type Integer struct {
	Value int64
}

// Rational matches the rational literal Num/Den.
type Rational struct {
	Num int64
	Den int64
}

// Function matches the application of a named function to arguments which
// match, position by position, the given argument patterns.
type Function struct {
	Name string
	Args []Pattern
}

// Add matches a sum with exactly as many terms as arguments, such that each
// argument matches a distinct term (in any order).
type Add struct {
	Args []Pattern
}

// Mul matches a product with exactly as many factors as arguments, such that
// each argument matches a distinct factor (in any order).
type Mul struct {
	Args []Pattern
}

// Power matches a power whose base and exponent match those given.
type Power struct {
	Base     Pattern
	Exponent Pattern
}

// NewAny constructs a wildcard pattern.
func NewAny(name string) Pattern { return &Any{name} }

// NewSymbol constructs a symbol pattern.
func NewSymbol(name string) Pattern { return &Symbol{name} }

// NewInteger constructs an integer pattern.
func NewInteger(value int64) Pattern { return &Integer{value} }

// NewRational constructs a rational pattern.  This panics if the denominator is
// zero.
func NewRational(num int64, den int64) Pattern {
	if den == 0 {
		panic("zero denominator")
	}
	//
	return &Rational{num, den}
}

// NewFunction constructs a function application pattern.
func NewFunction(name string, args ...Pattern) Pattern { return &Function{name, args} }

// NewAdd constructs a commutative sum pattern.
func NewAdd(args ...Pattern) Pattern { return &Add{args} }

// NewMul constructs a commutative product pattern.
func NewMul(args ...Pattern) Pattern { return &Mul{args} }

// NewPower constructs a power pattern.
func NewPower(base Pattern, exponent Pattern) Pattern { return &Power{base, exponent} }

func (p *Any) specificity() int      { return 0 }
func (p *Symbol) specificity() int   { return 3 }
func (p *Integer) specificity() int  { return 3 }
func (p *Rational) specificity() int { return 3 }
func (p *Function) specificity() int { return 2 }
func (p *Add) specificity() int      { return 1 }
func (p *Mul) specificity() int      { return 1 }
func (p *Power) specificity() int    { return 2 }

func (p *Any) String() string     { return "?" + p.Name }
func (p *Symbol) String() string  { return p.Name }
func (p *Integer) String() string { return fmt.Sprintf("%d", p.Value) }

func (p *Rational) String() string {
	return big.NewRat(p.Num, p.Den).RatString()
}

func (p *Function) String() string { return list(p.Name, p.Args...) }
func (p *Add) String() string      { return list("+", p.Args...) }
func (p *Mul) String() string      { return list("*", p.Args...) }
func (p *Power) String() string    { return list("^", p.Base, p.Exponent) }

func list(head string, args ...Pattern) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	builder.WriteString(head)
	//
	for _, arg := range args {
		builder.WriteString(" ")
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// Wildcards returns the (sorted) names of all wildcards bound by a pattern.
func Wildcards(p Pattern) []string {
	var names []string
	//
	collectWildcards(p, &names)
	slices.Sort(names)
	//
	return slices.Compact(names)
}

func collectWildcards(p Pattern, names *[]string) {
	switch p := p.(type) {
	case *Any:
		if p.Name != "_" {
			*names = append(*names, p.Name)
		}
	case *Function:
		for _, arg := range p.Args {
			collectWildcards(arg, names)
		}
	case *Add:
		for _, arg := range p.Args {
			collectWildcards(arg, names)
		}
	case *Mul:
		for _, arg := range p.Args {
			collectWildcards(arg, names)
		}
	case *Power:
		collectWildcards(p.Base, names)
		collectWildcards(p.Exponent, names)
	}
}

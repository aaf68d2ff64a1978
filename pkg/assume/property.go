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
	"fmt"
	"strings"
)

// Property identifies a property which can be assumed of a symbol.
type Property uint8

const (
	// Real indicates a value on the real line.
	Real Property = iota
	// Positive indicates a value strictly greater than zero.
	Positive
	// Negative indicates a value strictly less than zero.
	Negative
	// Integer indicates an integral value.
	Integer
	// Nonzero indicates a value distinct from zero.
	Nonzero
	// Nonnegative indicates a value greater than or equal to zero.
	Nonnegative
	// nonpositive is only used internally when deriving signs of expressions.
	nonpositive
)

// Properties lists all properties which can be assumed.
var Properties = []Property{Real, Positive, Negative, Integer, Nonzero, Nonnegative}

var propertyNames = []string{"real", "positive", "negative", "integer", "nonzero", "nonnegative", "nonpositive"}

func (p Property) String() string {
	return propertyNames[p]
}

// ParseProperty parses a property from its (case insensitive) name.
func ParseProperty(name string) (Property, error) {
	for _, p := range Properties {
		if strings.EqualFold(name, propertyNames[p]) {
			return p, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown property \"%s\"", name)
}

// PropertySet is a set of properties, represented as a bitset.
type PropertySet uint8

// NewPropertySet constructs a set holding the given properties (without closing
// it).
func NewPropertySet(props ...Property) PropertySet {
	var set PropertySet
	//
	for _, p := range props {
		set = set.With(p)
	}
	//
	return set
}

// Contains checks whether a given property is in this set.
func (p PropertySet) Contains(prop Property) bool {
	return p&(1<<prop) != 0
}

// With returns this set extended with a given property.
func (p PropertySet) With(prop Property) PropertySet {
	return p | (1 << prop)
}

// Close this set under implication.  That is, Positive implies Real, Nonzero and
// Nonnegative; Negative implies Real and Nonzero; Integer implies Real; and
// Nonnegative together with Nonzero implies Positive.  Implications are applied
// until no more properties are added.
func (p PropertySet) Close() PropertySet {
	for {
		next := p
		//
		if next.Contains(Positive) {
			next = next.With(Real).With(Nonzero).With(Nonnegative)
		}
		//
		if next.Contains(Negative) {
			next = next.With(Real).With(Nonzero).With(nonpositive)
		}
		//
		if next.Contains(Integer) {
			next = next.With(Real)
		}
		//
		if next.Contains(Nonnegative) && next.Contains(Nonzero) {
			next = next.With(Positive)
		}
		//
		if next.Contains(nonpositive) && next.Contains(Nonzero) {
			next = next.With(Negative)
		}
		//
		if next == p {
			return p
		}
		//
		p = next
	}
}

func (p PropertySet) String() string {
	var names []string
	//
	for _, prop := range Properties {
		if p.Contains(prop) {
			names = append(names, prop.String())
		}
	}
	//
	return "{" + strings.Join(names, ",") + "}"
}

// Truth is the outcome of a query against an assumptions context.
type Truth uint8

const (
	// Unknown indicates nothing can be concluded.
	Unknown Truth = iota
	// True indicates the property definitely holds.
	True
	// False indicates the property definitely does not hold.
	False
)

func (t Truth) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

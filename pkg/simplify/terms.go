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

	"github.com/consensys/go-algebra/pkg/expr"
)

// Split a term into its numeric coefficient and the remaining factors.  For
// example, 2*x*y is split into 2 and x*y, whilst x is split into 1 and x.  The
// coefficient of a literal is its value, with the remainder being 1.
func splitCoefficient(store *expr.Store, id expr.Id) (*big.Rat, expr.Id) {
	var node = store.Get(id)
	//
	switch {
	case node.IsNumber():
		return node.Value(), store.Integer(1)
	case node.Op() == expr.MUL && store.IsNumber(node.Child(0)):
		c, _ := store.NumberOf(node.Child(0))
		return c, store.Mul(node.Children()[1:]...)
	}
	//
	return big.NewRat(1, 1), id
}

// Return the non-numeric factors of a term.
func factorsOf(store *expr.Store, id expr.Id) []expr.Id {
	var node = store.Get(id)
	//
	switch {
	case node.IsNumber():
		return nil
	case node.Op() != expr.MUL:
		return []expr.Id{id}
	case store.IsNumber(node.Child(0)):
		return node.Children()[1:]
	default:
		return node.Children()
	}
}

// Check whether a term is negative, meaning either a negative literal or a
// product with a negative coefficient.
func isNegative(store *expr.Store, id expr.Id) bool {
	c, _ := splitCoefficient(store, id)
	return c.Sign() < 0
}

// Split a factor into its base and exponent, where the exponent of a factor
// which is not a power is 1.
func splitPower(store *expr.Store, id expr.Id) (expr.Id, expr.Id) {
	if node := store.Get(id); node.Op() == expr.POW {
		return node.Child(0), node.Child(1)
	}
	//
	return id, store.Integer(1)
}

// Return a copy of the given items with those at the given indices removed.
func without(items []expr.Id, indices ...int) []expr.Id {
	var result = make([]expr.Id, 0, len(items))
	//
outer:
	for i, item := range items {
		for _, j := range indices {
			if i == j {
				continue outer
			}
		}
		//
		result = append(result, item)
	}
	//
	return result
}

// Find the index of an item, or -1 if it is not present (other than at a given
// index).
func indexOf(items []expr.Id, item expr.Id, skip int) int {
	for i, x := range items {
		if x == item && i != skip {
			return i
		}
	}
	//
	return -1
}

// Compute the floor of a rational value.
func floor(r *big.Rat) *big.Int {
	var q, m big.Int
	// Euclidean division rounds towards negative infinity for positive divisors
	q.DivMod(r.Num(), r.Denom(), &m)
	//
	return &q
}

// A squared unary function application, appearing as a factor of a term.  For
// example, the term -3*y*sin(x)^2 has coefficient -3, rest y, name "sin" and
// argument x.
type squaredFunction struct {
	index       int
	coefficient *big.Rat
	rest        expr.Id
	name        string
	arg         expr.Id
}

// Identify all squared unary applications of the given functions occurring as
// factors of the given terms.
func squaredFunctions(store *expr.Store, terms []expr.Id, names ...string) []squaredFunction {
	var result []squaredFunction
	//
	for i, t := range terms {
		var (
			c, _    = splitCoefficient(store, t)
			factors = factorsOf(store, t)
		)
		//
		for j, f := range factors {
			if name, arg, ok := squaredApplication(store, f, names); ok {
				rest := store.Mul(without(factors, j)...)
				result = append(result, squaredFunction{i, c, rest, name, arg})
			}
		}
	}
	//
	return result
}

// Check whether a given factor has the form f(u)^2 for one of the given names.
func squaredApplication(store *expr.Store, id expr.Id, names []string) (string, expr.Id, bool) {
	var node = store.Get(id)
	//
	if node.Op() != expr.POW || !store.IsValue(node.Child(1), 2) {
		return "", 0, false
	}
	//
	base := store.Get(node.Child(0))
	//
	for _, name := range names {
		if base.IsFunction(name, 1) {
			return name, base.Child(0), true
		}
	}
	//
	return "", 0, false
}

// Construct the term c*rest*factors.
func term(store *expr.Store, c *big.Rat, rest expr.Id, factors ...expr.Id) expr.Id {
	args := append([]expr.Id{store.Number(c), rest}, factors...)
	return store.Mul(args...)
}

// Construct f(u)^2.
func squared(store *expr.Store, name string, arg expr.Id) expr.Id {
	return store.Pow(store.Func(name, arg), store.Integer(2))
}

func neg(r *big.Rat) *big.Rat {
	return new(big.Rat).Neg(r)
}

func mulRat(r *big.Rat, num int64, den int64) *big.Rat {
	return new(big.Rat).Mul(r, big.NewRat(num, den))
}

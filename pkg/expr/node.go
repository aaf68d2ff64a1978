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
)

// Op identifies the kind of a node held in an expression store.
type Op uint8

const (
	// INTEGER is an exact (arbitrary precision) integer literal.
	INTEGER Op = iota
	// RATIONAL is an exact rational literal whose denominator is greater than
	// one.  Rationals with denominator one are always stored as INTEGER.
	RATIONAL
	// SYMBOL is a named variable.
	SYMBOL
	// ADD is the (commutative) sum of two or more children.
	ADD
	// MUL is the (commutative) product of two or more children.
	MUL
	// POW is a base raised to an exponent.
	POW
	// FUNCTION is the application of a named function to zero or more
	// arguments.  Functions are opaque to the store.
	FUNCTION
	// PIECEWISE is a sequence of (value, condition) branches, flattened into
	// the children as value0, condition0, value1, condition1, etc.
	PIECEWISE
)

var opNames = []string{"integer", "rational", "symbol", "add", "mul", "pow", "function", "piecewise"}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	//
	return "unknown"
}

// Id is a handle for a node within a given store.  Handles are never reused
// whilst the owning store is alive and, since nodes are interned, two handles
// from the same store are equal if and only if they refer to structurally equal
// expressions.
type Id uint32

// Digest is a structural hash of an expression computed from its operator,
// payload and the digests of its children.  Unlike handles, digests can be
// compared across stores.
type Digest uint64

// Node represents a single (immutable) node within an expression store.
type Node struct {
	op Op
	// Value of an INTEGER or RATIONAL node, otherwise nil.
	value *big.Rat
	// Name of a SYMBOL or FUNCTION node, otherwise empty.
	name string
	// Children of this node, ordered canonically for ADD and MUL nodes.
	children []Id
	// Structural hash of this node
	digest Digest
}

// Op returns the operator of this node.
func (p *Node) Op() Op {
	return p.op
}

// Name returns the name of a symbol or function.  For any other kind of node
// this returns the empty string.
func (p *Node) Name() string {
	return p.name
}

// Value returns (a copy of) the value of a numeric literal, or nil for any
// other kind of node.
func (p *Node) Value() *big.Rat {
	if p.value == nil {
		return nil
	}
	//
	return new(big.Rat).Set(p.value)
}

// Children returns the children of this node.  The returned slice must not be
// modified.
func (p *Node) Children() []Id {
	return p.children
}

// Arity returns the number of children of this node.
func (p *Node) Arity() int {
	return len(p.children)
}

// Child returns the ith child of this node.
func (p *Node) Child(i int) Id {
	return p.children[i]
}

// Digest returns the structural hash of this node.
func (p *Node) Digest() Digest {
	return p.digest
}

// IsNumber checks whether this node is a numeric literal.
func (p *Node) IsNumber() bool {
	return p.op == INTEGER || p.op == RATIONAL
}

// IsInteger checks whether this node is an integer literal.
func (p *Node) IsInteger() bool {
	return p.op == INTEGER
}

// IsSymbol checks whether this node is a symbol with the given name.
func (p *Node) IsSymbol(name string) bool {
	return p.op == SYMBOL && p.name == name
}

// IsFunction checks whether this node is an application of the named function
// with the given number of arguments.
func (p *Node) IsFunction(name string, arity int) bool {
	return p.op == FUNCTION && p.name == name && len(p.children) == arity
}

// Sign returns the sign of a numeric literal (-1, 0 or 1).  This panics if the
// node is not numeric.
func (p *Node) Sign() int {
	if p.value == nil {
		panic("sign of non-numeric node")
	}
	//
	return p.value.Sign()
}

// Branch is a single (value, condition) pair of a piecewise expression.
type Branch struct {
	Value     Id
	Condition Id
}

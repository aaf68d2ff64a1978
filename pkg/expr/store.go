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
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/consensys/go-algebra/pkg/util/collection/hash"
)

// ErrInvalidRational is returned when constructing a rational with a zero
// denominator.
var ErrInvalidRational = errors.New("invalid rational (zero denominator)")

// Store owns an append-only arena of nodes along with an interning table
// mapping canonical node shapes to their handles.  Constructors only ever
// reference previously allocated children, hence the store is acyclic by
// construction.  A store is not safe for concurrent use.
type Store struct {
	nodes []Node
	table *hash.Map[nodeKey, Id]
}

// NewStore constructs a new (empty) expression store.
func NewStore() *Store {
	return &Store{nil, hash.NewMap[nodeKey, Id](1024)}
}

// Len returns the number of distinct nodes allocated in this store.
func (s *Store) Len() uint {
	return uint(len(s.nodes))
}

// Get returns the node for a given handle.  The returned node is immutable.
func (s *Store) Get(id Id) *Node {
	if uint(id) >= uint(len(s.nodes)) {
		panic(fmt.Sprintf("invalid expression handle %d", id))
	}
	//
	return &s.nodes[id]
}

// Op is a convenience for s.Get(id).Op().
func (s *Store) Op(id Id) Op {
	return s.Get(id).op
}

// Digest is a convenience for s.Get(id).Digest().
func (s *Store) Digest(id Id) Digest {
	return s.Get(id).digest
}

// Symbol constructs (or reuses) a symbol with the given name.
func (s *Store) Symbol(name string) Id {
	return s.intern(SYMBOL, nil, name, nil)
}

// Integer constructs (or reuses) an integer literal.
func (s *Store) Integer(value int64) Id {
	return s.Number(new(big.Rat).SetInt64(value))
}

// BigInteger constructs (or reuses) an arbitrary precision integer literal.
func (s *Store) BigInteger(value *big.Int) Id {
	return s.Number(new(big.Rat).SetInt(value))
}

// Rational constructs (or reuses) a rational literal num/den in lowest terms
// with a positive denominator.  This fails if the denominator is zero.
func (s *Store) Rational(num int64, den int64) (Id, error) {
	if den == 0 {
		return 0, ErrInvalidRational
	}
	//
	return s.Number(big.NewRat(num, den)), nil
}

// Number constructs (or reuses) a numeric literal from a given rational.  This
// produces an INTEGER node when the value is integral, and a RATIONAL node
// otherwise.
func (s *Store) Number(value *big.Rat) Id {
	// Clone so the caller can safely reuse its value.
	val := new(big.Rat).Set(value)
	//
	if val.IsInt() {
		return s.intern(INTEGER, val, "", nil)
	}
	//
	return s.intern(RATIONAL, val, "", nil)
}

// Func constructs (or reuses) the application of a named function to zero or
// more arguments.  No folding is performed.
func (s *Store) Func(name string, args ...Id) Id {
	return s.intern(FUNCTION, nil, name, slices.Clone(args))
}

// Piecewise constructs (or reuses) a piecewise expression from zero or more
// branches.  No folding is performed.
func (s *Store) Piecewise(branches ...Branch) Id {
	children := make([]Id, 0, 2*len(branches))
	//
	for _, b := range branches {
		children = append(children, b.Value, b.Condition)
	}
	//
	return s.intern(PIECEWISE, nil, "", children)
}

// Branches returns the branches of a piecewise node.
func (s *Store) Branches(id Id) []Branch {
	var (
		node     = s.Get(id)
		branches = make([]Branch, len(node.children)/2)
	)
	//
	if node.op != PIECEWISE {
		panic("not a piecewise expression")
	}
	//
	for i := range branches {
		branches[i] = Branch{node.children[2*i], node.children[2*i+1]}
	}
	//
	return branches
}

// Rebuild constructs a node with the same operator and payload as a given node,
// but with the given children, using the canonicalizing constructor for that
// operator.  Literals and symbols are returned unchanged.
func (s *Store) Rebuild(id Id, children []Id) Id {
	var node = s.Get(id)
	//
	switch node.op {
	case ADD:
		return s.Add(children...)
	case MUL:
		return s.Mul(children...)
	case POW:
		return s.Pow(children[0], children[1])
	case FUNCTION:
		return s.Func(node.name, children...)
	case PIECEWISE:
		return s.intern(PIECEWISE, nil, "", slices.Clone(children))
	default:
		return id
	}
}

// Transform applies a function to every node of an expression bottom-up,
// rebuilding each node from its transformed children before applying the
// function to it.  Shared subexpressions are visited once.
func (s *Store) Transform(id Id, fn func(Id) Id) Id {
	var cache = make(map[Id]Id)
	//
	var visit func(Id) Id
	//
	visit = func(id Id) Id {
		if r, ok := cache[id]; ok {
			return r
		}
		//
		children := make([]Id, len(s.nodes[id].children))
		//
		for i, c := range s.nodes[id].children {
			children[i] = visit(c)
		}
		//
		result := fn(s.Rebuild(id, children))
		cache[id] = result
		//
		return result
	}
	//
	return visit(id)
}

// ============================================================================
// Interning
// ============================================================================

// Intern a node of a given shape, returning the existing handle if a node of
// this shape was previously allocated.  The children are assumed to be in
// canonical order already, and are owned by the store after this call.
func (s *Store) intern(op Op, value *big.Rat, name string, children []Id) Id {
	var (
		digest = s.digestOf(op, value, name, children)
		key    = nodeKey{op, value, name, children, digest}
	)
	//
	if id, ok := s.table.Get(key); ok {
		return id
	} else if uint64(len(s.nodes)) >= uint64(^Id(0)) {
		panic("expression store exhausted")
	}
	// Allocate new node
	id := Id(len(s.nodes))
	s.nodes = append(s.nodes, Node{op, value, name, children, digest})
	s.table.Insert(key, id)
	//
	return id
}

func (s *Store) digestOf(op Op, value *big.Rat, name string, children []Id) Digest {
	words := make([]uint64, 0, len(children)+3)
	words = append(words, uint64(op))
	//
	switch op {
	case INTEGER, RATIONAL:
		words = append(words, uint64(value.Sign()+1), hash.Bytes(value.Num().Bytes()), hash.Bytes(value.Denom().Bytes()))
	case SYMBOL, FUNCTION:
		words = append(words, hash.String(name))
	}
	//
	for _, c := range children {
		words = append(words, uint64(s.nodes[c].digest))
	}
	//
	return Digest(hash.Combine(words...))
}

// nodeKey identifies the shape of a node for the purposes of interning.
type nodeKey struct {
	op       Op
	value    *big.Rat
	name     string
	children []Id
	digest   Digest
}

// Equals implementation for the hash.Hasher interface.
func (p nodeKey) Equals(other nodeKey) bool {
	if p.op != other.op || p.name != other.name || !slices.Equal(p.children, other.children) {
		return false
	} else if p.value != nil {
		return other.value != nil && p.value.Cmp(other.value) == 0
	}
	//
	return other.value == nil
}

// Hash implementation for the hash.Hasher interface.
func (p nodeKey) Hash() uint64 {
	return uint64(p.digest)
}

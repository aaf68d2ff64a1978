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
	"maps"

	"github.com/consensys/go-algebra/pkg/util/collection/stack"
)

// Frame records the properties assumed of symbols within a single scope.  Frames
// are never modified once placed on the stack; assuming a property replaces the
// top frame with an extended copy.
type frame map[string]PropertySet

// Context is a scoped store of assumptions about symbols.  Scopes are created
// with Push and discarded with Pop, at which point any assumptions made within
// them are forgotten.  Every scope sees the assumptions of its enclosing scopes.
// The world is open: a query answers True when the property follows from the
// assumptions, and Unknown otherwise.
type Context struct {
	frames *stack.Stack[frame]
}

// NewContext constructs a context with a single (empty) base frame.
func NewContext() *Context {
	frames := stack.NewStack[frame]()
	frames.Push(frame{})
	//
	return &Context{frames}
}

// Depth returns the number of frames in this context, including the base frame.
func (p *Context) Depth() uint {
	return p.frames.Len()
}

// Push a new (empty) scope.
func (p *Context) Push() {
	// Frames are immutable, hence can be shared.
	p.frames.Push(p.frames.Peek(0))
}

// Pop the innermost scope, discarding its assumptions.  The base frame cannot be
// popped, in which case false is returned.
func (p *Context) Pop() bool {
	if p.frames.Len() <= 1 {
		return false
	}
	//
	p.frames.Pop()
	//
	return true
}

// Assume a given property of a symbol in the innermost scope.  The symbol's
// property set is closed under implication.
func (p *Context) Assume(symbol string, prop Property) {
	var (
		top  = p.frames.Peek(0)
		next = maps.Clone(top)
	)
	//
	next[symbol] = top[symbol].With(prop).Close()
	p.frames.Replace(0, next)
}

// Has determines whether a given property holds for a given symbol.  This never
// returns False since nothing is assumed about the absence of a property.
func (p *Context) Has(symbol string, prop Property) Truth {
	if p.Properties(symbol).Contains(prop) {
		return True
	}
	//
	return Unknown
}

// Properties returns the (closed) set of properties known for a given symbol.
func (p *Context) Properties(symbol string) PropertySet {
	return p.frames.Peek(0)[symbol]
}

// Clone returns an independent copy of this context.  Since frames are
// immutable, only the stack itself is copied.
func (p *Context) Clone() *Context {
	return &Context{p.frames.Clone()}
}

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
package modeval

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-algebra/pkg/expr"
)

// ErrNotEvaluable indicates an expression has no meaning over a prime field,
// such as a non-integer exponent, a piecewise definition or a division by
// zero.
var ErrNotEvaluable = errors.New("expression not evaluable over prime field")

// Domain separation tag used when hashing function applications into the field.
var functionDomain = []byte("go-algebra/modeval/function")

// Environment assigns field values to symbols.
type Environment map[string]fr.Element

// Eval evaluates an expression over the scalar field of BLS12-377.  Rationals
// are evaluated through modular inverses, and function applications are
// treated as uninterpreted: their value is a hash of the function name and the
// values of its arguments.  Hence, two expressions which agree under every
// environment are equal as rational functions over opaque function symbols.
func Eval(store *expr.Store, id expr.Id, env Environment) (fr.Element, error) {
	ev := evaluator{store, env, make(map[expr.Id]fr.Element)}
	return ev.eval(id)
}

type evaluator struct {
	store *expr.Store
	env   Environment
	// Values of subexpressions already evaluated.
	cache map[expr.Id]fr.Element
}

func (p *evaluator) eval(id expr.Id) (fr.Element, error) {
	if v, ok := p.cache[id]; ok {
		return v, nil
	}
	//
	v, err := p.evalNode(id)
	if err == nil {
		p.cache[id] = v
	}
	//
	return v, err
}

func (p *evaluator) evalNode(id expr.Id) (fr.Element, error) {
	var (
		node = p.store.Get(id)
		res  fr.Element
	)
	//
	switch node.Op() {
	case expr.INTEGER, expr.RATIONAL:
		return evalRational(node.Value())
	case expr.SYMBOL:
		if v, ok := p.env[node.Name()]; ok {
			return v, nil
		}
		//
		return res, fmt.Errorf("unbound symbol %s", node.Name())
	case expr.ADD:
		for _, c := range node.Children() {
			v, err := p.eval(c)
			if err != nil {
				return res, err
			}
			//
			res.Add(&res, &v)
		}
		//
		return res, nil
	case expr.MUL:
		res.SetOne()
		//
		for _, c := range node.Children() {
			v, err := p.eval(c)
			if err != nil {
				return res, err
			}
			//
			res.Mul(&res, &v)
		}
		//
		return res, nil
	case expr.POW:
		return p.evalPow(node.Child(0), node.Child(1))
	case expr.FUNCTION:
		return p.evalFunction(node.Name(), node.Children())
	default:
		return res, fmt.Errorf("%w: %s", ErrNotEvaluable, node.Op())
	}
}

func (p *evaluator) evalPow(base expr.Id, exponent expr.Id) (fr.Element, error) {
	var res fr.Element
	//
	k, ok := p.store.NumberOf(exponent)
	if !ok || !k.IsInt() {
		return res, fmt.Errorf("%w: exponent %s", ErrNotEvaluable, p.store.String(exponent))
	}
	//
	b, err := p.eval(base)
	if err != nil {
		return res, err
	}
	//
	n := new(big.Int).Set(k.Num())
	//
	if n.Sign() < 0 {
		if b.IsZero() {
			return res, fmt.Errorf("%w: division by zero", ErrNotEvaluable)
		}
		//
		b.Inverse(&b)
		n.Neg(n)
	}
	//
	res.Exp(b, n)
	//
	return res, nil
}

func (p *evaluator) evalFunction(name string, args []expr.Id) (fr.Element, error) {
	// The name is terminated by a zero byte, which cannot occur in an
	// identifier, and is followed by the fixed width encoding of each argument.
	var msg = append([]byte(name), 0)
	//
	for _, arg := range args {
		v, err := p.eval(arg)
		if err != nil {
			return v, err
		}
		//
		bytes := v.Bytes()
		msg = append(msg, bytes[:]...)
	}
	//
	res, err := fr.Hash(msg, functionDomain, 1)
	if err != nil {
		return fr.Element{}, err
	}
	//
	return res[0], nil
}

func evalRational(value *big.Rat) (fr.Element, error) {
	var num, den fr.Element
	//
	num.SetBigInt(value.Num())
	den.SetBigInt(value.Denom())
	//
	if den.IsZero() {
		return num, fmt.Errorf("%w: denominator %s vanishes", ErrNotEvaluable, value.Denom())
	}
	//
	den.Inverse(&den)
	//
	return *num.Mul(&num, &den), nil
}

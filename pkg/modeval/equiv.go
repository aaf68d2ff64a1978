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
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-algebra/pkg/expr"
)

// Equivalent performs a randomised (Schwartz-Zippel) test that two expressions
// denote the same function.  Both expressions are evaluated at a number of
// uniformly random points, and are reported equivalent if they agree on all of
// them.  A false positive occurs with negligible probability for rational
// functions of small degree.  An error is returned if either expression cannot
// be evaluated.
func Equivalent(store *expr.Store, lhs expr.Id, rhs expr.Id, rounds uint) (bool, error) {
	if lhs == rhs {
		return true, nil
	}
	//
	symbols := append(store.Symbols(lhs), store.Symbols(rhs)...)
	//
	for i := uint(0); i < rounds; i++ {
		env, err := RandomEnvironment(symbols...)
		if err != nil {
			return false, err
		}
		//
		l, err := Eval(store, lhs, env)
		if err != nil {
			return false, err
		}
		//
		r, err := Eval(store, rhs, env)
		if err != nil {
			return false, err
		}
		//
		if !l.Equal(&r) {
			return false, nil
		}
	}
	//
	return true, nil
}

// RandomEnvironment assigns a uniformly random field element to each of the
// given symbols.
func RandomEnvironment(symbols ...string) (Environment, error) {
	env := make(Environment, len(symbols))
	//
	for _, name := range symbols {
		var v fr.Element
		//
		if _, err := v.SetRandom(); err != nil {
			return nil, err
		}
		//
		env[name] = v
	}
	//
	return env, nil
}

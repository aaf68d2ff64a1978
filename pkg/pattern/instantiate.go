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

	"github.com/consensys/go-algebra/pkg/expr"
)

// Instantiate builds the expression described by a template pattern, replacing
// each wildcard by the expression it is bound to.  Expressions are built with
// the canonicalizing constructors of the store.  This fails if the template
// contains an unbound (or anonymous) wildcard.
func Instantiate(store *expr.Store, template Pattern, bindings Bindings) (expr.Id, error) {
	switch p := template.(type) {
	case *Any:
		if id, ok := bindings[p.Name]; ok {
			return id, nil
		}
		//
		return 0, fmt.Errorf("unbound wildcard ?%s", p.Name)
	case *Symbol:
		return store.Symbol(p.Name), nil
	case *Integer:
		return store.Integer(p.Value), nil
	case *Rational:
		return store.Rational(p.Num, p.Den)
	case *Function:
		args, err := instantiateAll(store, p.Args, bindings)
		if err != nil {
			return 0, err
		}
		//
		return store.Func(p.Name, args...), nil
	case *Add:
		args, err := instantiateAll(store, p.Args, bindings)
		if err != nil {
			return 0, err
		}
		//
		return store.Add(args...), nil
	case *Mul:
		args, err := instantiateAll(store, p.Args, bindings)
		if err != nil {
			return 0, err
		}
		//
		return store.Mul(args...), nil
	case *Power:
		args, err := instantiateAll(store, []Pattern{p.Base, p.Exponent}, bindings)
		if err != nil {
			return 0, err
		}
		//
		return store.Pow(args[0], args[1]), nil
	}
	//
	return 0, fmt.Errorf("unknown pattern %s", template.String())
}

func instantiateAll(store *expr.Store, templates []Pattern, bindings Bindings) ([]expr.Id, error) {
	ids := make([]expr.Id, len(templates))
	//
	for i, t := range templates {
		var err error
		//
		if ids[i], err = Instantiate(store, t, bindings); err != nil {
			return nil, err
		}
	}
	//
	return ids, nil
}

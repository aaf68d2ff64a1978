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
	"github.com/consensys/go-algebra/pkg/expr"
)

// Reduce a piecewise expression by dropping branches whose condition is
// literally false (i.e. 0), and any branches following the first whose
// condition is literally true (i.e. a non-zero literal).  If the first
// remaining branch is literally true, or all remaining branches share the same
// value, then that value is returned.
func reducePiecewise(p *Simplifier, id expr.Id) (expr.Id, bool) {
	var (
		store = p.store
		kept  []expr.Branch
	)
	//
	for _, b := range store.Branches(id) {
		if store.IsValue(b.Condition, 0) {
			continue
		}
		//
		kept = append(kept, b)
		//
		if store.IsNumber(b.Condition) {
			break
		}
	}
	//
	if len(kept) == 0 {
		return store.Piecewise(), true
	} else if store.IsNumber(kept[0].Condition) {
		return kept[0].Value, true
	}
	//
	for _, b := range kept[1:] {
		if b.Value != kept[0].Value {
			return store.Piecewise(kept...), true
		}
	}
	//
	return kept[0].Value, true
}

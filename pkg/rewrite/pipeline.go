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
package rewrite

import (
	"github.com/consensys/go-algebra/pkg/assume"
	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/consensys/go-algebra/pkg/simplify"
	log "github.com/sirupsen/logrus"
)

// Stats summarises a run of the rewrite pipeline or scheduler.
type Stats struct {
	// Steps is the number of iterations which changed the expression.
	Steps uint
	// NodesBefore is the node count of the initial expression.
	NodesBefore uint
	// NodesAfter is the node count of the final expression.
	NodesAfter uint
	// Changed indicates whether the final expression differs from the initial
	// one.
	Changed bool
}

// RewritePipeline repeatedly rewrites an expression until it stops changing,
// or a given number of steps is exhausted.  Each iteration consists of the
// basic rewrite, the assumption-gated domain rewrite, a bottom-up pass applying
// the best registry rule at each node and, finally, simplification under the
// given assumptions.  When the step budget is exhausted, the current
// expression is returned as is.
func RewritePipeline(store *expr.Store, id expr.Id, ctx *assume.Context, rules []Rule,
	maxSteps uint) (expr.Id, Stats) {
	//
	var (
		stats   = Stats{NodesBefore: store.NodeCount(id)}
		current = id
	)
	//
	for stats.Steps < maxSteps {
		next := RewriteBasic(store, current)
		next = RewriteDomain(store, next, ctx)
		//
		if len(rules) > 0 {
			next = store.Transform(next, func(id expr.Id) expr.Id {
				r, _ := ApplyBestRuleByNodeCount(store, rules, id)
				return r
			})
		}
		//
		next = simplify.SimplifyWith(store, next, ctx)
		//
		if next == current {
			break
		}
		//
		stats.Steps++
		logStep("pipeline", stats.Steps, store, next)
		current = next
	}
	//
	stats.NodesAfter = store.NodeCount(current)
	stats.Changed = current != id
	pipelineSteps.Observe(float64(stats.Steps))
	//
	return current, stats
}

// RewriteFixpoint repeatedly applies the basic rewrite to an expression until
// it stops changing, or a given number of steps is exhausted.
func RewriteFixpoint(store *expr.Store, id expr.Id, maxSteps uint) (expr.Id, Stats) {
	var (
		stats   = Stats{NodesBefore: store.NodeCount(id)}
		current = id
	)
	//
	for stats.Steps < maxSteps {
		next := RewriteBasic(store, current)
		//
		if next == current {
			break
		}
		//
		stats.Steps++
		logStep("fixpoint", stats.Steps, store, next)
		current = next
	}
	//
	stats.NodesAfter = store.NodeCount(current)
	stats.Changed = current != id
	fixpointSteps.Observe(float64(stats.Steps))
	//
	return current, stats
}

func logStep(kind string, step uint, store *expr.Store, id expr.Id) {
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("%s step %d: %s (%d nodes)", kind, step, store.String(id), store.NodeCount(id))
	}
}

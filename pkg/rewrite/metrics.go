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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "algebra_rewrite_pipeline_steps",
		Help:    "Changing iterations per rewrite pipeline run",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
	})

	fixpointSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "algebra_rewrite_fixpoint_steps",
		Help:    "Changing passes per rewrite fixpoint run",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
	})

	ruleFirings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algebra_rewrite_rule_firings_total",
		Help: "Number of times each registry rule was selected",
	}, []string{"rule"})
)

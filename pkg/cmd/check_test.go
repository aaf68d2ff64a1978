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
package cmd

import (
	"testing"

	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CheckEquivalence_01(t *testing.T) {
	checkVerdict(t, "(+ (^ (sin x) 2) (^ (cos x) 2))", "1", EQUIVALENT)
	checkVerdict(t, "(- (^ (cosh x) 2) (^ (sinh x) 2))", "1", EQUIVALENT)
	checkVerdict(t, "(sqrt 12)", "(* 2 (sqrt 3))", EQUIVALENT)
	checkVerdict(t, "(ln (exp x))", "x", EQUIVALENT)
}

func Test_CheckEquivalence_02(t *testing.T) {
	checkVerdict(t, "(^ (+ x 1) 2)", "(+ (^ x 2) (* 2 x) 1)", EQUIVALENT)
	checkVerdict(t, "(/ (- (^ x 2) 1) (- x 1))", "(+ x 1)", EQUIVALENT)
	checkVerdict(t, "(^ (+ x y) 2)", "(+ (^ x 2) (^ y 2))", NOT_EQUIVALENT)
	checkVerdict(t, "(+ x 1)", "x", NOT_EQUIVALENT)
}

func Test_CheckEquivalence_03(t *testing.T) {
	// Functions are uninterpreted, hence disagreement is inconclusive.
	checkVerdict(t, "(sin (* 2 x))", "(* 2 (sin x))", UNKNOWN)
	checkVerdict(t, "(exp (ln x))", "x", UNKNOWN)
	// Not evaluable over a prime field
	checkVerdict(t, "(sqrt x)", "x", UNKNOWN)
}

func Test_CheckEquivalence_04(t *testing.T) {
	checkVerdict(t, "(exp (ln x))", "x", EQUIVALENT, "x:positive")
	checkVerdict(t, "(sqrt (^ x 2))", "x", EQUIVALENT, "x:positive")
}

func Test_Verdict_String(t *testing.T) {
	assert.Equal(t, "equivalent", EQUIVALENT.String())
	assert.Equal(t, "not equivalent", NOT_EQUIVALENT.String())
	assert.Equal(t, "unknown", UNKNOWN.String())
}

func checkVerdict(t *testing.T, lhs string, rhs string, expected Verdict, assumptions ...string) {
	t.Helper()
	//
	store := expr.NewStore()
	ctx, err := parseAssumptions(assumptions)
	require.NoError(t, err)
	l, err := expr.Parse(store, lhs)
	require.NoError(t, err)
	r, err := expr.Parse(store, rhs)
	require.NoError(t, err)
	//
	actual, err := checkEquivalence(store, l, r, ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, expected, actual, "%s == %s", lhs, rhs)
}

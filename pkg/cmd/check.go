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
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-algebra/pkg/assume"
	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/consensys/go-algebra/pkg/modeval"
	"github.com/consensys/go-algebra/pkg/simplify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Verdict is the outcome of comparing two expressions.
type Verdict uint8

const (
	// EQUIVALENT indicates the expressions were shown to be equivalent.
	EQUIVALENT Verdict = iota
	// NOT_EQUIVALENT indicates the expressions were shown to differ.
	NOT_EQUIVALENT
	// UNKNOWN indicates neither outcome could be established.
	UNKNOWN
)

func (p Verdict) String() string {
	switch p {
	case EQUIVALENT:
		return "equivalent"
	case NOT_EQUIVALENT:
		return "not equivalent"
	default:
		return "unknown"
	}
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] lhs rhs",
	Short: "check whether two expressions are equivalent.",
	Long: `Check whether two expressions are equivalent.  Both sides are first
simplified, and are equivalent if they simplify to the same expression.
Otherwise, the simplified forms are evaluated at random points over a prime
field.  When either side involves functions (which are treated as
uninterpreted) a disagreement is inconclusive, and "unknown" is reported.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			store = expr.NewStore()
			ctx   = getContext(cmd)
			lhs   = parseExpression(store, args[0])
			rhs   = parseExpression(store, args[1])
		)
		//
		verdict, err := checkEquivalence(store, lhs, rhs, ctx, getUint(cmd, "rounds"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(verdict.String())
		//
		if verdict != EQUIVALENT {
			os.Exit(1)
		}
	},
}

// Compare two expressions, first by simplification and then by evaluation over
// a prime field.
func checkEquivalence(store *expr.Store, lhs expr.Id, rhs expr.Id, ctx *assume.Context,
	rounds uint) (Verdict, error) {
	//
	lhs = simplify.SimplifyWith(store, lhs, ctx)
	rhs = simplify.SimplifyWith(store, rhs, ctx)
	//
	if lhs == rhs {
		return EQUIVALENT, nil
	}
	//
	equiv, err := modeval.Equivalent(store, lhs, rhs, rounds)
	//
	switch {
	case errors.Is(err, modeval.ErrNotEvaluable):
		log.Debugf("cannot evaluate (%s)", err)
		return UNKNOWN, nil
	case err != nil:
		return UNKNOWN, err
	case equiv:
		return EQUIVALENT, nil
	case store.Contains(lhs, expr.FUNCTION) || store.Contains(rhs, expr.FUNCTION):
		// Disagreement between uninterpreted functions says nothing about the
		// functions themselves.
		return UNKNOWN, nil
	default:
		return NOT_EQUIVALENT, nil
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Uint("rounds", 8, "number of random evaluation rounds")
}

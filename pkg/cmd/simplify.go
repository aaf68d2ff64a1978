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
	"fmt"

	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/consensys/go-algebra/pkg/simplify"
	"github.com/spf13/cobra"
)

// simplifyCmd represents the simplify command
var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] expression...",
	Short: "simplify one or more expressions.",
	Long: `Simplify one or more expressions to their canonical form, optionally under
assumptions about their symbols.  By default all identities are applied, though
this can be restricted (e.g. to radical or logarithm identities only).`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			store = expr.NewStore()
			ctx   = getContext(cmd)
		)
		//
		for _, arg := range args {
			var id = parseExpression(store, arg)
			//
			switch {
			case getFlag(cmd, "radicals"):
				id = simplify.SimplifyRadicals(store, id, ctx)
			case getFlag(cmd, "logs"):
				id = simplify.SimplifyLogarithms(store, id, ctx)
			default:
				id = simplify.SimplifyWith(store, id, ctx)
			}
			//
			if getFlag(cmd, "contract") {
				id = simplify.ContractLogarithms(store, id, ctx)
			}
			//
			if getFlag(cmd, "expand-trig") {
				id = simplify.ExpandTrig(store, id)
			}
			//
			if getFlag(cmd, "sum-to-product") {
				id = simplify.SumToProduct(store, id)
			}
			//
			fmt.Println(render(cmd, store, id))
		}
	},
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
	simplifyCmd.Flags().Bool("radicals", false, "apply radical identities only")
	simplifyCmd.Flags().Bool("logs", false, "apply logarithm identities only")
	simplifyCmd.Flags().Bool("contract", false, "contract sums of logarithms afterwards")
	simplifyCmd.Flags().Bool("expand-trig", false, "expand trigonometric functions of sums afterwards")
	simplifyCmd.Flags().Bool("sum-to-product", false, "rewrite sums of sines and cosines as products afterwards")
	simplifyCmd.MarkFlagsMutuallyExclusive("radicals", "logs")
}

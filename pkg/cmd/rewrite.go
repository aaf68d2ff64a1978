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
	"os"

	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/consensys/go-algebra/pkg/rewrite"
	"github.com/spf13/cobra"
)

// rewriteCmd represents the rewrite command
var rewriteCmd = &cobra.Command{
	Use:   "rewrite [flags] expression...",
	Short: "rewrite expressions using the full pipeline.",
	Long: `Rewrite one or more expressions by repeatedly applying basic folding,
domain-aware rewriting, user supplied rules (see --rules) and simplification
until nothing changes, or the step budget is exhausted.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			store    = expr.NewStore()
			ctx      = getContext(cmd)
			steps    = getUint(cmd, "steps")
			filename = getString(cmd, "rules")
			rules    []rewrite.Rule
		)
		//
		if filename != "" {
			registry, err := rewrite.ReadRuleFile(filename, ctx)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			rules = registry.Rules()
		}
		//
		for _, arg := range args {
			id, stats := rewrite.RewritePipeline(store, parseExpression(store, arg), ctx, rules, steps)
			//
			fmt.Println(render(cmd, store, id))
			printStats(cmd, stats)
		}
	},
}

// fixpointCmd represents the fixpoint command
var fixpointCmd = &cobra.Command{
	Use:   "fixpoint [flags] expression...",
	Short: "repeatedly apply basic folding to expressions.",
	Long: `Repeatedly apply basic folding (e.g. exp(0) => 1 and 2^3 => 8) to one or
more expressions until nothing changes, or the step budget is exhausted.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			store = expr.NewStore()
			steps = getUint(cmd, "steps")
		)
		//
		for _, arg := range args {
			id, stats := rewrite.RewriteFixpoint(store, parseExpression(store, arg), steps)
			//
			fmt.Println(render(cmd, store, id))
			printStats(cmd, stats)
		}
	},
}

func printStats(cmd *cobra.Command, stats rewrite.Stats) {
	if getFlag(cmd, "stats") {
		fmt.Printf("steps: %d, nodes: %d => %d, changed: %t\n", stats.Steps, stats.NodesBefore, stats.NodesAfter,
			stats.Changed)
	}
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(fixpointCmd)
	rewriteCmd.Flags().StringP("rules", "r", "", "read additional rewrite rules from a YAML file")
	rewriteCmd.Flags().Uint("steps", 16, "maximum number of rewriting steps")
	rewriteCmd.Flags().Bool("stats", false, "report rewriting statistics")
	fixpointCmd.Flags().Uint("steps", 16, "maximum number of rewriting steps")
	fixpointCmd.Flags().Bool("stats", false, "report rewriting statistics")
}

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
	"github.com/consensys/go-algebra/pkg/simplify"
	"github.com/consensys/go-algebra/pkg/util"
	"github.com/consensys/go-algebra/pkg/util/source"
	"github.com/consensys/go-algebra/pkg/util/termio"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench [flags] file",
	Short: "simplify and rewrite every expression in a file.",
	Long: `Read zero or more expressions from a file, then simplify and rewrite each
of them in turn.  A table summarising the results is printed, along with
(optionally) the collected rewriting metrics.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			store = expr.NewStore()
			ctx   = getContext(cmd)
			steps = getUint(cmd, "steps")
			stats = util.NewPerfStats()
		)
		//
		srcfile, err := source.ReadFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		ids, errs := expr.ParseSource(store, srcfile)
		if len(errs) > 0 {
			for i := range errs {
				printSyntaxError(&errs[i])
			}
			//
			os.Exit(2)
		}
		//
		stats.Log("Parsing expressions")
		//
		var (
			table  = termio.NewTablePrinter(5)
			header = termio.BoldAnsiEscape()
			green  = termio.NewAnsiEscape().FgColour(termio.GREEN)
			width  = getUint(cmd, "width")
		)
		//
		table.AddRow("expression", "simplified", "fixpoint", "pipeline", "nodes")
		//
		for col := uint(0); col < table.Width(); col++ {
			table.SetEscape(col, 0, header)
			table.SetMaxWidth(col, width)
		}
		//
		for _, id := range ids {
			var (
				simplified   = simplify.SimplifyWith(store, id, ctx)
				folded, _    = rewrite.RewriteFixpoint(store, id, steps)
				rewritten, s = rewrite.RewritePipeline(store, id, ctx, nil, steps)
			)
			//
			row := table.AddRow(render(cmd, store, id), render(cmd, store, simplified), render(cmd, store, folded),
				render(cmd, store, rewritten), fmt.Sprintf("%d => %d", s.NodesBefore, s.NodesAfter))
			//
			if s.NodesAfter < s.NodesBefore {
				table.SetEscape(4, row, green)
			}
		}
		//
		stats.Log("Rewriting expressions")
		table.AnsiEscapes(isTerminal())
		table.Print(os.Stdout)
		//
		if getFlag(cmd, "metrics") {
			printMetrics()
		}
	},
}

// Print all metrics registered with the default registry, in the text
// exposition format.
func printMetrics() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(os.Stdout, family); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Uint("steps", 16, "maximum number of rewriting steps")
	benchCmd.Flags().Uint("width", 40, "maximum width of a column (or 0 for unbounded)")
	benchCmd.Flags().Bool("metrics", false, "print collected metrics")
}

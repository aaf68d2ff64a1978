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
	"strings"

	"github.com/consensys/go-algebra/pkg/assume"
	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/consensys/go-algebra/pkg/util/source"
	"github.com/consensys/go-algebra/pkg/util/termio"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string array, or panic if an error arises.
func getStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Construct an assumption context from the "--assume" flags, each of which
// has the form "symbol:property".
func getContext(cmd *cobra.Command) *assume.Context {
	ctx, err := parseAssumptions(getStringArray(cmd, "assume"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return ctx
}

func parseAssumptions(assumptions []string) (*assume.Context, error) {
	var ctx = assume.NewContext()
	//
	for _, a := range assumptions {
		symbol, name, ok := strings.Cut(a, ":")
		if !ok || !expr.IsIdentifier(symbol) {
			return nil, fmt.Errorf("malformed assumption \"%s\" (expected symbol:property)", a)
		}
		//
		prop, err := assume.ParseProperty(name)
		if err != nil {
			return nil, err
		}
		//
		ctx.Assume(symbol, prop)
	}
	//
	return ctx, nil
}

// Parse an expression given on the command line, exiting if it is malformed.
func parseExpression(store *expr.Store, text string) expr.Id {
	id, err := expr.Parse(store, text)
	//
	if err == nil {
		return id
	} else if e, ok := err.(*source.SyntaxError); ok {
		printSyntaxError(e)
	} else {
		fmt.Println(err)
	}
	//
	os.Exit(2)
	// unreachable
	return 0
}

// Render an expression either in infix or S-expression syntax.
func render(cmd *cobra.Command, store *expr.Store, id expr.Id) string {
	if getFlag(cmd, "lisp") {
		return store.Lisp(id).String(false)
	}
	//
	return store.String(id)
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	var (
		span   = err.Span()
		line   = err.FirstEnclosingLine()
		colour = termio.BoldAnsiEscape().FgColour(termio.RED)
		// Highlight at least one character, even for errors at end-of-file.
		length = max(1, min(line.Length()-span.Start()+line.Start(), span.Length()))
	)
	// Print error + line number
	fmt.Printf("%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), err.Message())
	// Print line
	fmt.Println(line.String())
	// Print indent
	fmt.Print(strings.Repeat(" ", max(0, span.Start()-line.Start())))
	// Print highlight
	fmt.Println(colour.Wrap(strings.Repeat("^", length), isTerminal()))
}

// Check whether standard output is an interactive terminal, in which case ANSI
// escapes can be used.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

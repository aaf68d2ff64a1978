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
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/go-algebra/pkg/expr"
	"github.com/consensys/go-algebra/pkg/util/source"
	"github.com/consensys/go-algebra/pkg/util/source/sexp"
)

// Parse a pattern written in the S-expression syntax of expressions, where
// "?name" denotes a wildcard.  For example, "(+ (^ (sin ?u) 2) (^ (cos ?u) 2))".
// Subtraction, division and square roots are translated into their canonical
// forms, hence "(- ?a)" is read as "(* -1 ?a)" and "(sqrt ?a)" as
// "(^ ?a 1/2)".
func Parse(text string) (Pattern, error) {
	var srcfile = source.NewSourceFile("<pattern>", []byte(text))
	//
	term, srcmap, err := sexp.Parse(srcfile)
	//
	if err != nil {
		return nil, err
	} else if term == nil {
		return nil, srcfile.SyntaxError(source.NewSpan(0, len(srcfile.Contents())), "empty pattern")
	}
	//
	p, errs := FromSExp(term, srcmap)
	//
	if len(errs) > 0 {
		return nil, &errs[0]
	}
	//
	return p, nil
}

// FromSExp translates an S-expression into a pattern, using the given source map
// to report errors.
func FromSExp(term sexp.SExp, srcmap *source.Map[sexp.SExp]) (Pattern, []source.SyntaxError) {
	p := sexp.NewTranslator[Pattern](srcmap.Source(), srcmap)
	//
	p.AddSymbolRule(wildcardRule)
	p.AddSymbolRule(numberRule)
	p.AddSymbolRule(symbolRule)
	p.AddRecursiveListRule("+", func(_ string, args []Pattern) (Pattern, error) {
		return NewAdd(args...), nil
	})
	p.AddRecursiveListRule("*", func(_ string, args []Pattern) (Pattern, error) {
		return NewMul(args...), nil
	})
	p.AddRecursiveListRule("-", func(_ string, args []Pattern) (Pattern, error) {
		switch len(args) {
		case 0:
			return nil, errors.New("incorrect number of arguments")
		case 1:
			return NewMul(NewInteger(-1), args[0]), nil
		}
		//
		terms := []Pattern{args[0]}
		//
		for _, arg := range args[1:] {
			terms = append(terms, NewMul(NewInteger(-1), arg))
		}
		//
		return NewAdd(terms...), nil
	})
	p.AddRecursiveListRule("/", func(_ string, args []Pattern) (Pattern, error) {
		if len(args) != 2 {
			return nil, errors.New("incorrect number of arguments")
		}
		//
		return NewMul(args[0], NewPower(args[1], NewInteger(-1))), nil
	})
	p.AddRecursiveListRule("^", func(_ string, args []Pattern) (Pattern, error) {
		if len(args) != 2 {
			return nil, errors.New("incorrect number of arguments")
		}
		//
		return NewPower(args[0], args[1]), nil
	})
	p.AddRecursiveListRule("sqrt", func(_ string, args []Pattern) (Pattern, error) {
		if len(args) != 1 {
			return nil, errors.New("incorrect number of arguments")
		}
		//
		return NewPower(args[0], NewRational(1, 2)), nil
	})
	p.AddDefaultRecursiveListRule(func(name string, args []Pattern) (Pattern, error) {
		if !expr.IsIdentifier(name) {
			return nil, fmt.Errorf("invalid function name \"%s\"", name)
		}
		//
		return NewFunction(name, args...), nil
	})
	//
	return p.Translate(term)
}

func wildcardRule(symbol string) (Pattern, bool, error) {
	name, ok := strings.CutPrefix(symbol, "?")
	//
	if !ok {
		return nil, false, nil
	} else if name != "_" && !expr.IsIdentifier(name) {
		return nil, true, fmt.Errorf("invalid wildcard \"%s\"", symbol)
	}
	//
	return NewAny(name), true, nil
}

func numberRule(symbol string) (Pattern, bool, error) {
	var (
		num, den, isRational = strings.Cut(symbol, "/")
		n, d                 big.Int
	)
	//
	if _, ok := n.SetString(num, 10); !ok {
		return nil, false, nil
	} else if !n.IsInt64() {
		return nil, true, errors.New("integer literal out of range")
	} else if !isRational {
		return NewInteger(n.Int64()), true, nil
	} else if _, ok := d.SetString(den, 10); !ok {
		return nil, false, nil
	} else if d.Sign() == 0 {
		return nil, true, expr.ErrInvalidRational
	}
	// Normalise
	r := new(big.Rat).SetFrac(&n, &d)
	//
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return nil, true, errors.New("rational literal out of range")
	} else if r.IsInt() {
		return NewInteger(r.Num().Int64()), true, nil
	}
	//
	return NewRational(r.Num().Int64(), r.Denom().Int64()), true, nil
}

func symbolRule(symbol string) (Pattern, bool, error) {
	if expr.IsIdentifier(symbol) {
		return NewSymbol(symbol), true, nil
	}
	//
	return nil, false, nil
}

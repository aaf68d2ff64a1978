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
package expr

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/consensys/go-algebra/pkg/util/source"
	"github.com/consensys/go-algebra/pkg/util/source/sexp"
)

// Parse a single expression given in S-expression syntax, such as
// "(+ (^ (sin x) 2) (^ (cos x) 2))".  The following forms are recognised:
// (+ e...), (* e...), (- e), (- e e...), (/ e e), (^ e e), (sqrt e),
// (piecewise v c ...) and (f e...) for any other function f.  Atoms are
// integers, rationals (n/d) and identifiers.  Errors are reported as
// *source.SyntaxError.
func Parse(store *Store, text string) (Id, error) {
	var srcfile = source.NewSourceFile("<input>", []byte(text))
	//
	term, srcmap, err := sexp.Parse(srcfile)
	//
	if err != nil {
		return 0, err
	} else if term == nil {
		return 0, srcfile.SyntaxError(source.NewSpan(0, len(srcfile.Contents())), "empty expression")
	}
	//
	id, errs := ParseSExp(store, term, srcmap)
	//
	if len(errs) > 0 {
		return 0, &errs[0]
	}
	//
	return id, nil
}

// ParseSource parses zero or more expressions from a given source file.
func ParseSource(store *Store, srcfile *source.File) ([]Id, []source.SyntaxError) {
	terms, srcmap, err := sexp.ParseAll(srcfile)
	//
	if err != nil {
		return nil, []source.SyntaxError{*err}
	}
	//
	var (
		ids    = make([]Id, 0, len(terms))
		errors []source.SyntaxError
	)
	//
	for _, term := range terms {
		id, errs := ParseSExp(store, term, srcmap)
		ids = append(ids, id)
		errors = append(errors, errs...)
	}
	//
	return ids, errors
}

// ParseSExp translates an S-expression into an expression, using the given
// source map to report errors.
func ParseSExp(store *Store, term sexp.SExp, srcmap *source.Map[sexp.SExp]) (Id, []source.SyntaxError) {
	return newTranslator(store, srcmap).Translate(term)
}

func newTranslator(store *Store, srcmap *source.Map[sexp.SExp]) *sexp.Translator[Id] {
	p := sexp.NewTranslator[Id](srcmap.Source(), srcmap)
	//
	p.AddSymbolRule(numberRule(store))
	p.AddSymbolRule(identifierRule(store))
	p.AddRecursiveListRule("+", func(_ string, args []Id) (Id, error) {
		return store.Add(args...), nil
	})
	p.AddRecursiveListRule("*", func(_ string, args []Id) (Id, error) {
		return store.Mul(args...), nil
	})
	p.AddRecursiveListRule("-", subRule(store))
	p.AddRecursiveListRule("/", divRule(store))
	p.AddRecursiveListRule("^", func(_ string, args []Id) (Id, error) {
		if len(args) != 2 {
			return 0, errors.New("incorrect number of arguments")
		}
		//
		return store.Pow(args[0], args[1]), nil
	})
	p.AddRecursiveListRule("sqrt", func(_ string, args []Id) (Id, error) {
		if len(args) != 1 {
			return 0, errors.New("incorrect number of arguments")
		}
		//
		return store.Sqrt(args[0]), nil
	})
	p.AddRecursiveListRule("piecewise", func(_ string, args []Id) (Id, error) {
		if len(args)%2 != 0 {
			return 0, errors.New("piecewise requires (value, condition) pairs")
		}
		//
		branches := make([]Branch, len(args)/2)
		//
		for i := range branches {
			branches[i] = Branch{args[2*i], args[2*i+1]}
		}
		//
		return store.Piecewise(branches...), nil
	})
	p.AddDefaultRecursiveListRule(func(name string, args []Id) (Id, error) {
		if !IsIdentifier(name) {
			return 0, fmt.Errorf("invalid function name \"%s\"", name)
		}
		//
		return store.Func(name, args...), nil
	})
	//
	return p
}

func numberRule(store *Store) sexp.SymbolRule[Id] {
	return func(symbol string) (Id, bool, error) {
		var (
			num, den, isRational = strings.Cut(symbol, "/")
			n, d                 big.Int
		)
		//
		if _, ok := n.SetString(num, 10); !ok {
			return 0, false, nil
		} else if !isRational {
			return store.BigInteger(&n), true, nil
		} else if _, ok := d.SetString(den, 10); !ok {
			return 0, false, nil
		} else if d.Sign() == 0 {
			return 0, true, ErrInvalidRational
		}
		//
		return store.Number(new(big.Rat).SetFrac(&n, &d)), true, nil
	}
}

func identifierRule(store *Store) sexp.SymbolRule[Id] {
	return func(symbol string) (Id, bool, error) {
		if IsIdentifier(symbol) {
			return store.Symbol(symbol), true, nil
		}
		//
		return 0, false, nil
	}
}

func subRule(store *Store) sexp.RecursiveRule[Id] {
	return func(_ string, args []Id) (Id, error) {
		switch len(args) {
		case 0:
			return 0, errors.New("incorrect number of arguments")
		case 1:
			return store.Neg(args[0]), nil
		}
		//
		terms := make([]Id, len(args))
		terms[0] = args[0]
		//
		for i, arg := range args[1:] {
			terms[i+1] = store.Neg(arg)
		}
		//
		return store.Add(terms...), nil
	}
}

func divRule(store *Store) sexp.RecursiveRule[Id] {
	return func(_ string, args []Id) (Id, error) {
		if len(args) != 2 {
			return 0, errors.New("incorrect number of arguments")
		} else if store.IsValue(args[1], 0) {
			return 0, errors.New("division by zero")
		}
		//
		return store.Div(args[0], args[1]), nil
	}
}

// IsIdentifier checks whether a given string is a valid symbol or function
// name.  That is, it starts with a letter or underscore, and is followed by
// letters, digits, underscores, dots or primes.
func IsIdentifier(name string) bool {
	for i, c := range name {
		switch {
		case unicode.IsLetter(c) || c == '_':
		case i > 0 && (unicode.IsDigit(c) || c == '.' || c == '\''):
		default:
			return false
		}
	}
	//
	return name != ""
}

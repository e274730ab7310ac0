/*
Package script is a grammar for a small scripting language with
expression-oriented syntax:

	fn fib(n) {
	    if (lt(n, 2)) n else add(fib(sub(n, 1)), fib(sub(n, 2)))
	};
	let x = fib(10);
	while (true) { print(x.str); break; };

Blocks and conditionals are expressions. Calls and property accesses may
be chained after any expression. Statements are terminated by ';'.

The grammar mixes combinators and do-blocks, the latter for rules which
read more naturally as straight-line code.

____________________________________________________________________________

License

This project is provided under the terms of the 3-Clause BSD license.
Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package script

import (
	"strconv"

	"github.com/npillmayer/parsea"
	"github.com/npillmayer/parsea/text"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the syntax-tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

var (
	// Expression parses an expression, surrounded by optional whitespace.
	Expression parsea.Parser[rune, Expr]
	// Statement parses a statement including its terminating ';'.
	Statement parsea.Parser[rune, Stmt]
	// Program parses a sequence of statements spanning the complete input.
	Program parsea.Parser[rune, []Stmt]
)

var ws = text.Regex(`\s*`)

// keyword matches k if it is not followed by a word character.
func keyword(k string) parsea.Parser[rune, struct{}] {
	return parsea.Then(parsea.Literal([]rune(k)), parsea.NotFollowedBy(text.Regex(`\w`)))
}

// sepBy collects p, separated by sep. A trailing separator is accepted.
func sepBy[T, U any](p parsea.Parser[rune, T], sep parsea.Parser[rune, U]) parsea.Parser[rune, []T] {
	return parsea.Do(func(pf *parsea.Performer[rune]) ([]T, error) {
		xs := []T{}
		pf.Try(func() error {
			for {
				x, err := parsea.Perform(pf, p, parsea.AllowPartial())
				if err != nil {
					return err
				}
				xs = append(xs, x)
				if _, err = parsea.Perform(pf, sep, parsea.AllowPartial()); err != nil {
					return err
				}
			}
		})
		return xs, nil
	})
}

func asExpr[T Expr](p parsea.Parser[rune, T]) parsea.Parser[rune, Expr] {
	return parsea.Map(p, func(e T, _ parsea.Config) Expr { return e })
}

func asStmt[T Stmt](p parsea.Parser[rune, T]) parsea.Parser[rune, Stmt] {
	return parsea.Map(p, func(s T, _ parsea.Config) Stmt { return s })
}

var ident = parsea.Map(text.Regex(`\w+`), func(name string, _ parsea.Config) Ident {
	return Ident{Name: name}
})

func init() {
	expr := parsea.Lazy(func() parsea.Parser[rune, Expr] { return Expression })
	stmt := parsea.Lazy(func() parsea.Parser[rune, Stmt] { return Statement })
	//
	boolean := parsea.Choice(
		parsea.Return(keyword("true"), Bool{Value: true}),
		parsea.Return(keyword("false"), Bool{Value: false}),
	)
	digits := parsea.ManyAccum(text.OneOf("0123456789"),
		func(accum string, d rune, _ parsea.Config) string { return accum + string(d) },
		func(parsea.Config) string { return "" },
		parsea.RepeatOptions{Min: 1})
	sign := text.OneOf("+-").Option('+')
	integer := parsea.AndMap(sign, digits, func(s rune, d string) string {
		return string(s) + d
	})
	number := parsea.AndMap(integer, parsea.Then(parsea.El('.'), digits).Option(""),
		func(i, f string) Number {
			if f != "" {
				i += "." + f
			}
			v, err := strconv.ParseFloat(i, 64)
			if err != nil {
				T().Errorf("script: number %s: %v", i, err)
			}
			return Number{Value: v}
		})
	str := parsea.Map(parsea.Around(text.Regex(`(?:[^"\\]|\\.)*`), parsea.El('"')),
		func(s string, _ parsea.Config) String {
			return String{Value: s}
		})
	tuple := parsea.Map(
		parsea.Between(parsea.Skip(sepBy(expr, parsea.El(',')), ws), parsea.El('('), parsea.El(')')),
		func(elements []Expr, _ parsea.Config) Tuple {
			return Tuple{Elements: elements}
		})
	block := parsea.Between(
		parsea.Skip(parsea.AndMap(parsea.Many(stmt, parsea.RepeatOptions{}), expr.Option(nil),
			func(stmts []Stmt, last Expr) Block {
				return Block{Stmts: stmts, Last: last}
			}), ws),
		parsea.El('{'), parsea.El('}'))
	ifKeyword := parsea.Then(keyword("if"), ws)
	condition := parsea.Between(expr, parsea.El('('), parsea.El(')'))
	elseBranch := parsea.Then(keyword("else"), expr)
	ifExpr := parsea.Do(func(pf *parsea.Performer[rune]) (If, error) {
		if _, err := parsea.Perform(pf, ifKeyword); err != nil {
			return If{}, err
		}
		test, err := parsea.Perform(pf, condition)
		if err != nil {
			return If{}, err
		}
		then, err := parsea.Perform(pf, expr)
		if err != nil {
			return If{}, err
		}
		els := parsea.PerformOr(pf, elseBranch, nil)
		return If{Test: test, Then: then, Else: els}, nil
	})
	//
	// Calls and property accesses are postfix operations, chained after
	// an expression.
	call := parsea.Map(tuple, func(args Tuple, _ parsea.Config) func(Expr) Expr {
		return func(callee Expr) Expr {
			return Call{Callee: callee, Arguments: args.Elements}
		}
	})
	property := parsea.Map(parsea.Then(parsea.Then(parsea.El('.'), ws), ident),
		func(id Ident, _ parsea.Config) func(Expr) Expr {
			return func(target Expr) Expr {
				return Property{Target: target, Name: id.Name}
			}
		})
	postfix := parsea.Skip(parsea.Choice(call, property), ws)
	tail := func(e Expr, _ parsea.Config) parsea.Parser[rune, Expr] {
		return parsea.ManyAccum(postfix,
			func(accum Expr, op func(Expr) Expr, _ parsea.Config) Expr { return op(accum) },
			func(parsea.Config) Expr { return e },
			parsea.RepeatOptions{})
	}
	Expression = parsea.FlatMap(parsea.Around(parsea.Choice(
		asExpr(boolean),
		asExpr(number),
		asExpr(str),
		asExpr(tuple),
		asExpr(block),
		asExpr(ifExpr),
		asExpr(ident),
	), ws), tail)
	//
	let := parsea.AndMap(
		parsea.Skip(parsea.Then(keyword("let"), parsea.Around(ident, ws)), parsea.El('=')),
		expr,
		func(id Ident, value Expr) Let {
			return Let{Name: id.Name, Init: value}
		})
	params := parsea.Map(
		parsea.Between(parsea.Skip(sepBy(parsea.Around(ident, ws), parsea.El(',')), ws),
			parsea.El('('), parsea.El(')')),
		func(ids []Ident, _ parsea.Config) []string {
			names := make([]string, len(ids))
			for i, id := range ids {
				names[i] = id.Name
			}
			return names
		})
	fnKeyword, fnName := keyword("fn"), parsea.Around(ident, ws)
	defFn := parsea.Do(func(pf *parsea.Performer[rune]) (DefFn, error) {
		if _, err := parsea.Perform(pf, fnKeyword); err != nil {
			return DefFn{}, err
		}
		name, err := parsea.Perform(pf, fnName)
		if err != nil {
			return DefFn{}, err
		}
		names, err := parsea.Perform(pf, params)
		if err != nil {
			return DefFn{}, err
		}
		body, err := parsea.Perform(pf, expr)
		if err != nil {
			return DefFn{}, err
		}
		return DefFn{Name: name.Name, Params: names, Body: body}, nil
	})
	ret := parsea.Map(parsea.Skip(parsea.Then(keyword("return"), expr.Option(nil)), ws),
		func(body Expr, _ parsea.Config) Return {
			return Return{Body: body}
		})
	while := parsea.AndMap(
		parsea.Then(parsea.Skip(keyword("while"), ws), condition),
		expr,
		func(test, body Expr) While {
			return While{Test: test, Body: body}
		})
	brk := parsea.Skip(parsea.Return(keyword("break"), Break{}), ws)
	exprStmt := parsea.Map(expr, func(e Expr, _ parsea.Config) ExprStmt {
		return ExprStmt{Expr: e}
	})
	Statement = parsea.Around(parsea.Skip(parsea.Choice(
		asStmt(let),
		asStmt(defFn),
		asStmt(ret),
		asStmt(while),
		asStmt(brk),
		asStmt(exprStmt),
	), parsea.El(';')), ws)
	//
	Program = parsea.Skip(parsea.Then(ws, parsea.Many(Statement, parsea.RepeatOptions{})),
		parsea.EOI[rune]())
}

// Parse parses a program.
func Parse(input string, opts ...parsea.Option) ([]Stmt, error) {
	stmts, err := text.ParseValue(Program, input, opts...)
	if err != nil {
		T().Infof("script: %v", err)
		return nil, err
	}
	return stmts, nil
}

// ParseExpr parses a single expression spanning the complete input.
func ParseExpr(input string, opts ...parsea.Option) (Expr, error) {
	return text.ParseValue(parsea.Skip(Expression, parsea.EOI[rune]()), input, opts...)
}

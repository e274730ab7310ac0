/*
Package sexpr is a grammar for S-expressions.

Atoms are runs of characters other than whitespace, parentheses and
double quotes, or string literals in double quotes. A quote character in
front of a list is expanded to a list headed by the atom “quote”:

	'(1 2)   ⇒   (quote 1 2)

____________________________________________________________________________

License

This project is provided under the terms of the 3-Clause BSD license.
Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sexpr

import (
	"strings"

	"github.com/npillmayer/parsea"
	"github.com/npillmayer/parsea/text"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the syntax-tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

// Expr is an S-expression, either an Atom or a List.
type Expr interface {
	String() string
	sexpr()
}

// Atom is a symbol or a string literal. String literals keep their quotes.
type Atom string

// List is a parenthesized sequence of expressions.
type List []Expr

func (Atom) sexpr() {}
func (List) sexpr() {}

func (a Atom) String() string {
	return string(a)
}

func (l List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Expression parses an S-expression, surrounded by optional whitespace.
var Expression parsea.Parser[rune, Expr]

var list parsea.Parser[rune, List]

func init() {
	list = parsea.Lazy(func() parsea.Parser[rune, List] {
		elements := parsea.Many(Expression, parsea.RepeatOptions{})
		return parsea.Map(parsea.Between(elements, parsea.El('('), parsea.El(')')),
			func(exprs []Expr, _ parsea.Config) List {
				return List(exprs)
			})
	})
	quoted := parsea.Map(parsea.Then(parsea.El('\''), list), func(l List, _ parsea.Config) Expr {
		return append(List{Atom("quote")}, l...)
	})
	Expression = parsea.Around(parsea.Choice(
		quoted,
		parsea.Map(list, func(l List, _ parsea.Config) Expr { return l }),
		atom(`"(?:[^"\\]|\\.)*"`),
		atom(`[^\s()"]+`),
	), text.Regex(`\s*`))
}

func atom(pattern string) parsea.Parser[rune, Expr] {
	return parsea.Map(text.Regex(pattern), func(s string, _ parsea.Config) Expr {
		return Atom(s)
	})
}

// Parse parses input, which must consist of exactly one S-expression.
func Parse(input string) (Expr, error) {
	doc := parsea.Skip(Expression, parsea.EOI[rune]())
	e, err := text.ParseValue(doc, input)
	if err != nil {
		T().Infof("sexpr: %v", err)
		return nil, err
	}
	return e, nil
}

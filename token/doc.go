/*
Package token lets parsea parsers run on streams of tokens.

Parsing does not require a separate lexer phase. However, some grammars
are easier to write on top of tokens. Any scanner implementing the gorgo
scanner.Tokenizer interface may be used: Drain reads it to the end and
produces a source of Tokens, ready for parsea parsers.

	sc := token.NewScanner(strings.NewReader("x = 42"), token.SkipSpace(true))
	tokens := token.Drain(sc)
	assign := parsea.Seq(token.Kind(token.Ident), token.Lexeme(token.Punct, "="),
		token.Kind(token.Number))
	result, err := assign.Parse(tokens)

The Scanner of this package is a small general purpose tokenizer,
splitting text into identifiers, numbers, whitespace and punctuation.

____________________________________________________________________________

License

This project is provided under the terms of the 3-Clause BSD license.
Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package token

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the syntax-tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

/*
Package text provides parsers for textual input.

Parsers of package parsea work on sources of arbitrary elements. For text,
the element type is rune: a Source wraps a Go string and presents it as a
sequence of Unicode code points. Indexes reported by parse results are
therefore rune indexes, not byte offsets.

	word := text.String("hello")
	result, err := text.Parse(word, "hello world")
	// result.Index == 5

Besides matching literal strings and single code points, this package
knows about “user perceived characters” (grapheme clusters, as defined by
Unicode UAX#29) and can delegate to regular expressions.

Grapheme-aware parsers (AnyChar, GraphemeString) only match at cluster
boundaries. GraphemeString compares in Unicode normalization form NFC, so
a decomposed “é” in the input matches a precomposed “é” in the literal.

The parsers of this package fail if run on a source which has not been
created by NewSource (or Parse).

____________________________________________________________________________

License

This project is provided under the terms of the 3-Clause BSD license.
Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the syntax-tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

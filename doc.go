/*
Package parsea is a parser combinator runtime.

Description

Grammars are built from small, typed parsing units which are composed into
larger ones. A grammar author never writes a scanner or a parse loop; the
behavior of a parser is assembled from primitives and combinators.

	digit := parsea.Satisfy(func(r rune, _ parsea.Config) bool { return unicode.IsDigit(r) })
	number := parsea.Many(digit, parsea.RepeatOptions{Min: 1}).Label("number")
	list := parsea.SepBy(number, parsea.El(','), parsea.SepOptions{})
	result, err := list.Parse(parsea.Slice[rune]([]rune("1,22,333")))

Parsers are inert, reusable descriptions. Invoking Parse creates a Context
for the run, which owns the source, an optional configuration and an error
accumulator. Cursors of type State are threaded through the parsers; a
cursor holds the index of the next unconsumed element and the most recent
value. Cursors are never mutated, so backtracking is simply resuming from
an earlier cursor.

Sources

Parsers run on any indexable sequence implementing Source. Slice adapts Go
slices. Sub-package text adapts Go strings (as sequences of runes) and
provides string, grapheme and regular expression primitives. Sub-package
token adapts token streams of a gorgo scanner.

Errors

When a parse fails, the error reported is the one of the branch that got
furthest into the input. The Context retains only failures recorded at the
largest index seen so far; failures at smaller indexes are discarded as soon
as a deeper one is recorded. Label collapses the failures of a grammar rule
into a single, rule-level error.

Do-Notation

Do lets a grammar rule be written as straight-line code. The block receives a
Performer, and each call to Perform runs a parser at the block-local cursor.
A failing Perform returns an abort signal, which the block is expected to
return, the same way Go code returns errors early. Try and While catch the
signal and roll the local cursor back.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package parsea

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

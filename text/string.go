package text

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/parsea"
	"golang.org/x/text/unicode/norm"
)

// Parse runs p on the string s.
func Parse[T any](p parsea.Parser[rune, T], s string, opts ...parsea.Option) (parsea.Result[T], error) {
	return p.Parse(NewSource(s), opts...)
}

// ParseValue runs p on the string s and returns the value produced.
// See parsea.ParseValue.
func ParseValue[T any](p parsea.Parser[rune, T], s string, opts ...parsea.Option) (T, error) {
	return parsea.ParseValue(p, NewSource(s), opts...)
}

// sourceOf returns the text source of a parse run. If the parse is not
// running on text, a failure is recorded at index at.
func sourceOf(ctx *parsea.Context[rune], at int) (*Source, bool) {
	src, ok := ctx.Source().(*Source)
	if !ok {
		ctx.AddError(at)
	}
	return src, ok
}

// String matches the literal string lit, code point by code point.
// On mismatch the failure is recorded at the start of the literal.
func String(lit string) parsea.Parser[rune, string] {
	runes := []rune(lit)
	expected := parsea.Expected{Value: lit}
	return parsea.NewParser(func(ctx *parsea.Context[rune], at int) (parsea.State[string], bool) {
		src, ok := sourceOf(ctx, at)
		if !ok {
			return parsea.State[string]{}, false
		}
		if at+len(runes) > src.Len() {
			ctx.AddError(at, expected)
			return parsea.State[string]{}, false
		}
		for i, r := range runes {
			if src.At(at+i) != r {
				ctx.AddError(at, expected)
				return parsea.State[string]{}, false
			}
		}
		return parsea.Advance(at, len(runes), lit), true
	})
}

// GraphemeString matches lit grapheme cluster by grapheme cluster. Both
// the literal and the input are compared in normalization form NFC. The
// match has to start and end at cluster boundaries of the input.
//
// The value produced is the matched part of the input, which may differ
// from lit in its normalization form.
func GraphemeString(lit string) parsea.Parser[rune, string] {
	normalized := norm.NFC.String(lit)
	expected := parsea.Expected{Value: normalized}
	return parsea.NewParser(func(ctx *parsea.Context[rune], at int) (parsea.State[string], bool) {
		src, ok := sourceOf(ctx, at)
		if !ok {
			return parsea.State[string]{}, false
		}
		pos, done := at, 0
		for done < len(normalized) {
			n := src.cluster(pos)
			if n == 0 {
				ctx.AddError(at, expected)
				return parsea.State[string]{}, false
			}
			segment := norm.NFC.String(src.Slice(pos, pos+n))
			if !strings.HasPrefix(normalized[done:], segment) {
				ctx.AddError(at, expected)
				return parsea.State[string]{}, false
			}
			done += len(segment)
			pos += n
		}
		return parsea.State[string]{Index: pos, Value: src.Slice(at, pos)}, true
	})
}

// CodePoint matches a single code point, produced as a string. It fails at
// the end of the input and on bytes which are not valid UTF-8.
func CodePoint() parsea.Parser[rune, string] {
	return parsea.NewParser(func(ctx *parsea.Context[rune], at int) (parsea.State[string], bool) {
		src, ok := sourceOf(ctx, at)
		if !ok {
			return parsea.State[string]{}, false
		}
		if at >= src.Len() {
			ctx.AddError(at)
			return parsea.State[string]{}, false
		}
		if r, size := utf8.DecodeRuneInString(src.rest(at)); r == utf8.RuneError && size <= 1 {
			ctx.AddError(at)
			return parsea.State[string]{}, false
		}
		return parsea.Advance(at, 1, src.Slice(at, at+1)), true
	})
}

// AnyChar matches a single user perceived character (grapheme cluster).
// It fails at the end of the input and in the middle of a cluster.
func AnyChar() parsea.Parser[rune, string] {
	return parsea.NewParser(func(ctx *parsea.Context[rune], at int) (parsea.State[string], bool) {
		src, ok := sourceOf(ctx, at)
		if !ok {
			return parsea.State[string]{}, false
		}
		n := src.cluster(at)
		if n == 0 {
			ctx.AddError(at)
			return parsea.State[string]{}, false
		}
		return parsea.Advance(at, n, src.Slice(at, at+n)), true
	})
}

// OneOf matches a single code point contained in chars.
func OneOf(chars string) parsea.Parser[rune, rune] {
	return parsea.OneOf([]rune(chars)...)
}

// NoneOf matches a single code point not contained in chars.
func NoneOf(chars string) parsea.Parser[rune, rune] {
	return parsea.NoneOf([]rune(chars)...)
}

/*
Package json is a JSON grammar, written with parsea combinators.

Values are produced the way encoding/json decodes into an interface{}:
objects as map[string]interface{}, arrays as []interface{}, numbers as
float64, and strings, booleans and null as string, bool and nil.
With configuration key IntegersKey set, integral numbers are produced as
int64.

	v, err := json.Parse(`{"a": [1, true]}`)

See https://www.json.org/ for the grammar.

____________________________________________________________________________

License

This project is provided under the terms of the 3-Clause BSD license.
Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package json

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/npillmayer/parsea"
	"github.com/npillmayer/parsea/text"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the syntax-tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

// Value parses a JSON value, surrounded by optional whitespace.
var Value parsea.Parser[rune, any]

// Document parses a JSON value which spans the complete input.
var Document parsea.Parser[rune, any]

var ws = text.Regex(`[ \n\r\t]*`)

func init() {
	Value = parsea.Lazy(func() parsea.Parser[rune, any] {
		return parsea.Around(parsea.Choice(
			object(),
			array(),
			parsea.AsAny(str),
			number,
			parsea.Return(text.String("true"), any(true)),
			parsea.Return(text.String("false"), any(false)),
			parsea.Return(text.String("null"), any(nil)),
		), ws)
	})
	Document = parsea.Skip(Value, parsea.EOI[rune]())
}

// Parse parses the JSON document input.
func Parse(input string, opts ...parsea.Option) (any, error) {
	v, err := text.ParseValue(Document, input, opts...)
	if err != nil {
		T().Infof("json: %v", err)
	}
	return v, err
}

var str = parsea.Map(
	parsea.Around(text.Regex(`(?:\\(?:["\\/bfnrt]|u[0-9A-Fa-f]{4})|[^"\\])*`), parsea.El('"')),
	func(escaped string, _ parsea.Config) string {
		return unescape(escaped)
	})

// IntegersKey is a configuration key. If set to true, numbers without
// fraction and exponent are produced as int64, if they fit.
const IntegersKey = "integers"

// integers reports whether IntegersKey is configured. A value other than
// a bool is traced and ignored.
func integers(conf parsea.Config) bool {
	if !conf.IsSet(IntegersKey) {
		return false
	}
	v, _ := conf.Get(IntegersKey)
	b, ok := v.(bool)
	if !ok {
		T().Errorf("json: configuration %q must be a bool, have %v", IntegersKey, v)
	}
	return b
}

var number = parsea.Map(
	text.Regex(`-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[Ee][-+]?[0-9]+)?`),
	func(n string, conf parsea.Config) any {
		if integers(conf) && !strings.ContainsAny(n, ".eE") {
			if i, err := strconv.ParseInt(n, 10, 64); err == nil {
				return i
			}
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil { // out of range, f is ±Inf
			T().Errorf("json: number %s: %v", n, err)
		}
		return f
	})

func array() parsea.Parser[rune, any] {
	elements := parsea.Skip(parsea.SepBy(Value, parsea.El(','), parsea.SepOptions{}), ws)
	return parsea.AsAny(parsea.Between(elements, parsea.El('['), parsea.El(']')))
}

func object() parsea.Parser[rune, any] {
	key := parsea.Skip(parsea.Around(str, ws), parsea.El(':'))
	member := parsea.And(key, Value)
	members := parsea.Skip(parsea.SepBy(member, parsea.El(','), parsea.SepOptions{}), ws)
	return parsea.Map(parsea.Between(members, parsea.El('{'), parsea.El('}')),
		func(pairs []parsea.Pair[string, any], _ parsea.Config) any {
			obj := make(map[string]any, len(pairs))
			for _, p := range pairs {
				obj[p.First] = p.Second
			}
			return obj
		})
}

var escapes = map[byte]rune{
	'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t',
}

// unescape resolves the escape sequences of a JSON string. The input has
// already been validated by the string pattern.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		if s[i] != 'u' {
			if r, ok := escapes[s[i]]; ok {
				b.WriteRune(r)
			} else {
				b.WriteByte(s[i]) // '"', '\\' and '/'
			}
			continue
		}
		r := hex4(s[i+1 : i+5])
		i += 4
		if utf16.IsSurrogate(r) && i+6 < len(s) && s[i+1] == '\\' && s[i+2] == 'u' {
			if pair := utf16.DecodeRune(r, hex4(s[i+3:i+7])); pair != unicode.ReplacementChar {
				r = pair
				i += 6
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func hex4(h string) rune {
	n, _ := strconv.ParseUint(h, 16, 32)
	return rune(n)
}

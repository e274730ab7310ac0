package json

import (
	stdjson "encoding/json"
	"errors"
	"testing"

	"github.com/npillmayer/parsea"
	"github.com/npillmayer/parsea/internal/tracing"
	"github.com/npillmayer/parsea/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	inputs := []string{
		`{"a":1,"b":[true,null]}`,
		" null ",
		" [ ] ",
		" [ null , 0 ] ",
		" {  } ",
		` { "1" : null , "2" : 0 } `,
		"0", "3.141592", "4.2195e1", "0.00E+00", "0e-0",
		"-0", "-3.141592", "-4.2195e1", "-0.00E+00", "-0e-0",
		`{"nested": {"list": [1, [2, [3]]], "s": "x"}}`,
	}
	for _, input := range inputs {
		var expected any
		require.NoError(t, stdjson.Unmarshal([]byte(input), &expected), input)
		v, err := Parse(input)
		if assert.NoError(t, err, input) {
			assert.Equal(t, expected, v, input)
		}
	}
}

func TestInvalidNumbers(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	for _, input := range []string{"00", "- 0", "0.", ".0"} {
		_, err := Parse(input)
		var perr *parsea.Error
		assert.True(t, errors.As(err, &perr), "%q should be invalid JSON", input)
	}
}

func TestEscapes(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	escapes := map[string]string{
		`"`: `"`, `\`: `\`, `/`: `/`,
		"b": "\b", "f": "\f", "n": "\n", "r": "\r", "t": "\t",
		"u1234": "\u1234",
		"ud83d\\ude00": "😀",
	}
	for esc, expected := range escapes {
		v, err := Parse(`"\` + esc + `"`)
		require.NoError(t, err, esc)
		assert.Equal(t, expected, v, esc)
	}
	v, err := Parse(`"plain ü"`)
	require.NoError(t, err)
	assert.Equal(t, "plain ü", v)
}

func TestFailurePosition(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	r, err := text.Parse(Document, `{"a":}`)
	require.NoError(t, err)
	assert.False(t, r.Success)
	assert.Equal(t, 5, r.Index)
	assert.Contains(t, r.Errors, parsea.ParseError(parsea.Expected{Value: "true"}))
	//
	_, err = Parse(`[1, 2`)
	var perr *parsea.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 5, perr.Index)
}

func TestDuplicateKeys(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	v, err := Parse(`{"k": 1, "k": 2}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": 2.0}, v)
}

func TestIntegers(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	conf := parsea.WithConfig(parsea.Config{IntegersKey: true})
	v, err := Parse(`[1, -2, 3.5, 1e2, 12345678901234567890]`, conf)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(-2), 3.5, 100.0, 12345678901234567890.0}, v)
	//
	v, err = Parse(`[1]`, parsea.WithConfig(parsea.Config{IntegersKey: "yes"}))
	require.NoError(t, err)
	assert.Equal(t, []any{1.0}, v, "non-bool setting is ignored")
	v, err = Parse(`[1]`, parsea.WithConfig(parsea.Config{IntegersKey: false}))
	require.NoError(t, err)
	assert.Equal(t, []any{1.0}, v)
}

package main

import (
	"bytes"
	stdjson "encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/parsea/internal/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli := newCLI(strings.NewReader(stdin), &out)
	cli.SetArgs(args)
	cli.SetErr(&bytes.Buffer{})
	err := cli.Execute()
	tracing.SetTestingLog(t) // the command installs its own tracers
	return out.String(), err
}

func TestJSONFromStdin(t *testing.T) {
	out, err := run(t, `{"a": [1, true]}`, "json")
	require.NoError(t, err)
	var v any
	require.NoError(t, stdjson.Unmarshal([]byte(out), &v))
	assert.Equal(t, map[string]any{"a": []any{1.0, true}}, v)
}

func TestJSONFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`[7]`), 0o600))
	out, err := run(t, "", "json", "--config", "integers=true", path)
	require.NoError(t, err)
	assert.JSONEq(t, `[7]`, out)
}

func TestSyntaxErrorFails(t *testing.T) {
	_, err := run(t, `{"a":}`, "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 5")
}

func TestSExpr(t *testing.T) {
	out, err := run(t, "'(1 (2))", "sexpr")
	require.NoError(t, err)
	assert.JSONEq(t, `"(quote 1 (2))"`, out)
}

func TestScriptDump(t *testing.T) {
	out, err := run(t, "let x = f(1);", "script", "-t", "debug")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type": "Let", "name": "x", "init": {
		"type": "Call",
		"callee": {"type": "Ident", "name": "f"},
		"arguments": [{"type": "Number", "value": 1}]
	}}]`, out)
}

func TestTokens(t *testing.T) {
	out, err := run(t, "a = 1", "tokens")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"Kind": 1, "Lexeme": "a", "Pos": 0, "Len": 1},
		{"Kind": 4, "Lexeme": "=", "Pos": 2, "Len": 1},
		{"Kind": 2, "Lexeme": "1", "Pos": 4, "Len": 1}
	]`, out)
}

func TestUnknownTraceLevel(t *testing.T) {
	_, err := run(t, "null", "json", "--trace", "verbose")
	assert.Error(t, err)
}

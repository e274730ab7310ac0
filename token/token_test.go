package token

import (
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/parsea"
	"github.com/npillmayer/parsea/internal/tracing"
)

func TestScanner(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	sc := NewScanner(strings.NewReader("x = 42.5;"))
	kinds := []int{}
	lexemes := []string{}
	for {
		kind, lexeme, _, _ := sc.NextToken(scanner.AnyToken)
		if kind == scanner.EOF {
			break
		}
		kinds = append(kinds, kind)
		lexemes = append(lexemes, string(lexeme.([]byte)))
	}
	if !reflect.DeepEqual(kinds, []int{Ident, Space, Punct, Space, Number, Punct}) {
		t.Errorf("unexpected token categories %v", kinds)
	}
	if !reflect.DeepEqual(lexemes, []string{"x", " ", "=", " ", "42.5", ";"}) {
		t.Errorf("unexpected lexemes %q", lexemes)
	}
}

func TestDrain(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	tokens := Drain(NewScanner(strings.NewReader("größe=(a_1)"), SkipSpace(true)))
	expected := parsea.Slice[Token]{
		{Kind: Ident, Lexeme: "größe", Pos: 0, Len: 7},
		{Kind: Punct, Lexeme: "=", Pos: 7, Len: 1},
		{Kind: Punct, Lexeme: "(", Pos: 8, Len: 1},
		{Kind: Ident, Lexeme: "a_1", Pos: 9, Len: 3},
		{Kind: Punct, Lexeme: ")", Pos: 12, Len: 1},
	}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("expected %v, have %v", expected, tokens)
	}
	if tokens := Drain(NewScanner(strings.NewReader(""))); len(tokens) != 0 {
		t.Errorf("expected no tokens for empty input, have %v", tokens)
	}
}

// replay is a tokenizer re-using its lexeme buffer, like many scanners do.
type replay struct {
	lexemes []string
	buf     []byte
	handler func(error)
}

func (r *replay) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if len(r.lexemes) == 0 {
		return scanner.EOF, nil, 0, 0
	}
	r.buf = append(r.buf[:0], r.lexemes[0]...)
	r.lexemes = r.lexemes[1:]
	return Ident, r.buf, 0, uint64(len(r.buf))
}

func (r *replay) SetErrorHandler(h func(error)) {
	r.handler = h
}

func TestDrainCopiesLexemes(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	rp := &replay{lexemes: []string{"abc", "de"}, buf: make([]byte, 0, 8)}
	tokens := Drain(rp)
	if len(tokens) != 2 || tokens[0].Lexeme != "abc" || tokens[1].Lexeme != "de" {
		t.Errorf("expected lexemes to survive buffer re-use, have %v", tokens)
	}
	if rp.handler == nil {
		t.Errorf("expected Drain to install an error handler")
	}
}

func TestTokenParsers(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	assign := parsea.Seq(Kind(Ident), Lexeme(Punct, "="), Kind(Number))
	tokens := Drain(NewScanner(strings.NewReader("x = 42"), SkipSpace(true)))
	r, err := assign.Parse(tokens)
	if err != nil || !r.Success || r.Index != 3 || r.Value[2].Lexeme != "42" {
		t.Errorf("expected assignment of 42, have %+v/%v", r, err)
	}
	tokens = Drain(NewScanner(strings.NewReader("x + 1"), SkipSpace(true)))
	r, _ = assign.Parse(tokens)
	if r.Success || r.Index != 1 {
		t.Errorf("expected failure at token 1, have %+v", r)
	}
	if !reflect.DeepEqual(r.Errors, []parsea.ParseError{parsea.Expected{Value: "="}}) {
		t.Errorf("expected '=' to be expected, have %v", r.Errors)
	}
	r, _ = assign.Parse(parsea.Slice[Token]{})
	if r.Success || !reflect.DeepEqual(r.Errors, []parsea.ParseError{parsea.Expected{Value: "identifier"}}) {
		t.Errorf("expected identifier to be expected on empty input, have %+v", r)
	}
}

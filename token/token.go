package token

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/parsea"
)

// Token is a token read from a scanner.
type Token struct {
	Kind   int    // token category, as reported by the scanner
	Lexeme string // input text of the token
	Pos    uint64 // position in the input, as reported by the scanner
	Len    uint64 // length of the lexeme, as reported by the scanner
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at %d", KindString(t.Kind), t.Lexeme, t.Pos)
}

// Drain reads tokens from sc until it reports scanner.EOF. The EOF token
// is not part of the result. Scanner errors are traced; tokens read up to
// the error are kept.
func Drain(sc scanner.Tokenizer) parsea.Slice[Token] {
	sc.SetErrorHandler(func(err error) {
		T().Errorf("scanner error: %v", err)
	})
	tokens := parsea.Slice[Token]{}
	for {
		kind, lexeme, pos, length := sc.NextToken(scanner.AnyToken)
		if kind == scanner.EOF {
			break
		}
		tokens = append(tokens, Token{
			Kind:   kind,
			Lexeme: lexemeString(lexeme),
			Pos:    pos,
			Len:    length,
		})
	}
	T().Debugf("drained %d tokens from scanner", len(tokens))
	return tokens
}

// Scanners may re-use their lexeme buffers, therefore a lexeme is copied.
func lexemeString(lexeme interface{}) string {
	switch l := lexeme.(type) {
	case string:
		return l
	case []byte:
		return string(l)
	case []rune:
		return string(l)
	case nil:
		return ""
	case fmt.Stringer:
		return l.String()
	}
	return fmt.Sprint(lexeme)
}

// Kind matches a single token of category kind.
func Kind(kind int) parsea.Parser[Token, Token] {
	expected := parsea.Expected{Value: KindString(kind)}
	return parsea.NewParser(func(ctx *parsea.Context[Token], at int) (parsea.State[Token], bool) {
		if at < ctx.Len() {
			if tok := ctx.Source().At(at); tok.Kind == kind {
				return parsea.Advance(at, 1, tok), true
			}
		}
		ctx.AddError(at, expected)
		return parsea.State[Token]{}, false
	})
}

// Lexeme matches a single token of category kind with input text lexeme.
func Lexeme(kind int, lexeme string) parsea.Parser[Token, Token] {
	expected := parsea.Expected{Value: lexeme}
	return parsea.NewParser(func(ctx *parsea.Context[Token], at int) (parsea.State[Token], bool) {
		if at < ctx.Len() {
			if tok := ctx.Source().At(at); tok.Kind == kind && tok.Lexeme == lexeme {
				return parsea.Advance(at, 1, tok), true
			}
		}
		ctx.AddError(at, expected)
		return parsea.State[Token]{}, false
	})
}

// KindString returns a readable name for the token categories of this
// package's Scanner. Other categories are returned as numbers.
func KindString(kind int) string {
	switch kind {
	case scanner.EOF:
		return "EOF"
	case Ident:
		return "identifier"
	case Number:
		return "number"
	case Space:
		return "whitespace"
	case Punct:
		return "punctuation"
	}
	return "token #" + strconv.Itoa(kind)
}

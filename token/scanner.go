package token

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/gorgo/lr/scanner"
)

// Token categories of Scanner.
const (
	Ident  int = iota + 1 // letter or '_', followed by letters, digits and '_'
	Number                // digits, possibly with a decimal point
	Space                 // run of whitespace
	Punct                 // any other single rune
)

// Scanner implements the scanner.Tokenizer interface.
// It reads runs of runes of the same category as a single token.
// Punctuation is read rune by rune.
type Scanner struct {
	runeScanner *bufio.Scanner // we're using an embedded rune reader
	lookahead   []byte         // lookahead rune
	buffer      []byte         // character buffer for token lexeme
	pos         uint64         // position in input
	ahead       uint64         // position ahead of current lexeme
	mode        uint           // scanner modes, set with options
	onError     func(error)
}

var _ scanner.Tokenizer = (*Scanner)(nil)

const buflen = 256

// NewScanner creates a scanner reading from input. Positions of tokens are
// byte offsets.
func NewScanner(input io.Reader, opts ...ScannerOption) *Scanner {
	sc := &Scanner{}
	sc.runeScanner = bufio.NewScanner(input)
	sc.runeScanner.Split(bufio.ScanRunes)
	sc.buffer = make([]byte, 0, buflen)
	sc.lookahead = make([]byte, 0, utf8.UTFMax)
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// NextToken reads the next token. The token's value will be set to its
// category, the lexeme to the input text of the token.
//
// The lexeme buffer is re-used between calls.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	for {
		kind := sc.read()
		if kind == scanner.EOF {
			return scanner.EOF, "", sc.pos, 0
		}
		if kind == Space && sc.hasMode(optionSkipSpace) {
			continue
		}
		T().Debugf("scanned token '%s' as %s", string(sc.buffer), KindString(kind))
		return kind, sc.buffer, sc.pos, uint64(len(sc.buffer))
	}
}

// read collects the runes of the next token into the buffer.
func (sc *Scanner) read() int {
	sc.pos = sc.ahead // catch up new input position
	sc.buffer = sc.buffer[:0]
	if len(sc.lookahead) > 0 { // move LA to buffer
		sc.buffer = append(sc.buffer, sc.lookahead...)
		sc.lookahead = sc.lookahead[:0]
	} else if sc.runeScanner.Scan() {
		sc.buffer = append(sc.buffer, sc.runeScanner.Bytes()...)
	} else {
		if err := sc.runeScanner.Err(); err != nil && sc.onError != nil {
			sc.onError(err)
		}
		return scanner.EOF
	}
	sc.ahead += uint64(len(sc.buffer))
	kind := category(sc.buffer)
	if kind == Punct {
		return kind
	}
	for sc.runeScanner.Scan() {
		b := sc.runeScanner.Bytes()
		if !continues(kind, b) {
			sc.lookahead = append(sc.lookahead, b...)
			break
		}
		sc.buffer = append(sc.buffer, b...)
		sc.ahead += uint64(len(b))
	}
	return kind
}

// SetErrorHandler sets an error handler function, which receives errors of
// the underlying reader.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.onError = h
}

func category(b []byte) int {
	r, _ := utf8.DecodeRune(b)
	switch {
	case r == '_' || unicode.IsLetter(r):
		return Ident
	case unicode.IsDigit(r):
		return Number
	case unicode.IsSpace(r):
		return Space
	}
	return Punct
}

func continues(kind int, b []byte) bool {
	r, _ := utf8.DecodeRune(b)
	switch kind {
	case Ident:
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	case Number:
		return r == '.' || unicode.IsDigit(r)
	case Space:
		return unicode.IsSpace(r)
	}
	return false
}

// --- Options ---------------------------------------------------------------

// ScannerOption configures a scanner.
type ScannerOption func(sc *Scanner)

const (
	optionSkipSpace uint = 1 << 1 // do not report whitespace tokens
)

// SkipSpace sets an option to drop whitespace instead of returning it as
// tokens.
func SkipSpace(b bool) ScannerOption {
	return func(sc *Scanner) {
		if b {
			sc.mode |= optionSkipSpace
		} else {
			sc.mode &^= optionSkipSpace
		}
	}
}

func (sc *Scanner) hasMode(m uint) bool {
	return sc.mode&m > 0
}

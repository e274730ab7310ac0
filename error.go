package parsea

import (
	"fmt"
	"strings"
)

// ParseError is an entry of the error accumulator of a parse run.
// It is a closed set of variants: Expected and Label.
type ParseError interface {
	fmt.Stringer
	parseError() // seal
}

// Expected signals that a literal run or element was expected at the
// position of the error. Value usually is a slice of source elements or a
// string.
type Expected struct {
	Value any
}

func (Expected) parseError() {}

func (e Expected) String() string {
	switch v := e.Value.(type) {
	case string:
		return fmt.Sprintf("expected %q", v)
	case []rune:
		return fmt.Sprintf("expected %q", string(v))
	}
	return fmt.Sprintf("expected %v", e.Value)
}

// Label signals that the grammar rule Name failed. Width is the number of
// finer-grained failures the label subsumes.
type Label struct {
	Name  string
	Width int
}

func (Label) parseError() {}

func (l Label) String() string {
	return fmt.Sprintf("expected %s", l.Name)
}

func weightOf(e ParseError) int {
	if l, ok := e.(Label); ok && l.Width > 0 {
		return l.Width
	}
	return 1
}

// Error is a failed parse, returned by ParseValue. Index is the furthest
// position reached and Errors are the errors recorded there.
type Error struct {
	Index  int
	Errors []ParseError
}

func (e *Error) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("parse error at position %d", e.Index)
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.String()
	}
	return fmt.Sprintf("parse error at position %d: %s", e.Index, strings.Join(msgs, " or "))
}

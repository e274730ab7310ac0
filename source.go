package parsea

import "errors"

// Source is an indexable, length-bearing sequence of elements of type S.
// Parsers never read elements at indexes outside of [0, Len()).
//
// The source has to be fully materialized before parsing starts; parsers
// access it randomly, and backtracking may revisit any index.
type Source[S any] interface {
	Len() int    // number of elements
	At(i int) S  // element at index i, 0 ≤ i < Len()
}

// Slice adapts a Go slice to be a Source.
type Slice[S any] []S

// Len is part of interface Source.
func (s Slice[S]) Len() int {
	return len(s)
}

// At is part of interface Source.
func (s Slice[S]) At(i int) S {
	return s[i]
}

// ErrNotIndexable is returned by Parse if it is called with a source which
// cannot be used for parsing (nil or reporting a negative length).
// This is a usage error and never the outcome of a failed parse.
var ErrNotIndexable = errors.New("parsea: source is not indexable")

func checkSource[S any](src Source[S]) error {
	if src == nil {
		return ErrNotIndexable
	}
	if src.Len() < 0 {
		return ErrNotIndexable
	}
	return nil
}

package parsea

import (
	"math"

	"github.com/emirpasic/gods/sets/hashset"
)

// Pure always succeeds with value v, consuming nothing.
func Pure[S, T any](v T) Parser[S, T] {
	return Parser[S, T]{run: func(ctx *Context[S], at int) (State[T], bool) {
		return State[T]{Index: at, Value: v}, true
	}}
}

// Fail always fails at the current position.
func Fail[S, T any]() Parser[S, T] {
	return Parser[S, T]{run: func(ctx *Context[S], at int) (State[T], bool) {
		ctx.AddError(at)
		return State[T]{}, false
	}}
}

// EOI succeeds, consuming nothing, only at the end of the input.
func EOI[S any]() Parser[S, struct{}] {
	return Parser[S, struct{}]{run: func(ctx *Context[S], at int) (State[struct{}], bool) {
		if at < ctx.Len() {
			ctx.AddError(at)
			return State[struct{}]{}, false
		}
		return State[struct{}]{Index: at}, true
	}}
}

// AnyElement consumes a single element, whatever it is. It fails at the end
// of the input.
func AnyElement[S any]() Parser[S, S] {
	return Parser[S, S]{run: func(ctx *Context[S], at int) (State[S], bool) {
		if at >= ctx.Len() {
			ctx.AddError(at)
			return State[S]{}, false
		}
		return State[S]{Index: at + 1, Value: ctx.src.At(at)}, true
	}}
}

// Satisfy consumes a single element if pred holds for it. pred is never
// called at the end of the input.
func Satisfy[S any](pred func(S, Config) bool) Parser[S, S] {
	return Parser[S, S]{run: func(ctx *Context[S], at int) (State[S], bool) {
		if at < ctx.Len() {
			if el := ctx.src.At(at); pred(el, ctx.config) {
				return State[S]{Index: at + 1, Value: el}, true
			}
		}
		ctx.AddError(at)
		return State[S]{}, false
	}}
}

// El consumes a single element equal to v.
//
// Elements are compared by value. Floating point NaN is considered equal to
// NaN, and positive and negative zero are distinct.
func El[S comparable](v S) Parser[S, S] {
	expected := Expected{Value: []S{v}}
	return Parser[S, S]{run: func(ctx *Context[S], at int) (State[S], bool) {
		if at < ctx.Len() {
			if el := ctx.src.At(at); sameValue(el, v) {
				return State[S]{Index: at + 1, Value: el}, true
			}
		}
		ctx.AddError(at, expected)
		return State[S]{}, false
	}}
}

// OneOf consumes a single element which is a member of vs.
func OneOf[S comparable](vs ...S) Parser[S, S] {
	set := newElementSet(vs)
	return Satisfy(func(el S, _ Config) bool {
		return set.contains(el)
	})
}

// NoneOf consumes a single element which is not a member of vs.
func NoneOf[S comparable](vs ...S) Parser[S, S] {
	set := newElementSet(vs)
	return Satisfy(func(el S, _ Config) bool {
		return !set.contains(el)
	})
}

// Literal consumes a run of elements equal to chunk, position by position.
// On mismatch, the failure is recorded at the first mismatching position,
// not at the start of the run.
func Literal[S comparable](chunk []S) Parser[S, []S] {
	expected := Expected{Value: chunk}
	return Parser[S, []S]{run: func(ctx *Context[S], at int) (State[[]S], bool) {
		l := ctx.Len()
		for i, c := range chunk {
			if at+i >= l || !sameValue(ctx.src.At(at+i), c) {
				ctx.AddError(at+i, expected)
				return State[[]S]{}, false
			}
		}
		return State[[]S]{Index: at + len(chunk), Value: chunk}, true
	}}
}

// --- Element comparison ----------------------------------------------------

// sameValue compares elements by value. NaN equals NaN, and zeros of
// different sign are distinct.
func sameValue[S comparable](a, b S) bool {
	if a != b {
		return a != a && b != b // NaN
	}
	return negativeZeros(a) == negativeZeros(b)
}

// negativeZeros flags the parts of a floating point or complex value which
// are -0: bit 0 for the real part, bit 1 for the imaginary part. Other
// values yield 0.
func negativeZeros(v any) uint8 {
	switch x := v.(type) {
	case float32:
		return negZero(float64(x))
	case float64:
		return negZero(x)
	case complex64:
		return negZero(float64(real(x))) | negZero(float64(imag(x)))<<1
	case complex128:
		return negZero(real(x)) | negZero(imag(x))<<1
	}
	return 0
}

func negZero(f float64) uint8 {
	if f == 0 && math.Signbit(f) {
		return 1
	}
	return 0
}

// elementSet is a set of source elements. NaN cannot be found in a hash
// set, and the set does not tell -0 from +0. Both are kept aside.
type elementSet[S comparable] struct {
	members *hashset.Set
	nan     bool
	signed  []S // values with a -0 part
}

func newElementSet[S comparable](vs []S) elementSet[S] {
	set := elementSet[S]{members: hashset.New()}
	for _, v := range vs {
		switch {
		case v != v:
			set.nan = true
		case negativeZeros(v) != 0:
			set.signed = append(set.signed, v)
		default:
			set.members.Add(v)
		}
	}
	return set
}

func (set elementSet[S]) contains(el S) bool {
	if el != el {
		return set.nan
	}
	if negativeZeros(el) != 0 {
		for _, v := range set.signed {
			if sameValue(v, el) {
				return true
			}
		}
		return false
	}
	return set.members.Contains(el)
}

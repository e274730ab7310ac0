package parsea

import (
	"math"
	"sync"
)

// Lazy delays the construction of a parser until it is run for the first
// time. This allows for self-referential and mutually recursive grammar
// rules:
//
//	var list parsea.Parser[rune, []Expr]
//	expr := parsea.Lazy(func() parsea.Parser[rune, Expr] { … list … })
//
// supplier is called exactly once; its result is memoized. Concurrent first
// use is safe.
func Lazy[S, T any](supplier func() Parser[S, T]) Parser[S, T] {
	if supplier == nil {
		panic("parsea.Lazy: supplier must not be nil")
	}
	var once sync.Once
	var p Parser[S, T]
	return Parser[S, T]{run: func(ctx *Context[S], at int) (State[T], bool) {
		once.Do(func() {
			p = supplier()
			if p.run == nil {
				panic("parsea.Lazy: supplier returned an uninitialized parser")
			}
			CT().Debugf("lazy parser initialized")
		})
		return p.run(ctx, at)
	}}
}

// NotFollowedBy succeeds without consuming input if p fails at the current
// position (negative lookahead).
func NotFollowedBy[S, T any](p Parser[S, T]) Parser[S, struct{}] {
	return Parser[S, struct{}]{run: func(ctx *Context[S], at int) (State[struct{}], bool) {
		if _, ok := p.run(ctx, at); ok {
			ctx.AddError(at)
			return State[struct{}]{}, false
		}
		return State[struct{}]{Index: at}, true
	}}
}

// LookAhead runs p and keeps its value, but does not consume input.
func LookAhead[S, T any](p Parser[S, T]) Parser[S, T] {
	return Parser[S, T]{run: func(ctx *Context[S], at int) (State[T], bool) {
		st, ok := p.run(ctx, at)
		if !ok {
			return State[T]{}, false
		}
		return State[T]{Index: at, Value: st.Value}, true
	}}
}

// Seq runs parsers in order and collects their values. It fails as soon as
// one of the parsers fails.
func Seq[S, T any](parsers ...Parser[S, T]) Parser[S, []T] {
	return seq(parsers, false)
}

// SeqPartial runs parsers in order and collects their values. If one of the
// parsers fails, SeqPartial succeeds with the values collected so far,
// positioned where the last successful parser stopped.
func SeqPartial[S, T any](parsers ...Parser[S, T]) Parser[S, []T] {
	return seq(parsers, true)
}

func seq[S, T any](parsers []Parser[S, T], allowPartial bool) Parser[S, []T] {
	return Parser[S, []T]{run: func(ctx *Context[S], at int) (State[[]T], bool) {
		values := make([]T, 0, len(parsers))
		for _, p := range parsers {
			st, ok := p.run(ctx, at)
			if !ok {
				if allowPartial {
					break
				}
				return State[[]T]{}, false
			}
			values = append(values, st.Value)
			at = st.Index
		}
		return State[[]T]{Index: at, Value: values}, true
	}}
}

// Choice tries parsers in declaration order, each from the same position,
// and succeeds with the first one succeeding. If all of them fail, the
// furthest failure of all alternatives is what gets reported.
func Choice[S, T any](parsers ...Parser[S, T]) Parser[S, T] {
	return Parser[S, T]{run: func(ctx *Context[S], at int) (State[T], bool) {
		for _, p := range parsers {
			if st, ok := p.run(ctx, at); ok {
				return st, true
			}
		}
		if len(parsers) == 0 {
			ctx.AddError(at)
		}
		return State[T]{}, false
	}}
}

// --- Repetition ------------------------------------------------------------

// RepeatOptions bounds a repetition. Max == 0 means unbounded.
// Negative values for Min are treated as 0, and a Max smaller than Min is
// raised to Min.
type RepeatOptions struct {
	Min, Max int
}

const unbounded = math.MaxInt32

func (opts RepeatOptions) clamp() (min, max int) {
	min, max = opts.Min, opts.Max
	if min < 0 {
		min = 0
	} else if min > unbounded {
		min = unbounded
	}
	if max <= 0 || max > unbounded {
		max = unbounded
	}
	if max < min {
		max = min
	}
	return
}

// ManyAccum repeats p and folds its values into an accumulator. init
// creates the initial accumulator for each run.
//
// A repetition succeeding without consuming input ends an unbounded
// repetition as soon as the minimum count is reached; its value is not
// accumulated. Bounded repetitions go on until Max.
func ManyAccum[S, T, U any](p Parser[S, T], f func(U, T, Config) U, init func(Config) U,
	opts RepeatOptions) Parser[S, U] {
	//
	min, max := opts.clamp()
	return Parser[S, U]{run: func(ctx *Context[S], at int) (State[U], bool) {
		accum := init(ctx.config)
		for i := 0; i < max; i++ {
			st, ok := p.run(ctx, at)
			if !ok {
				if i < min {
					return State[U]{}, false
				}
				break
			}
			if st.Index == at && i >= min && max == unbounded {
				break // zero-width
			}
			accum = f(accum, st.Value, ctx.config)
			at = st.Index
		}
		return State[U]{Index: at, Value: accum}, true
	}}
}

// Many repeats p and collects its values.
// See ManyAccum for the treatment of repetitions which do not consume input.
func Many[S, T any](p Parser[S, T], opts RepeatOptions) Parser[S, []T] {
	return ManyAccum(p,
		func(values []T, v T, _ Config) []T { return append(values, v) },
		func(Config) []T { return []T{} },
		opts)
}

// Trailing determines how SepBy treats a separator after the last element.
type Trailing int

const (
	// TrailingNone rolls back a separator which is not followed by an element.
	TrailingNone Trailing = iota
	// TrailingAllow consumes a separator after the last element.
	TrailingAllow
)

// SepOptions bounds a separated repetition and sets its trailing mode.
type SepOptions struct {
	Min, Max int
	Trailing Trailing
}

// SepBy repeats p, interleaved with separator sep, and collects the values
// of p. See ManyAccum for the treatment of repetitions which do not consume
// input.
func SepBy[S, T, U any](p Parser[S, T], sep Parser[S, U], opts SepOptions) Parser[S, []T] {
	min, max := RepeatOptions{Min: opts.Min, Max: opts.Max}.clamp()
	return Parser[S, []T]{run: func(ctx *Context[S], at int) (State[[]T], bool) {
		values := []T{}
		st, ok := p.run(ctx, at)
		if !ok {
			if min > 0 {
				return State[[]T]{}, false
			}
			return State[[]T]{Index: at, Value: values}, true
		}
		values = append(values, st.Value)
		at = st.Index
		for len(values) < max {
			s, ok := sep.run(ctx, at)
			if !ok {
				break
			}
			el, ok := p.run(ctx, s.Index)
			if !ok {
				if opts.Trailing == TrailingAllow {
					at = s.Index
				}
				break
			}
			if el.Index == at && len(values) >= min && max == unbounded {
				break // zero-width
			}
			values = append(values, el.Value)
			at = el.Index
		}
		if len(values) < min {
			return State[[]T]{}, false
		}
		return State[[]T]{Index: at, Value: values}, true
	}}
}

package parsea

// RunFunc is the run-function of a parser. Given a context and the index of
// the next unconsumed element, it either returns the advanced cursor and
// true, or false. On failure, details have been recorded in the context by
// whichever primitive failed.
type RunFunc[S, T any] func(ctx *Context[S], at int) (State[T], bool)

// Parser is an immutable description of how to parse a source of elements
// of type S into a value of type T.
// Parsers are created by primitives and combinators and may be re-used for
// any number of parse runs, including concurrent ones.
type Parser[S, T any] struct {
	run RunFunc[S, T]
}

// NewParser creates a parser from a run-function. It is intended for
// extension packages implementing additional primitives.
func NewParser[S, T any](run RunFunc[S, T]) Parser[S, T] {
	if run == nil {
		panic("parsea.NewParser: run-function must not be nil")
	}
	return Parser[S, T]{run: run}
}

// Run executes the parser at index at.
func (p Parser[S, T]) Run(ctx *Context[S], at int) (State[T], bool) {
	return p.run(ctx, at)
}

// Parse runs p on src, starting at index 0.
//
// A failing parse is not an error: the Result will be flagged as
// unsuccessful, carrying the furthest failure index and the errors recorded
// there. Parse returns an error only for precondition violations
// (ErrNotIndexable) or if a do-block returned an error other than the abort
// signal.
func (p Parser[S, T]) Parse(src Source[S], opts ...Option) (Result[T], error) {
	if err := checkSource(src); err != nil {
		return Result[T]{}, err
	}
	options := parseOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	ctx := newContext(src, options.config)
	defer ctx.release()
	CT().Debugf("parse: start, input length = %d", src.Len())
	final, ok := p.run(ctx, 0)
	if ctx.fatal != nil {
		CT().Errorf("parse: aborted: %v", ctx.fatal)
		return Result[T]{}, ctx.fatal
	}
	result := makeResult(final, ok, ctx)
	CT().Debugf("parse: done, success = %v, index = %d", result.Success, result.Index)
	return result, nil
}

// Or tries p and, if it fails, alt from the same position. Progress p may
// have made before failing is discarded.
func (p Parser[S, T]) Or(alt Parser[S, T]) Parser[S, T] {
	return Parser[S, T]{run: func(ctx *Context[S], at int) (State[T], bool) {
		if st, ok := p.run(ctx, at); ok {
			return st, true
		}
		return alt.run(ctx, at)
	}}
}

// Option tries p and, if it fails, succeeds with value def without consuming
// input. Option never fails.
func (p Parser[S, T]) Option(def T) Parser[S, T] {
	return Parser[S, T]{run: func(ctx *Context[S], at int) (State[T], bool) {
		if st, ok := p.run(ctx, at); ok {
			return st, true
		}
		return State[T]{Index: at, Value: def}, true
	}}
}

// Label names p. If p fails, the failures it recorded at the furthest
// position are replaced by a single error Label{name, width}, where width is
// the number of failures subsumed.
func (p Parser[S, T]) Label(name string) Parser[S, T] {
	return Parser[S, T]{run: func(ctx *Context[S], at int) (State[T], bool) {
		m := ctx.acc.mark()
		st, ok := p.run(ctx, at)
		if !ok && ctx.acc.collapse(m, name) {
			CT().Debugf("label %q collapsed errors at %d", name, ctx.acc.furthest)
		}
		return st, ok
	}}
}

// --- Composition -----------------------------------------------------------

// Map transforms the value of p with f. Failures of p pass through.
func Map[S, T, U any](p Parser[S, T], f func(T, Config) U) Parser[S, U] {
	return Parser[S, U]{run: func(ctx *Context[S], at int) (State[U], bool) {
		st, ok := p.run(ctx, at)
		if !ok {
			return State[U]{}, false
		}
		return State[U]{Index: st.Index, Value: f(st.Value, ctx.config)}, true
	}}
}

// Return replaces the value of p by v.
func Return[S, T, U any](p Parser[S, T], v U) Parser[S, U] {
	return Parser[S, U]{run: func(ctx *Context[S], at int) (State[U], bool) {
		st, ok := p.run(ctx, at)
		if !ok {
			return State[U]{}, false
		}
		return State[U]{Index: st.Index, Value: v}, true
	}}
}

// FlatMap runs p, then uses its value to construct a dependent parser, which
// is run from the position p stopped at.
func FlatMap[S, T, U any](p Parser[S, T], f func(T, Config) Parser[S, U]) Parser[S, U] {
	return Parser[S, U]{run: func(ctx *Context[S], at int) (State[U], bool) {
		st, ok := p.run(ctx, at)
		if !ok {
			return State[U]{}, false
		}
		return f(st.Value, ctx.config).run(ctx, st.Index)
	}}
}

// Then runs p and q in sequence, keeping the value of q.
func Then[S, T, U any](p Parser[S, T], q Parser[S, U]) Parser[S, U] {
	return Parser[S, U]{run: func(ctx *Context[S], at int) (State[U], bool) {
		st, ok := p.run(ctx, at)
		if !ok {
			return State[U]{}, false
		}
		return q.run(ctx, st.Index)
	}}
}

// Skip runs p and q in sequence, keeping the value of p.
func Skip[S, T, U any](p Parser[S, T], q Parser[S, U]) Parser[S, T] {
	return Parser[S, T]{run: func(ctx *Context[S], at int) (State[T], bool) {
		a, ok := p.run(ctx, at)
		if !ok {
			return State[T]{}, false
		}
		b, ok := q.run(ctx, a.Index)
		if !ok {
			return State[T]{}, false
		}
		return State[T]{Index: b.Index, Value: a.Value}, true
	}}
}

// Pair holds the values of two parsers run in sequence.
type Pair[T, U any] struct {
	First  T
	Second U
}

// And runs p and q in sequence, keeping both values.
func And[S, T, U any](p Parser[S, T], q Parser[S, U]) Parser[S, Pair[T, U]] {
	return AndMap(p, q, func(a T, b U) Pair[T, U] {
		return Pair[T, U]{First: a, Second: b}
	})
}

// AndMap runs p and q in sequence and combines their values with zip.
func AndMap[S, T, U, V any](p Parser[S, T], q Parser[S, U], zip func(T, U) V) Parser[S, V] {
	return Parser[S, V]{run: func(ctx *Context[S], at int) (State[V], bool) {
		a, ok := p.run(ctx, at)
		if !ok {
			return State[V]{}, false
		}
		b, ok := q.run(ctx, a.Index)
		if !ok {
			return State[V]{}, false
		}
		return State[V]{Index: b.Index, Value: zip(a.Value, b.Value)}, true
	}}
}

// Between runs pre, p and post in sequence, keeping the value of p.
func Between[S, T, U, V any](p Parser[S, T], pre Parser[S, U], post Parser[S, V]) Parser[S, T] {
	return Parser[S, T]{run: func(ctx *Context[S], at int) (State[T], bool) {
		a, ok := pre.run(ctx, at)
		if !ok {
			return State[T]{}, false
		}
		b, ok := p.run(ctx, a.Index)
		if !ok {
			return State[T]{}, false
		}
		c, ok := post.run(ctx, b.Index)
		if !ok {
			return State[T]{}, false
		}
		return State[T]{Index: c.Index, Value: b.Value}, true
	}}
}

// Around is Between with symmetric delimiters.
func Around[S, T, U any](p Parser[S, T], delim Parser[S, U]) Parser[S, T] {
	return Between(p, delim, delim)
}

// AsAny erases the value type of p. It is useful for sequencing parsers of
// different value types with Seq.
func AsAny[S, T any](p Parser[S, T]) Parser[S, any] {
	return Map(p, func(v T, _ Config) any { return v })
}

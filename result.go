package parsea

// Result is the outcome of a parse run.
//
// For a successful parse, Index is the position where the parser stopped and
// Value is the value produced. For a failed parse, Index is the furthest
// position any parser has reached, and Errors are the errors recorded there.
type Result[T any] struct {
	Success bool
	Index   int
	Value   T
	Errors  []ParseError
}

func makeResult[S, T any](final State[T], ok bool, ctx *Context[S]) Result[T] {
	if !ok {
		return Result[T]{
			Index:  ctx.Furthest(),
			Errors: ctx.Errors(),
		}
	}
	return Result[T]{
		Success: true,
		Index:   final.Index,
		Value:   final.Value,
	}
}

// Err returns nil for a successful result, and an *Error otherwise.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	return &Error{Index: r.Index, Errors: r.Errors}
}

// ParseValue runs p on src and returns the value produced.
// If the parse fails, the error returned is of type *Error.
func ParseValue[S, T any](p Parser[S, T], src Source[S], opts ...Option) (T, error) {
	result, err := p.Parse(src, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	if !result.Success {
		var zero T
		return zero, result.Err()
	}
	return result.Value, nil
}

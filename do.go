package parsea

import (
	"errors"
)

// ErrAbort is the abort signal of a do-block. Perform returns it (wrapped
// with a rollback directive) when the parser it runs fails. Test for it with
// errors.Is.
//
// The abort signal is control flow internal to a do-block: it is consumed by
// Try, While or Do and never surfaces from Parse.
var ErrAbort = errors.New("parsea: do-block aborted")

// abort is the abort signal together with its rollback directive.
type abort struct {
	partial bool // keep progress made before the failure
}

func (a *abort) Error() string {
	return ErrAbort.Error()
}

func (a *abort) Is(target error) bool {
	return target == ErrAbort
}

// Performer is the capability handed to a do-block. It carries a cursor
// local to the block; Perform advances it.
type Performer[S any] struct {
	ctx *Context[S]
	pos int
}

// Index returns the position of the block-local cursor.
func (pf *Performer[S]) Index() int {
	return pf.pos
}

// Config returns the configuration of the parse run.
func (pf *Performer[S]) Config() Config {
	return pf.ctx.config
}

// Abort records a failure at the local cursor and returns the abort signal.
func (pf *Performer[S]) Abort() error {
	pf.ctx.AddError(pf.pos)
	return &abort{}
}

// Do creates a parser from a block of straight-line code.
//
//	assignment := parsea.Do(func(pf *parsea.Performer[rune]) (Assign, error) {
//		name, err := parsea.Perform(pf, ident)
//		if err != nil {
//			return Assign{}, err
//		}
//		if _, err = parsea.Perform(pf, parsea.El('=')); err != nil {
//			return Assign{}, err
//		}
//		value, err := parsea.Perform(pf, expr)
//		return Assign{name, value}, err
//	})
//
// If the block returns a nil error, the parser succeeds with the value
// returned, positioned at the block-local cursor. If the block returns the
// abort signal, the parser fails. Any other error stops the parse run, and
// Parse will return it.
func Do[S, T any](block func(pf *Performer[S]) (T, error)) Parser[S, T] {
	return Parser[S, T]{run: func(ctx *Context[S], at int) (State[T], bool) {
		pf := &Performer[S]{ctx: ctx, pos: at}
		v, err := block(pf)
		if err != nil {
			pf.signal(err)
			return State[T]{}, false
		}
		if ctx.fatal != nil {
			return State[T]{}, false
		}
		return State[T]{Index: pf.pos, Value: v}, true
	}}
}

// signal inspects an error returned from a (nested) block. It returns the
// abort signal, if err is one. Foreign errors are stored as fatal.
func (pf *Performer[S]) signal(err error) *abort {
	var sig *abort
	if errors.As(err, &sig) {
		return sig
	}
	if errors.Is(err, ErrAbort) { // bare ErrAbort, returned by client code
		pf.ctx.AddError(pf.pos)
		return &abort{}
	}
	CT().Errorf("do-block returned error: %v", err)
	pf.ctx.setFatal(err)
	return nil
}

// PerformOption modifies the abort signal returned by a failing Perform.
type PerformOption func(*abort)

// AllowPartial directs Try and While to keep the progress a block made
// before the failing Perform, instead of rolling it back.
func AllowPartial() PerformOption {
	return func(a *abort) {
		a.partial = true
	}
}

// Perform runs p at the block-local cursor. On success it advances the
// cursor and returns the value of p. On failure it returns the abort signal,
// which the block should return.
func Perform[S, T any](pf *Performer[S], p Parser[S, T], opts ...PerformOption) (T, error) {
	var zero T
	if pf.ctx.fatal != nil {
		return zero, &abort{}
	}
	st, ok := p.run(pf.ctx, pf.pos)
	if !ok {
		sig := &abort{}
		for _, opt := range opts {
			opt(sig)
		}
		return zero, sig
	}
	pf.pos = st.Index
	return st.Value, nil
}

// PerformOr runs p at the block-local cursor, returning def if p fails.
// It never aborts.
func PerformOr[S, T any](pf *Performer[S], p Parser[S, T], def T) T {
	v, err := Perform(pf, p)
	if err != nil {
		return def
	}
	return v
}

// Try runs a nested block. If the block aborts, Try catches the signal and
// rolls the local cursor back to where the block started, unless the
// failing Perform has been called with AllowPartial. Try returns true if the
// block completed.
func (pf *Performer[S]) Try(block func() error) bool {
	start := pf.pos
	err := block()
	if err == nil {
		return true
	}
	if sig := pf.signal(err); sig != nil && !sig.partial {
		pf.pos = start
	}
	return false
}

// While repeats a nested block until it aborts or an iteration does not
// advance the local cursor. Aborts are treated as with Try. While returns
// the number of iterations which completed and made progress.
func (pf *Performer[S]) While(block func() error) int {
	n := 0
	for pf.ctx.fatal == nil {
		start := pf.pos
		if !pf.Try(block) || pf.pos == start {
			break
		}
		n++
	}
	return n
}

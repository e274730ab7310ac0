package parsea

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// State is the cursor of a parse run: Index is the next unconsumed position
// in the source, Value is the value most recently produced.
// States are never modified; parsers create new ones.
type State[T any] struct {
	Index int
	Value T
}

// Advance creates a cursor n elements ahead of at, carrying value v.
func Advance[T any](at, n int, v T) State[T] {
	return State[T]{Index: at + n, Value: v}
}

// Context is bound to a single parse run. It owns the source, the
// configuration and the error accumulator. A Context must not be shared
// between parse runs.
type Context[S any] struct {
	src    Source[S]
	config Config
	acc    *accumulator
	fatal  error // first error escaping from a do-block
}

func newContext[S any](src Source[S], config Config) *Context[S] {
	if config == nil {
		config = Config{}
	}
	return &Context[S]{
		src:    src,
		config: config,
		acc:    borrowAccumulator(),
	}
}

// Source returns the input of the parse run.
func (ctx *Context[S]) Source() Source[S] {
	return ctx.src
}

// Len is a shortcut for ctx.Source().Len().
func (ctx *Context[S]) Len() int {
	return ctx.src.Len()
}

// Config returns the configuration of the parse run. It is never nil.
func (ctx *Context[S]) Config() Config {
	return ctx.config
}

// AddError records a failure at index at. Without errs, the failure is
// recorded without a specific expectation.
//
// Failures at an index smaller than the furthest failure seen so far are
// dropped; a failure at a larger index drops everything recorded before.
func (ctx *Context[S]) AddError(at int, errs ...ParseError) {
	ctx.acc.add(at, errs...)
}

// Furthest returns the largest index a failure has been recorded at.
func (ctx *Context[S]) Furthest() int {
	return ctx.acc.furthest
}

// Errors returns a copy of the errors recorded at the furthest index.
func (ctx *Context[S]) Errors() []ParseError {
	errs := make([]ParseError, len(ctx.acc.errs))
	copy(errs, ctx.acc.errs)
	return errs
}

func (ctx *Context[S]) setFatal(err error) {
	if ctx.fatal == nil {
		ctx.fatal = err
	}
}

func (ctx *Context[S]) release() {
	ctx.acc.releaseIntoPool()
	ctx.acc = nil
}

// --- Error accumulation ----------------------------------------------------

// accumulator keeps the failures at the furthest index seen during a parse
// run. weight counts the structural failures recorded there, including the
// ones without an error value and the ones subsumed by labels.
type accumulator struct {
	furthest int
	weight   int
	errs     []ParseError
}

func (acc *accumulator) add(at int, errs ...ParseError) {
	if at < acc.furthest {
		return
	}
	if at > acc.furthest {
		acc.furthest = at
		acc.weight = 0
		acc.errs = acc.errs[:0]
	}
	if len(errs) == 0 {
		acc.weight++
		return
	}
	for _, e := range errs {
		acc.weight += weightOf(e)
		acc.errs = append(acc.errs, e)
	}
}

// accuMark is a snapshot of an accumulator, taken when a label starts.
type accuMark struct {
	furthest, weight, n int
}

func (acc *accumulator) mark() accuMark {
	return accuMark{furthest: acc.furthest, weight: acc.weight, n: len(acc.errs)}
}

// collapse replaces the failures recorded since m by a single label.
// If the furthest index moved since m, every entry belongs to the label.
// Otherwise exactly the entries appended after m are collapsed; entries
// recorded before m stay in front. Returns false if nothing has been
// recorded at the furthest index since m.
func (acc *accumulator) collapse(m accuMark, name string) bool {
	var from, width int
	switch {
	case acc.furthest > m.furthest:
		from, width = 0, acc.weight
	case acc.weight > m.weight:
		from, width = m.n, acc.weight-m.weight
	default:
		return false
	}
	acc.errs = append(acc.errs[:from], Label{Name: name, Width: width})
	return true
}

func (acc *accumulator) reset() {
	acc.furthest = 0
	acc.weight = 0
	acc.errs = acc.errs[:0]
}

// Accumulators are short-lived objects, one per parse run. To avoid
// re-allocating their error slices we will pool them.
type accumulatorPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalAccumulatorPool *accumulatorPool

func init() {
	globalAccumulatorPool = &accumulatorPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			acc := &accumulator{errs: make([]ParseError, 0, 8)}
			return acc, nil
		})
	globalAccumulatorPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalAccumulatorPool.opool = pool.NewObjectPool(globalAccumulatorPool.ctx, factory, config)
}

func borrowAccumulator() *accumulator {
	o, err := globalAccumulatorPool.opool.BorrowObject(globalAccumulatorPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow error accumulator: %v", err)
		return &accumulator{}
	}
	acc := o.(*accumulator)
	acc.reset()
	return acc
}

// Clears the accumulator and puts it back into the pool.
func (acc *accumulator) releaseIntoPool() {
	acc.reset()
	_ = globalAccumulatorPool.opool.ReturnObject(globalAccumulatorPool.ctx, acc)
}

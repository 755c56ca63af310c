// Package effect implements a deferred computation over a mutable context:
// a value that, when run, yields either a result or an error. Constructing
// an Effect has no side effects; Run does.
package effect

// Effect is a deferred computation over Ctx producing (A, error).
type Effect[Ctx any, A any] struct {
	run func(ctx *Ctx) (A, error)
}

// Pure lifts a plain value into an Effect that never fails.
func Pure[Ctx any, A any](a A) Effect[Ctx, A] {
	return Effect[Ctx, A]{run: func(_ *Ctx) (A, error) { return a, nil }}
}

// Fail lifts an error into an Effect that always fails.
func Fail[Ctx any, A any](err error) Effect[Ctx, A] {
	var zero A
	return Effect[Ctx, A]{run: func(_ *Ctx) (A, error) { return zero, err }}
}

// WithCtx wraps a closure taking the context directly. This is how port
// operations and leaf transactions enter the Effect algebra.
func WithCtx[Ctx any, A any](f func(ctx *Ctx) (A, error)) Effect[Ctx, A] {
	return Effect[Ctx, A]{run: f}
}

// Run executes the effect against ctx.
func (e Effect[Ctx, A]) Run(ctx *Ctx) (A, error) {
	return e.run(ctx)
}

// Map transforms a successful result, passing errors through untouched.
func Map[Ctx any, A any, B any](e Effect[Ctx, A], f func(A) B) Effect[Ctx, B] {
	return Effect[Ctx, B]{run: func(ctx *Ctx) (B, error) {
		a, err := e.Run(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}}
}

// MapErr transforms a failure, passing successes through untouched.
func MapErr[Ctx any, A any](e Effect[Ctx, A], f func(error) error) Effect[Ctx, A] {
	return Effect[Ctx, A]{run: func(ctx *Ctx) (A, error) {
		a, err := e.Run(ctx)
		if err != nil {
			return a, f(err)
		}
		return a, nil
	}}
}

// AndThen sequences e into a continuation that only runs on success. A
// failure in e short-circuits the whole chain before the continuation runs.
// Steps that already ran are not undone.
func AndThen[Ctx any, A any, B any](e Effect[Ctx, A], f func(A) Effect[Ctx, B]) Effect[Ctx, B] {
	return Effect[Ctx, B]{run: func(ctx *Ctx) (B, error) {
		a, err := e.Run(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a).Run(ctx)
	}}
}

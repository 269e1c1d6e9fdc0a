package funcz

import "context"

// Name is a type alias for step and flow names. Using this type encourages
// storing names as constants rather than inline strings:
//
//	const (
//	    NormalizeName Name = "normalize"
//	    PersistName   Name = "persist"
//	)
type Name = string

// Step is a named unit of work inside a Flow. It pairs a descriptive name
// with a function that transforms a value of type T, possibly failing.
//
// The fn field is private so steps are only created through the Lift
// constructors, which route every step through the corresponding piping
// combinator and keep error forwarding uniform. The name appears in
// Error[T].Path to identify exactly where a flow failed.
type Step[T any] struct {
	fn   func(context.Context, T) (T, error)
	name Name
}

// Process runs the step against value. Steps can be used directly or
// composed in a Flow.
func (s Step[T]) Process(ctx context.Context, value T) (T, error) {
	return s.fn(ctx, value)
}

// Name returns the step's name for debugging and error reporting.
func (s Step[T]) Name() Name {
	return s.name
}

// Lift wraps a pure transform as a Step. The transform cannot fail; use
// LiftErr when it can.
//
//	double := funcz.Lift("double", func(_ context.Context, n int) int {
//	    return n * 2
//	})
func Lift[T any](name Name, fn func(context.Context, T) T) Step[T] {
	return Step[T]{
		name: name,
		fn: func(ctx context.Context, value T) (T, error) {
			return Pipe(value, func(v T) T { return fn(ctx, v) }), nil
		},
	}
}

// LiftErr wraps a fallible transform as a Step. The function's error is
// forwarded as-is; the Flow wraps it with path and timing context.
func LiftErr[T any](name Name, fn func(context.Context, T) (T, error)) Step[T] {
	return Step[T]{
		name: name,
		fn: func(ctx context.Context, value T) (T, error) {
			return TryPipe(value, func(v T) (T, error) { return fn(ctx, v) })
		},
	}
}

// LiftEffect wraps a side effect as a Step. The value passes through
// unchanged; a non-nil error stops the flow. Effects already performed are
// not rolled back.
func LiftEffect[T any](name Name, fn func(context.Context, T) error) Step[T] {
	return Step[T]{
		name: name,
		fn: func(ctx context.Context, value T) (T, error) {
			return TryTap(value, func(v T) error { return fn(ctx, v) })
		},
	}
}

// LiftMutate wraps an in-place mutator as a Step. The mutator receives a
// pointer to the flow value and the mutated value continues down the flow.
// On failure the value retains whatever partial mutation the mutator
// applied before the error.
func LiftMutate[T any](name Name, fn func(context.Context, *T) error) Step[T] {
	return Step[T]{
		name: name,
		fn: func(ctx context.Context, value T) (T, error) {
			return TryMutate(&value, func(v *T) error { return fn(ctx, v) })
		},
	}
}

// Package funcz provides a small, type-safe set of function piping
// combinators for Go.
//
// # Overview
//
// funcz turns ordinary function application into a left-to-right reading
// order. Instead of nesting calls inside out, a value is threaded forward
// through transforms, side effects, and in-place mutations:
//
//	out := funcz.Pipe(3, func(n int) int { return n + 3 })        // 6
//	out  = funcz.Tap(out, func(n int) { log.Println("got", n) })  // 6, logged
//
// Every combinator is a one-line forwarding call: apply a function to a
// value and return the result, or discard the result and return the
// original value (the tap-style variants), or thread a pointer binding
// through a mutator and commit the change back before returning.
//
// # Core Combinators
//
// Forward order (value first, then function):
//
//   - Pipe: apply a transform, return its result
//   - Tap: run a side effect, return the original value
//   - Mutate: give a mutator write access to a binding, return the new value
//
// Backward order (function first, then value), symmetric to the forward
// set for call sites that read better function-first:
//
//   - Apply: Apply(f, v) == Pipe(v, f)
//   - Perform: Perform(g, v) == Tap(v, g)
//
// Each combinator has a fault-tolerant twin (TryPipe, TryTap, TryMutate,
// TryApply, TryPerform) that accepts a function returning an error and
// forwards that error to the caller verbatim. The library never originates,
// wraps, or reclassifies failures at this layer, and it never recovers
// panics: a fatal condition in the supplied function stays fatal.
//
// # Partial Application
//
// Partial2 through Partial5 fix the leading argument of a 2- to 5-ary
// function, producing a function of arity n-1. Repeated one at a time they
// reconstruct the full call:
//
//	add3 := func(a, b, c int) int { return a + b + c }
//	Partial2(Partial3(add3, 1), 2)(3) // == add3(1, 2, 3)
//
// Curry2 and Curry3 produce the fully curried forms. Const builds the
// constant function: one argument, ignored, fixed result.
//
// # Flows
//
// Flow composes same-typed steps into a named, observable chain that
// executes strictly left to right and stops at the first error:
//
//	double := funcz.Lift("double", func(_ context.Context, n int) int {
//	    return n * 2
//	})
//	checkPositive := funcz.LiftEffect("check-positive", func(_ context.Context, n int) error {
//	    if n < 0 {
//	        return errors.New("negative")
//	    }
//	    return nil
//	})
//
//	flow := funcz.NewFlow("math", double, checkPositive)
//	result, err := flow.Process(context.Background(), 21) // 42, nil
//
// Steps are built from the core combinators via Lift, LiftErr, LiftEffect,
// and LiftMutate. Flow failures are wrapped in *Error[T] with the path to
// the failing step, the input that caused it, and timing information. The
// core combinators stay transparent; only Flow wraps.
//
// Flows expose metrics, traces, and hooks for observability, and accept an
// injectable clock for deterministic tests. See Flow for details.
//
// # Concurrency
//
// The combinators hold no state and are safe for unrelated concurrent
// calls. Flow guards its step list with a mutex so steps can be swapped at
// runtime, but Process spawns no goroutines and owns no shared resources
// beyond that list.
package funcz

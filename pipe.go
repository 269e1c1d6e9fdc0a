package funcz

// Pipe applies fn to value and returns the result. This is forward piping:
// the value comes first, then the transform, so chained calls read in the
// same order they execute.
//
// Pipe adds nothing beyond the call itself. Any side effects are those of
// fn, and a transform that ignores its argument is legal (see Const).
//
// Example:
//
//	shout := funcz.Pipe("mamma mia!", strings.ToUpper) // "MAMMA MIA!"
func Pipe[A, B any](value A, fn func(A) B) B {
	return fn(value)
}

// Tap invokes fn with value for its side effects, discards whatever fn
// does, and returns value unchanged. Use it to observe a value mid-chain
// without altering the flow:
//
//	order = funcz.Tap(order, func(o Order) { log.Printf("order %s", o.ID) })
//
// Tap provides no rollback: effects fn has already performed stay
// performed. For side effects that can fail, use TryTap.
func Tap[A any](value A, fn func(A)) A {
	fn(value)
	return value
}

// Apply applies fn to value and returns the result. It is Pipe with the
// arguments reversed, for call sites that read better function-first:
//
//	funcz.Apply(strings.ToUpper, "mamma mia!") // "MAMMA MIA!"
//
// Apply(f, v) == Pipe(v, f) for all f and v.
func Apply[A, B any](fn func(A) B, value A) B {
	return fn(value)
}

// Perform invokes fn with value for its side effects and returns value
// unchanged. It is the backward-order twin of Tap.
func Perform[A any](fn func(A), value A) A {
	fn(value)
	return value
}

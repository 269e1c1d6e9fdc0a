package funcz

// Identity returns its argument unchanged. It is the left and right
// identity of Compose and occasionally useful as a placeholder transform.
func Identity[A any](a A) A {
	return a
}

// Const returns a function of one argument that ignores its input and
// always returns a. A transform that ignores its argument is explicitly
// supported by the piping combinators:
//
//	funcz.Pipe(99, funcz.Const[int]("fixed")) // "fixed"
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Compose is left-to-right function composition:
// Compose(f, g)(x) == g(f(x)). The composed function reads in the order it
// executes, matching the forward piping direction.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose3 composes three functions left to right.
func Compose3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

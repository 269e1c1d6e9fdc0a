package funcz

// Partial2 fixes the first argument of a binary function, returning a
// unary function over the remaining argument:
//
//	add := func(a, b int) int { return a + b }
//	addFive := funcz.Partial2(add, 5)
//	addFive(3) // 8
//
// Arguments are applied in their original order.
func Partial2[A, B, C any](fn func(A, B) C, a A) func(B) C {
	return func(b B) C {
		return fn(a, b)
	}
}

// Partial3 fixes the first argument of a ternary function, returning a
// binary function over the remaining arguments. Chaining partial
// applications one argument at a time reconstructs the full call:
//
//	funcz.Partial2(funcz.Partial3(f, a), b)(c) == f(a, b, c)
func Partial3[A, B, C, D any](fn func(A, B, C) D, a A) func(B, C) D {
	return func(b B, c C) D {
		return fn(a, b, c)
	}
}

// Partial4 fixes the first argument of a 4-ary function, returning a
// ternary function over the remaining arguments.
func Partial4[A, B, C, D, E any](fn func(A, B, C, D) E, a A) func(B, C, D) E {
	return func(b B, c C, d D) E {
		return fn(a, b, c, d)
	}
}

// Partial5 fixes the first argument of a 5-ary function, returning a 4-ary
// function over the remaining arguments.
func Partial5[A, B, C, D, E, F any](fn func(A, B, C, D, E) F, a A) func(B, C, D, E) F {
	return func(b B, c C, d D, e E) F {
		return fn(a, b, c, d, e)
	}
}

// TryPartial2 fixes the first argument of a fallible binary function. The
// error surfaces when the returned function is finally invoked, forwarded
// exactly as the original function returned it.
func TryPartial2[A, B, C any](fn func(A, B) (C, error), a A) func(B) (C, error) {
	return func(b B) (C, error) {
		return fn(a, b)
	}
}

// TryPartial3 fixes the first argument of a fallible ternary function.
func TryPartial3[A, B, C, D any](fn func(A, B, C) (D, error), a A) func(B, C) (D, error) {
	return func(b B, c C) (D, error) {
		return fn(a, b, c)
	}
}

// TryPartial4 fixes the first argument of a fallible 4-ary function.
func TryPartial4[A, B, C, D, E any](fn func(A, B, C, D) (E, error), a A) func(B, C, D) (E, error) {
	return func(b B, c C, d D) (E, error) {
		return fn(a, b, c, d)
	}
}

// TryPartial5 fixes the first argument of a fallible 5-ary function.
func TryPartial5[A, B, C, D, E, F any](fn func(A, B, C, D, E) (F, error), a A) func(B, C, D, E) (F, error) {
	return func(b B, c C, d D, e E) (F, error) {
		return fn(a, b, c, d, e)
	}
}

// Curry2 converts a binary function into its fully curried form:
//
//	add := func(a, b int) int { return a + b }
//	funcz.Curry2(add)(5)(3) // 8
func Curry2[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Curry3 converts a ternary function into its fully curried form.
func Curry3[A, B, C, D any](fn func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return fn(a, b, c)
			}
		}
	}
}

package funcz

// TryPipe applies fn to value and returns its result and error. The error
// is forwarded to the caller exactly as fn returned it: TryPipe never
// wraps, annotates, or swallows failures, so errors.Is and errors.As work
// against the original error value.
//
// On failure the returned B is whatever fn returned alongside the error,
// normally the zero value.
//
// Example:
//
//	n, err := funcz.TryPipe("42", strconv.Atoi)
func TryPipe[A, B any](value A, fn func(A) (B, error)) (B, error) {
	return fn(value)
}

// TryTap invokes fn with value and returns value together with fn's error.
// The original value comes back even when fn fails, so callers decide
// whether a failed side effect stops the chain. Effects fn performed
// before failing are not rolled back.
func TryTap[A any](value A, fn func(A) error) (A, error) {
	return value, fn(value)
}

// TryApply applies fn to value and returns its result and error. Backward
// order twin of TryPipe: TryApply(f, v) == TryPipe(v, f).
func TryApply[A, B any](fn func(A) (B, error), value A) (B, error) {
	return fn(value)
}

// TryPerform invokes fn with value and returns value together with fn's
// error. Backward-order twin of TryTap.
func TryPerform[A any](fn func(A) error, value A) (A, error) {
	return value, fn(value)
}

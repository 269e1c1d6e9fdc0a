package funcz

// Mutate invokes fn with write access to the binding behind target, then
// returns the binding's new value. Use it when the function must modify a
// value in place rather than produce a new one:
//
//	total := 4
//	funcz.Mutate(&total, func(n *int) { *n += 2 }) // returns 6, total == 6
//
// The mutator receives the pointer directly, so the mutation is committed
// the moment fn performs it. Mutate itself copies nothing and adds no
// synchronization; exclusive access is the caller's concern, exactly as it
// would be for a plain call through the pointer.
func Mutate[A any](target *A, fn func(*A)) A {
	fn(target)
	return *target
}

// TryMutate invokes fn with write access to the binding behind target and
// returns the binding's resulting value along with fn's error.
//
// There is no rollback: if fn fails partway through, the binding retains
// whatever mutation fn applied before the failure, and the returned value
// reflects that partial state. Callers needing transactional behavior must
// copy the value before calling.
func TryMutate[A any](target *A, fn func(*A) error) (A, error) {
	err := fn(target)
	return *target, err
}

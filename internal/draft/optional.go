package draft

// Opt is a tagged optional: it distinguishes a value that was explicitly
// supplied (even when zero) from one that was never provided. Effect
// parameters must never collapse these two states into one.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns an Opt holding an explicitly supplied value.
func Some[T any](value T) Opt[T] {
	return Opt[T]{value: value, set: true}
}

// None returns an absent Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// FromPtr converts a decoded JSON pointer field into an Opt.
func FromPtr[T any](ptr *T) Opt[T] {
	if ptr == nil {
		return Opt[T]{}
	}
	return Some(*ptr)
}

// Get returns the value and whether it was explicitly supplied.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value was explicitly supplied.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Or returns the supplied value, or fallback when absent.
func (o Opt[T]) Or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

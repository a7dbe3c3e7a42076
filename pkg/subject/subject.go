// Package subject holds the value under test together with the
// name it is reported under in failure messages.
package subject

// Subject is an immutable value under test. A subject built from
// a nil pointer has no value and renders as <null>.
type Subject[T any] struct {
	value   T
	present bool
	name    string
}

// Of captures a non-nullable value.
func Of[T any](value T) Subject[T] {
	return Subject[T]{value: value, present: true}
}

// Nullable captures the value behind ptr, or a missing value when
// ptr is nil. Later changes through ptr are not observed.
func Nullable[T any](ptr *T) Subject[T] {
	if ptr == nil {
		return Subject[T]{}
	}
	return Of(*ptr)
}

// Named returns a copy of the subject reported under name.
func (s Subject[T]) Named(name string) Subject[T] {
	s.name = name
	return s
}

// Value returns the captured value and whether there is one.
func (s Subject[T]) Value() (T, bool) {
	return s.value, s.present
}

// HasValue reports whether the subject is not <null>.
func (s Subject[T]) HasValue() bool {
	return s.present
}

// Name returns the captured name, or fallback when no name was
// given.
func (s Subject[T]) Name(fallback string) string {
	if s.name == "" {
		return fallback
	}
	return s.name
}

// HasName reports whether a name was captured explicitly.
func (s Subject[T]) HasName() bool {
	return s.name != ""
}

// Any returns the value boxed for rendering, or nil when the
// subject is missing.
func (s Subject[T]) Any() any {
	if !s.present {
		return nil
	}
	return s.value
}

package assertion

import "digital.vasic.fluent/pkg/subject"

// AndConstraint is returned by a passing assertion. And is the
// same assertion surface, bound to the same subject.
type AndConstraint[A any] struct {
	And A
}

// And wraps surface into a continuation.
func And[A any](surface A) AndConstraint[A] {
	return AndConstraint[A]{And: surface}
}

// AndWhichConstraint is returned by a passing assertion that
// produced a related value, such as a matched element or a
// recovered failure.
type AndWhichConstraint[A, W any] struct {
	And   A
	Which W

	whichName string
}

// AndWhich wraps surface and the related value. name is the name
// the related value is reported under.
func AndWhich[A, W any](
	surface A,
	which W,
	name string,
) AndWhichConstraint[A, W] {
	return AndWhichConstraint[A, W]{
		And:       surface,
		Which:     which,
		whichName: name,
	}
}

// Subject returns Which as a subject carrying its name, ready to
// be asserted on further.
func (c AndWhichConstraint[A, W]) Subject() subject.Subject[W] {
	return subject.Of(c.Which).Named(c.whichName)
}

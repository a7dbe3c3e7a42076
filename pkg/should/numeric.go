package should

import (
	"math"
	"math/big"
	"reflect"
	"strconv"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/render"
	"digital.vasic.fluent/pkg/subject"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// NumericAssertions asserts on a number that may be missing.
type NumericAssertions[N Number] struct {
	core[N]
}

// Numeric starts assertions on value.
func Numeric[N Number](t assertion.T, value N) *NumericAssertions[N] {
	return &NumericAssertions[N]{newCore(t, subject.Of(value), "value", typeName[N]())}
}

// NullableNumeric starts assertions on the number behind value,
// which may be nil.
func NullableNumeric[N Number](t assertion.T, value *N) *NumericAssertions[N] {
	return &NumericAssertions[N]{newCore(t, subject.Nullable(value), "value", typeName[N]())}
}

// Named returns the assertions reporting the subject as name.
func (a *NumericAssertions[N]) Named(name string) *NumericAssertions[N] {
	cp := *a
	cp.subject = a.subject.Named(name)
	return &cp
}

// Be asserts that the value equals expected. NaN equals NaN.
func (a *NumericAssertions[N]) Be(expected N, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && sameNumber(v, expected)).
		FailWith("Expected {subjectName} to be {0}{reason}, but found {1}{2}.",
			expected, a.actual(), difference(v, expected, ok))
	return assertion.And(a)
}

// BeNullable asserts that the value equals expected, where nil
// expects a missing value.
func (a *NumericAssertions[N]) BeNullable(expected *N, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	a.equalNullable(expected, sameNumber[N],
		"Expected {subjectName} to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// NotBe asserts that the value differs from unexpected.
func (a *NumericAssertions[N]) NotBe(unexpected N, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	a.notEqual(unexpected, sameNumber[N],
		"Did not expect {subjectName} to be {0}{reason}.", because)
	return assertion.And(a)
}

// BePositive asserts that the value is greater than zero.
func (a *NumericAssertions[N]) BePositive(because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && v > 0).
		FailWith("Expected {subjectName} to be positive{reason}, but found {0}.", a.actual())
	return assertion.And(a)
}

// BeNegative asserts that the value is less than zero.
func (a *NumericAssertions[N]) BeNegative(because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && v < 0).
		FailWith("Expected {subjectName} to be negative{reason}, but found {0}.", a.actual())
	return assertion.And(a)
}

// BeLessThan asserts that the value is less than expected.
func (a *NumericAssertions[N]) BeLessThan(expected N, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	a.ordered(expected, compareNumbers[N], lessThan,
		"Expected {subjectName} to be less than {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeLessThanOrEqualTo asserts that the value is at most expected.
func (a *NumericAssertions[N]) BeLessThanOrEqualTo(expected N, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	a.ordered(expected, compareNumbers[N], lessOrEqual,
		"Expected {subjectName} to be less than or equal to {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeGreaterThan asserts that the value is greater than expected.
func (a *NumericAssertions[N]) BeGreaterThan(expected N, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	a.ordered(expected, compareNumbers[N], greaterThan,
		"Expected {subjectName} to be greater than {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeGreaterThanOrEqualTo asserts that the value is at least
// expected.
func (a *NumericAssertions[N]) BeGreaterThanOrEqualTo(expected N, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	a.ordered(expected, compareNumbers[N], greaterOrEqual,
		"Expected {subjectName} to be greater than or equal to {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeInRange asserts that minimum <= value <= maximum.
func (a *NumericAssertions[N]) BeInRange(minimum, maximum N, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && v >= minimum && v <= maximum).
		FailWith("Expected {subjectName} to be between {0} and {1}{reason}, but found {2}.",
			minimum, maximum, a.actual())
	return assertion.And(a)
}

// NotBeInRange asserts that the value lies outside
// [minimum, maximum].
func (a *NumericAssertions[N]) NotBeInRange(minimum, maximum N, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && !(v >= minimum && v <= maximum)).
		FailWith("Expected {subjectName} to not be between {0} and {1}{reason}, but found {2}.",
			minimum, maximum, a.actual())
	return assertion.And(a)
}

// BeOneOf asserts that the value equals one of values.
func (a *NumericAssertions[N]) BeOneOf(values []N, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	a.oneOf(values, sameNumber[N], because)
	return assertion.And(a)
}

// BeOneOfNullable is BeOneOf for candidates that may be nil. A
// missing value matches only a nil candidate.
func (a *NumericAssertions[N]) BeOneOfNullable(values []*N, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	a.oneOfNullable(values, sameNumber[N], because)
	return assertion.And(a)
}

// BeApproximately asserts that the value lies within precision of
// expected.
func (a *NumericAssertions[N]) BeApproximately(expected, precision N, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	checkPrecision(precision)
	v, ok := a.value()
	e := a.exec(because)
	if !ok {
		e.ForCondition(false).
			FailWith("Expected {subjectName} to approximate {0} +/- {1}{reason}, but it was <null>.",
				expected, precision)
		return assertion.And(a)
	}
	within, diff := distance(v, expected, precision)
	e.ForCondition(within).
		FailWith("Expected {subjectName} to approximate {0} +/- {1}{reason}, but {2} differed by {3}.",
			expected, precision, v, diff)
	return assertion.And(a)
}

// NotBeApproximately asserts that the value lies further than
// precision from unexpected. A missing value passes.
func (a *NumericAssertions[N]) NotBeApproximately(unexpected, precision N, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	checkPrecision(precision)
	v, ok := a.value()
	if !ok {
		return assertion.And(a)
	}
	within, diff := distance(v, unexpected, precision)
	a.exec(because).
		ForCondition(!within).
		FailWith("Expected {subjectName} to not approximate {0} +/- {1}{reason}, but {2} only differed by {3}.",
			unexpected, precision, v, diff)
	return assertion.And(a)
}

// Match asserts that predicate holds for the value. description
// names the predicate in the failure message.
func (a *NumericAssertions[N]) Match(predicate func(N) bool, description string, because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	if predicate == nil {
		assertion.InvalidArgument("predicate", "Cannot match against a <null> predicate.")
	}
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && predicate(v)).
		FailWith("Expected {subjectName} to match {0}{reason}, but found {1}.",
			render.Raw(description), a.actual())
	return assertion.And(a)
}

// HaveValue asserts that the value is not missing.
func (a *NumericAssertions[N]) HaveValue(because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	a.haveValue(because)
	return assertion.And(a)
}

// NotBeNull is HaveValue.
func (a *NumericAssertions[N]) NotBeNull(because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	return a.HaveValue(because...)
}

// NotHaveValue asserts that the value is missing.
func (a *NumericAssertions[N]) NotHaveValue(because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	a.notHaveValue(because)
	return assertion.And(a)
}

// BeNull is NotHaveValue.
func (a *NumericAssertions[N]) BeNull(because ...any) assertion.AndConstraint[*NumericAssertions[N]] {
	a.helper()
	return a.NotHaveValue(because...)
}

// Equals is not an assertion. It always panics, pointing at Be.
func (a *NumericAssertions[N]) Equals(any) bool {
	return assertion.EqualsNotSupported(assertion.SuggestBe)
}

func checkPrecision[N Number](precision N) {
	if precision < 0 || precision != precision {
		assertion.InvalidArgument("precision",
			"Cannot determine approximation of a value with a negative precision.")
	}
}

// sameNumber is == except that NaN equals NaN.
func sameNumber[N Number](a, b N) bool {
	return a == b || (a != a && b != b)
}

func compareNumbers[N Number](a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// distance reports whether a and b lie within precision of each
// other, and the absolute gap for the message. Integer kinds are
// compared exactly; float64 cannot hold every int64.
func distance[N Number](a, b, precision N) (bool, any) {
	switch reflect.ValueOf(a).Kind() {
	case reflect.Float32, reflect.Float64:
		d := math.Abs(float64(a) - float64(b))
		return d <= float64(precision), d
	}
	d := new(big.Int).Sub(bigInt(a), bigInt(b))
	d.Abs(d)
	return d.Cmp(bigInt(precision)) <= 0, render.Raw(d.String())
}

// difference renders " (difference of d)" for a present value
// that differs from expected, where d is actual minus expected.
func difference[N Number](actual, expected N, present bool) render.Raw {
	if !present || sameNumber(actual, expected) {
		return ""
	}
	var d string
	switch rv := reflect.ValueOf(actual); rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := float64(actual) - float64(expected)
		if math.IsNaN(f) {
			return ""
		}
		d = strconv.FormatFloat(f, 'g', -1, 64)
	default:
		d = new(big.Int).Sub(bigInt(actual), bigInt(expected)).String()
	}
	return render.Raw(" (difference of " + d + ")")
}

func bigInt[N Number](n N) *big.Int {
	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint())
	}
	return big.NewInt(rv.Int())
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

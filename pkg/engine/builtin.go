package engine

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/should"
)

// registerDefaults registers the built-in evaluators of every
// kind under "kind.type".
func (e *DefaultEngine) registerDefaults() {
	kinds := map[string]map[string]Evaluator{
		"boolean":        booleanEvaluators(),
		"numeric":        numericEvaluators(),
		"string":         stringEvaluators(),
		"guid":           guidEvaluators(),
		"object":         objectEvaluators(),
		"datetime":       dateTimeEvaluators(should.DateTime, should.NullableDateTime),
		"datetimeoffset": dateTimeEvaluators(should.DateTimeOffset, should.NullableDateTimeOffset),
		"dateonly":       dateOnlyEvaluators(),
		"timeonly":       timeOnlyEvaluators(),
		"duration":       durationEvaluators(),
	}

	for kind, evaluators := range kinds {
		for typ, evaluator := range evaluators {
			e.evaluators[kind+"."+typ] = evaluator
		}
	}
}

type namer[A any] interface {
	Named(name string) A
}

// subjectFunc builds the assertion surface for d.Actual.
type subjectFunc[A any] func(t assertion.T, d Definition) (A, error)

func subjectOf[V any, A namer[A]](
	conv func(any) (V, error),
	plain func(assertion.T, V) A,
	nullable func(assertion.T, *V) A,
) subjectFunc[A] {
	return func(t assertion.T, d Definition) (A, error) {
		var a A
		if d.Actual == nil {
			a = nullable(t, nil)
		} else {
			v, err := field("actual", conv)(d.Actual)
			if err != nil {
				return a, err
			}
			a = plain(t, v)
		}
		if d.Name != "" {
			a = a.Named(d.Name)
		}
		return a, nil
	}
}

func missing(name string) error {
	return errors.Wrapf(ErrInvalidDefinition, "%s: missing value", name)
}

// unary builds an evaluator for operations without an
// expectation.
func unary[A, R any](subject subjectFunc[A], op func(A, ...any) R) Evaluator {
	return func(t assertion.T, d Definition) error {
		a, err := subject(t, d)
		if err != nil {
			return err
		}
		op(a, d.because()...)
		return nil
	}
}

// binary builds an evaluator for operations taking d.Expected.
func binary[A, V, R any](
	subject subjectFunc[A],
	conv func(any) (V, error),
	op func(A, V, ...any) R,
) Evaluator {
	return func(t assertion.T, d Definition) error {
		a, err := subject(t, d)
		if err != nil {
			return err
		}
		if d.Expected == nil {
			return missing("expected")
		}
		v, err := field("expected", conv)(d.Expected)
		if err != nil {
			return err
		}
		op(a, v, d.because()...)
		return nil
	}
}

// equality is binary, except that a missing expectation is
// compared as null through opNullable.
func equality[A, V, R1, R2 any](
	subject subjectFunc[A],
	conv func(any) (V, error),
	op func(A, V, ...any) R1,
	opNullable func(A, *V, ...any) R2,
) Evaluator {
	withValue := binary(subject, conv, op)
	return func(t assertion.T, d Definition) error {
		if d.Expected != nil {
			return withValue(t, d)
		}
		a, err := subject(t, d)
		if err != nil {
			return err
		}
		opNullable(a, nil, d.because()...)
		return nil
	}
}

// precise builds an evaluator for operations taking d.Expected
// and d.Precision.
func precise[A, V, P, R any](
	subject subjectFunc[A],
	conv func(any) (V, error),
	precision func(any) (P, error),
	op func(A, V, P, ...any) R,
) Evaluator {
	return func(t assertion.T, d Definition) error {
		a, err := subject(t, d)
		if err != nil {
			return err
		}
		if d.Expected == nil {
			return missing("expected")
		}
		if d.Precision == nil {
			return missing("precision")
		}
		v, err := field("expected", conv)(d.Expected)
		if err != nil {
			return err
		}
		p, err := field("precision", precision)(d.Precision)
		if err != nil {
			return err
		}
		op(a, v, p, d.because()...)
		return nil
	}
}

// ranged builds an evaluator for operations bounded by
// d.Values[0] and d.Values[1].
func ranged[A, V, R any](
	subject subjectFunc[A],
	conv func(any) (V, error),
	op func(A, V, V, ...any) R,
) Evaluator {
	return func(t assertion.T, d Definition) error {
		a, err := subject(t, d)
		if err != nil {
			return err
		}
		if len(d.Values) != 2 {
			return errors.Wrapf(ErrInvalidDefinition,
				"values: expected [minimum, maximum], got %d values", len(d.Values))
		}
		bounds, err := toSlice(d.Values, conv)
		if err != nil {
			return err
		}
		op(a, bounds[0], bounds[1], d.because()...)
		return nil
	}
}

// oneOf builds an evaluator for membership in d.Values.
func oneOf[A, V, R any](
	subject subjectFunc[A],
	conv func(any) (V, error),
	op func(A, []V, ...any) R,
) Evaluator {
	return func(t assertion.T, d Definition) error {
		a, err := subject(t, d)
		if err != nil {
			return err
		}
		values, err := toSlice(d.Values, conv)
		if err != nil {
			return err
		}
		op(a, values, d.because()...)
		return nil
	}
}

// oneOfNullable is oneOf for kinds whose candidates may be
// null. Candidate lists without nulls use op.
func oneOfNullable[A, V, R1, R2 any](
	subject subjectFunc[A],
	conv func(any) (V, error),
	op func(A, []V, ...any) R1,
	opNullable func(A, []*V, ...any) R2,
) Evaluator {
	plain := oneOf(subject, conv, op)
	return func(t assertion.T, d Definition) error {
		hasNull := false
		for _, v := range d.Values {
			hasNull = hasNull || v == nil
		}
		if !hasNull {
			return plain(t, d)
		}
		a, err := subject(t, d)
		if err != nil {
			return err
		}
		values, err := toNullableSlice(d.Values, conv)
		if err != nil {
			return err
		}
		opNullable(a, values, d.because()...)
		return nil
	}
}

func booleanEvaluators() map[string]Evaluator {
	subject := subjectOf(toBool, should.Boolean, should.NullableBoolean)
	type A = *should.BooleanAssertions

	return map[string]Evaluator{
		"be_true":        unary(subject, A.BeTrue),
		"be_false":       unary(subject, A.BeFalse),
		"not_be_true":    unary(subject, A.NotBeTrue),
		"not_be_false":   unary(subject, A.NotBeFalse),
		"be":             equality(subject, toBool, A.Be, A.BeNullable),
		"not_be":         binary(subject, toBool, A.NotBe),
		"imply":          binary(subject, toBool, A.Imply),
		"have_value":     unary(subject, A.HaveValue),
		"not_have_value": unary(subject, A.NotHaveValue),
		"be_null":        unary(subject, A.BeNull),
		"not_be_null":    unary(subject, A.NotBeNull),
	}
}

func numericEvaluators() map[string]Evaluator {
	subject := subjectOf(toFloat, should.Numeric[float64], should.NullableNumeric[float64])
	type A = *should.NumericAssertions[float64]

	return map[string]Evaluator{
		"be":                          equality(subject, toFloat, A.Be, A.BeNullable),
		"not_be":                      binary(subject, toFloat, A.NotBe),
		"be_positive":                 unary(subject, A.BePositive),
		"be_negative":                 unary(subject, A.BeNegative),
		"be_less_than":                binary(subject, toFloat, A.BeLessThan),
		"be_less_than_or_equal_to":    binary(subject, toFloat, A.BeLessThanOrEqualTo),
		"be_greater_than":             binary(subject, toFloat, A.BeGreaterThan),
		"be_greater_than_or_equal_to": binary(subject, toFloat, A.BeGreaterThanOrEqualTo),
		"be_in_range":                 ranged(subject, toFloat, A.BeInRange),
		"not_be_in_range":             ranged(subject, toFloat, A.NotBeInRange),
		"be_one_of":                   oneOfNullable(subject, toFloat, A.BeOneOf, A.BeOneOfNullable),
		"be_approximately":            precise(subject, toFloat, toFloat, A.BeApproximately),
		"not_be_approximately":        precise(subject, toFloat, toFloat, A.NotBeApproximately),
		"have_value":                  unary(subject, A.HaveValue),
		"not_have_value":              unary(subject, A.NotHaveValue),
		"be_null":                     unary(subject, A.BeNull),
		"not_be_null":                 unary(subject, A.NotBeNull),
	}
}

func stringEvaluators() map[string]Evaluator {
	subject := subjectOf(toString, should.String, should.NullableString)
	type A = *should.StringAssertions

	return map[string]Evaluator{
		"be":                         binary(subject, toString, A.Be),
		"be_equivalent_to":           binary(subject, toString, A.BeEquivalentTo),
		"not_be":                     binary(subject, toString, A.NotBe),
		"not_be_equivalent_to":       binary(subject, toString, A.NotBeEquivalentTo),
		"be_one_of":                  oneOf(subject, toString, A.BeOneOf),
		"start_with":                 binary(subject, toString, A.StartWith),
		"start_with_equivalent_of":   binary(subject, toString, A.StartWithEquivalentOf),
		"not_start_with":             binary(subject, toString, A.NotStartWith),
		"end_with":                   binary(subject, toString, A.EndWith),
		"end_with_equivalent_of":     binary(subject, toString, A.EndWithEquivalentOf),
		"not_end_with":               binary(subject, toString, A.NotEndWith),
		"contain":                    binary(subject, toString, A.Contain),
		"contain_equivalent_of":      binary(subject, toString, A.ContainEquivalentOf),
		"not_contain":                binary(subject, toString, A.NotContain),
		"be_empty":                   unary(subject, A.BeEmpty),
		"not_be_empty":               unary(subject, A.NotBeEmpty),
		"be_null_or_empty":           unary(subject, A.BeNullOrEmpty),
		"not_be_null_or_empty":       unary(subject, A.NotBeNullOrEmpty),
		"be_null_or_white_space":     unary(subject, A.BeNullOrWhiteSpace),
		"not_be_null_or_white_space": unary(subject, A.NotBeNullOrWhiteSpace),
		"have_length":                binary(subject, toInt, A.HaveLength),
		"be_upper_cased":             unary(subject, A.BeUpperCased),
		"be_lower_cased":             unary(subject, A.BeLowerCased),
		"be_null":                    unary(subject, A.BeNull),
		"not_be_null":                unary(subject, A.NotBeNull),
	}
}

func guidEvaluators() map[string]Evaluator {
	subject := subjectOf(toGUID, should.GUID, should.NullableGUID)
	type A = *should.GUIDAssertions

	return map[string]Evaluator{
		"be":             equality(subject, toString, A.BeString, nullableGUID),
		"not_be":         binary(subject, toGUID, A.NotBe),
		"be_empty":       unary(subject, A.BeEmpty),
		"not_be_empty":   unary(subject, A.NotBeEmpty),
		"be_one_of":      oneOf(subject, toGUID, A.BeOneOf),
		"have_value":     unary(subject, A.HaveValue),
		"not_have_value": unary(subject, A.NotHaveValue),
		"be_null":        unary(subject, A.BeNull),
		"not_be_null":    unary(subject, A.NotBeNull),
	}
}

// nullableGUID compares against a null GUID. The string
// expectation of "be" has no null form of its own.
func nullableGUID(a *should.GUIDAssertions, _ *string, because ...any) assertion.AndConstraint[*should.GUIDAssertions] {
	return a.BeNullable((*uuid.UUID)(nil), because...)
}

// objectTypes maps type names of suite files to the Go types
// decoded values have.
var objectTypes = map[string]reflect.Type{
	"string":   reflect.TypeOf(""),
	"bool":     reflect.TypeOf(false),
	"int":      reflect.TypeOf(0),
	"float64":  reflect.TypeOf(0.0),
	"map":      reflect.TypeOf(map[string]any{}),
	"list":     reflect.TypeOf([]any{}),
	"time":     reflect.TypeOf(time.Time{}),
	"duration": reflect.TypeOf(time.Duration(0)),
}

func toType(v any) (reflect.Type, error) {
	name, ok := v.(string)
	if !ok {
		return nil, invalid(v, "type name")
	}
	typ, ok := objectTypes[name]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidDefinition, "unknown type %q", name)
	}
	return typ, nil
}

func objectEvaluators() map[string]Evaluator {
	subject := subjectOf(toAny, should.Object, func(t assertion.T, _ *any) *should.ObjectAssertions {
		return should.Object(t, nil)
	})
	type A = *should.ObjectAssertions

	return map[string]Evaluator{
		"be":               binary(subject, toAny, A.Be),
		"not_be":           binary(subject, toAny, A.NotBe),
		"be_null":          unary(subject, A.BeNull),
		"not_be_null":      unary(subject, A.NotBeNull),
		"be_one_of":        oneOf(subject, toAny, A.BeOneOf),
		"be_of_type":       binary(subject, toType, A.BeOfType),
		"not_be_of_type":   binary(subject, toType, A.NotBeOfType),
		"be_assignable_to": binary(subject, toType, A.BeAssignableTo),
	}
}

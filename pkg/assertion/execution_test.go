package assertion

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.fluent/pkg/reason"
	"digital.vasic.fluent/pkg/render"
)

// recorder is a T whose Fatal returns, like a fake reporter.
type recorder struct {
	helpers int
	fatals  []string
}

func (r *recorder) Helper() { r.helpers++ }

func (r *recorder) Fatal(args ...any) {
	r.fatals = append(r.fatals, fmt.Sprint(args...))
}

func TestExecution_PassDoesNothing(t *testing.T) {
	rec := &recorder{}

	New(rec, "boolean").
		ForCondition(true).
		FailWith("Expected {subjectName} to be {0}{reason}, but found {1}.", true, false)

	assert.Empty(t, rec.fatals)
}

func TestExecution_FailRendersTemplate(t *testing.T) {
	f := Catch(func() {
		New(nil, "boolean").
			BecauseOf("because we want to test the failure {0}", "message").
			ForCondition(false).
			FailWith("Expected {subjectName} to be {0}{reason}, but found {1}.", true, false)
	})

	require.NotNil(t, f)
	assert.Equal(t,
		"Expected boolean to be True because we want to test the failure message, but found False.",
		f.Message,
	)
}

func TestExecution_OmitsEmptyReason(t *testing.T) {
	f := Catch(func() {
		New(nil, "string").
			ForCondition(false).
			FailWith("Expected {subjectName} to be {0}{reason}, but found {1}.", "a", nil)
	})

	require.NotNil(t, f)
	assert.Equal(t, `Expected string to be "a", but found <null>.`, f.Message)
}

func TestExecution_ReportsToT(t *testing.T) {
	rec := &recorder{}

	f := Catch(func() {
		New(rec, "value").ForCondition(false).FailWith("{subjectName} failed.")
	})

	require.NotNil(t, f)
	assert.Equal(t, []string{"value failed."}, rec.fatals)
	assert.Equal(t, "value failed.", f.Error())
	assert.GreaterOrEqual(t, rec.helpers, 1)
}

func TestExecution_RawArgumentIsVerbatim(t *testing.T) {
	e := New(nil, "x")

	got := e.Message("{0} / {1}", render.Raw("as-is"), "quoted")

	assert.Equal(t, `as-is / "quoted"`, got)
}

func TestExecution_MessageIsDeterministic(t *testing.T) {
	e := New(nil, "dateTime").BecauseOf("because {0}", 1)

	a := e.Message("Expected {subjectName} {0}{reason}.", []int{1, 2})
	b := e.Message("Expected {subjectName} {0}{reason}.", []int{1, 2})

	assert.Equal(t, a, b)
	assert.Equal(t, "Expected dateTime {1, 2} because 1.", a)
}

func TestExecution_ReasonIsLazy(t *testing.T) {
	assert.NotPanics(t, func() {
		New(nil, "x").
			BecauseOf("because {0} {1}", "only one").
			ForCondition(true).
			FailWith("{subjectName}{reason}")
	})
}

func TestExecution_ReasonArgumentMismatchPropagates(t *testing.T) {
	assert.PanicsWithError(t,
		`invalid format "because {0} {1}": no value for placeholder {1}`,
		func() {
			New(nil, "x").
				BecauseOf("because {0} {1}", "only one").
				ForCondition(false).
				FailWith("{subjectName}{reason}")
		},
	)
}

func TestExecution_UnknownTemplatePlaceholder(t *testing.T) {
	defer func() {
		_, ok := recover().(*reason.FormatError)
		assert.True(t, ok)
	}()

	New(nil, "x").ForCondition(false).FailWith("{2}", 1)
}

func TestCatch_RepanicsOtherValues(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		Catch(func() { panic("boom") })
	})
	assert.Nil(t, Catch(func() {}))
}

func TestInvalidArgument(t *testing.T) {
	defer func() {
		err, ok := recover().(*ArgumentError)
		require.True(t, ok)
		assert.Equal(t, "pattern", err.Param)
		assert.Equal(t,
			"Cannot match against an empty pattern. (Parameter 'pattern')",
			err.Error(),
		)
		assert.Contains(t, fmt.Sprintf("%+v", err), "TestInvalidArgument")
	}()

	InvalidArgument("pattern", "Cannot match against an empty %s.", "pattern")
}

func TestEqualsNotSupported(t *testing.T) {
	assert.PanicsWithError(t,
		"Equals is not part of Fluent Assertions. Did you mean Be() instead?",
		func() { EqualsNotSupported(SuggestBe) },
	)
	assert.PanicsWithError(t,
		"Equals is not part of Fluent Assertions. Did you mean Before() or After() instead?",
		func() { EqualsNotSupported(SuggestBeforeAfter) },
	)
}

func TestContinuations(t *testing.T) {
	c := And("surface")
	assert.Equal(t, "surface", c.And)

	w := AndWhich("surface", 42, "element")
	assert.Equal(t, 42, w.Which)
	assert.Equal(t, "element", w.Subject().Name("value"))

	v, ok := w.Subject().Value()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

package should

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customer struct {
	Name  string
	Age   int
	notes []string
}

func TestObject_Null(t *testing.T) {
	var nothing *customer

	passes(t, func() { Object(nil, nil).BeNull() })
	passes(t, func() { Object(nil, nothing).BeNull() })
	passes(t, func() { Object(nil, &customer{}).NotBeNull() })

	msg := failureOf(t, func() { Object(nil, 42).BeNull() })
	assert.Equal(t, "Expected object to be <null>, but found 42.", msg)

	msg = failureOf(t, func() { Object(nil, nil).Named("result").NotBeNull("because {0}", "it was computed") })
	assert.Equal(t, "Expected result not to be <null> because it was computed.", msg)
}

func TestObject_BeIsStructural(t *testing.T) {
	a := customer{Name: "Ann", Age: 30, notes: []string{"vip"}}
	b := customer{Name: "Ann", Age: 30, notes: []string{"vip"}}

	passes(t, func() { Object(nil, a).Be(b).And.NotBe(customer{Name: "Bob"}) })
	passes(t, func() { Object(nil, &a).Be(&b) })
	passes(t, func() { Object(nil, nil).Be(nil) })

	msg := failureOf(t, func() { Object(nil, "x").Be("y") })
	assert.Equal(t, `Expected object to be "y", but found "x".`, msg)

	msg = failureOf(t, func() { Object(nil, 1).NotBe(1) })
	assert.Equal(t, "Did not expect object to be equal to 1.", msg)
}

func TestObject_BeAppendsDiffForComposites(t *testing.T) {
	msg := failureOf(t, func() {
		Object(nil, customer{Name: "Ann", Age: 31}).Be(customer{Name: "Ann", Age: 30})
	})

	first, diff, found := strings.Cut(msg, "\n")
	require.True(t, found, msg)
	assert.True(t, strings.HasPrefix(first, "Expected object to be "), first)
	assert.Contains(t, diff, "(-expected +actual)")
	assert.Contains(t, diff, "30")
	assert.Contains(t, diff, "31")
}

func TestObject_BeUsing(t *testing.T) {
	sameLength := func(actual, expected any) bool {
		return len(fmt.Sprint(actual)) == len(fmt.Sprint(expected))
	}

	passes(t, func() { Object(nil, "abc").BeUsing("xyz", sameLength) })

	msg := failureOf(t, func() { Object(nil, "abc").BeUsing("wxyz", sameLength) })
	assert.Equal(t, `Expected object to be "wxyz", but found "abc".`, msg)

	err := argumentError(t, func() { Object(nil, "abc").BeUsing("abc", nil) })
	assert.Equal(t, "comparer", err.Param)
}

func TestObject_BeSameAs(t *testing.T) {
	a := &customer{Name: "Ann"}
	b := &customer{Name: "Ann"}

	passes(t, func() { Object(nil, a).BeSameAs(a).And.NotBeSameAs(b) })
	passes(t, func() { Object(nil, 1).NotBeSameAs(1) })

	msg := failureOf(t, func() { Object(nil, a).Named("first").BeSameAs(b) })
	assert.True(t, strings.HasPrefix(msg, "Expected first to refer to "), msg)
}

func TestObject_BeOfType(t *testing.T) {
	c := &customer{Name: "Ann"}

	res := Object(nil, c).BeOfType(reflect.TypeOf(&customer{}))
	assert.Same(t, c, res.Which)

	msg := failureOf(t, func() { Object(nil, "x").BeOfType(reflect.TypeOf(0)) })
	assert.Equal(t, "Expected type to be int, but found string.", msg)

	msg = failureOf(t, func() { Object(nil, nil).BeOfType(reflect.TypeOf(0)) })
	assert.Equal(t, "Expected type to be int, but found <null>.", msg)

	passes(t, func() { Object(nil, "x").NotBeOfType(reflect.TypeOf(0)) })

	msg = failureOf(t, func() { Object(nil, "x").NotBeOfType(reflect.TypeOf("")) })
	assert.Equal(t, "Expected type not to be string, but it is.", msg)

	err := argumentError(t, func() { Object(nil, "x").BeOfType(nil) })
	assert.Equal(t, "expected", err.Param)
}

func TestOfType_ReturnsTypedWhich(t *testing.T) {
	c := customer{Name: "Ann", Age: 30}

	res := OfType[customer](Object(nil, c))
	assert.Equal(t, "Ann", res.Which.Name)

	which := res.Subject()
	v, ok := which.Value()
	assert.True(t, ok)
	assert.Equal(t, 30, v.Age)
	assert.Equal(t, "object", which.Name(""))

	msg := failureOf(t, func() { OfType[int](Object(nil, c)) })
	assert.Equal(t, "Expected type to be int, but found should.customer.", msg)
}

func TestObject_BeAssignableTo(t *testing.T) {
	stringer := reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

	passes(t, func() { Object(nil, Red).BeAssignableTo(stringer) })

	msg := failureOf(t, func() { Object(nil, 1).BeAssignableTo(stringer) })
	assert.Equal(t, "Expected object to be assignable to fmt.Stringer, but int is not.", msg)

	msg = failureOf(t, func() { Object(nil, nil).BeAssignableTo(stringer) })
	assert.Equal(t, "Expected object to be assignable to fmt.Stringer, but found <null>.", msg)
}

func TestObject_BeOneOf(t *testing.T) {
	passes(t, func() { Object(nil, 2).BeOneOf([]any{1, 2}) })
	passes(t, func() { Object(nil, nil).BeOneOf([]any{1, nil}) })

	msg := failureOf(t, func() { Object(nil, nil).BeOneOf([]any{1, "two"}) })
	assert.Equal(t, `Expected object to be one of {1, "two"}, but found <null>.`, msg)
}

func TestObject_Match(t *testing.T) {
	adult := func(v any) bool { c, ok := v.(customer); return ok && c.Age >= 18 }

	passes(t, func() { Object(nil, customer{Age: 20}).Match(adult, "c.Age >= 18") })

	msg := failureOf(t, func() { Object(nil, 5).Match(adult, "c.Age >= 18") })
	assert.Equal(t, "Expected object to match c.Age >= 18, but found 5.", msg)

	err := argumentError(t, func() { Object(nil, 5).Match(nil, "x") })
	assert.Equal(t, "predicate", err.Param)
}

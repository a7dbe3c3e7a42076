package should

import (
	"strings"
	"unicode"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/render"
	"digital.vasic.fluent/pkg/subject"
)

// StringAssertions asserts on a string that may be missing.
type StringAssertions struct {
	core[string]
}

// String starts assertions on value.
func String(t assertion.T, value string) *StringAssertions {
	return &StringAssertions{newCore(t, subject.Of(value), "string", "string")}
}

// NullableString starts assertions on the string behind value,
// which may be nil.
func NullableString(t assertion.T, value *string) *StringAssertions {
	return &StringAssertions{newCore(t, subject.Nullable(value), "string", "string")}
}

// Named returns the assertions reporting the subject as name.
func (a *StringAssertions) Named(name string) *StringAssertions {
	cp := *a
	cp.subject = a.subject.Named(name)
	return &cp
}

// Be asserts that the string equals expected exactly. Failures
// point at the first difference.
func (a *StringAssertions) Be(expected string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	a.validateEquality(expected, false, "to be", because)
	return assertion.And(a)
}

// BeEquivalentTo is Be ignoring case.
func (a *StringAssertions) BeEquivalentTo(expected string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	a.validateEquality(expected, true, "to be equivalent to", because)
	return assertion.And(a)
}

// NotBe asserts that the string differs from unexpected.
func (a *StringAssertions) NotBe(unexpected string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	a.notEqual(unexpected, equals[string],
		"Expected {subjectName} not to be {0}{reason}.", because)
	return assertion.And(a)
}

// NotBeEquivalentTo asserts that the string differs from
// unexpected even when case is ignored.
func (a *StringAssertions) NotBeEquivalentTo(unexpected string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	a.notEqual(unexpected, strings.EqualFold,
		"Expected {subjectName} not to be equivalent to {0}{reason}, but they are.", because)
	return assertion.And(a)
}

// BeOneOf asserts that the string equals one of values.
func (a *StringAssertions) BeOneOf(values []string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	a.oneOf(values, equals[string], because)
	return assertion.And(a)
}

// StartWith asserts that the string begins with expected.
func (a *StringAssertions) StartWith(expected string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	requireOperand(expected, "Cannot compare start of string with empty string.")
	a.validateAffix(expected, false, false, "to start with", because)
	return assertion.And(a)
}

// StartWithEquivalentOf is StartWith ignoring case.
func (a *StringAssertions) StartWithEquivalentOf(expected string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	requireOperand(expected, "Cannot compare start of string with empty string.")
	a.validateAffix(expected, true, false, "to start with equivalent of", because)
	return assertion.And(a)
}

// NotStartWith asserts that the string does not begin with
// unexpected.
func (a *StringAssertions) NotStartWith(unexpected string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	requireOperand(unexpected, "Cannot compare start of string with empty string.")
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && !strings.HasPrefix(v, unexpected)).
		FailWith("Expected {subjectName} that does not start with {0}{reason}, but found {1}.",
			unexpected, a.actual())
	return assertion.And(a)
}

// EndWith asserts that the string ends with expected.
func (a *StringAssertions) EndWith(expected string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	requireOperand(expected, "Cannot compare end of string with empty string.")
	a.validateAffix(expected, false, true, "to end with", because)
	return assertion.And(a)
}

// EndWithEquivalentOf is EndWith ignoring case.
func (a *StringAssertions) EndWithEquivalentOf(expected string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	requireOperand(expected, "Cannot compare end of string with empty string.")
	a.validateAffix(expected, true, true, "to end with equivalent of", because)
	return assertion.And(a)
}

// NotEndWith asserts that the string does not end with unexpected.
func (a *StringAssertions) NotEndWith(unexpected string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	requireOperand(unexpected, "Cannot compare end of string with empty string.")
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && !strings.HasSuffix(v, unexpected)).
		FailWith("Expected {subjectName} that does not end with {0}{reason}, but found {1}.",
			unexpected, a.actual())
	return assertion.And(a)
}

// Contain asserts that expected occurs in the string.
func (a *StringAssertions) Contain(expected string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	requireOperand(expected, "Cannot assert string containment against an empty string.")
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && strings.Contains(v, expected)).
		FailWith("Expected {subjectName} {0} to contain {1}{reason}.", a.actual(), expected)
	return assertion.And(a)
}

// ContainEquivalentOf is Contain ignoring case.
func (a *StringAssertions) ContainEquivalentOf(expected string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	requireOperand(expected, "Cannot assert string containment against an empty string.")
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && strings.Contains(strings.ToLower(v), strings.ToLower(expected))).
		FailWith("Expected {subjectName} {0} to contain the equivalent of {1}{reason}.", a.actual(), expected)
	return assertion.And(a)
}

// NotContain asserts that unexpected does not occur in the string.
// A missing string contains nothing.
func (a *StringAssertions) NotContain(unexpected string, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	requireOperand(unexpected, "Cannot assert string containment against an empty string.")
	v, ok := a.value()
	a.exec(because).
		ForCondition(!ok || !strings.Contains(v, unexpected)).
		FailWith("Did not expect {subjectName} {0} to contain {1}{reason}.", a.actual(), unexpected)
	return assertion.And(a)
}

// BeEmpty asserts that the string is present and has no
// characters.
func (a *StringAssertions) BeEmpty(because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && v == "").
		FailWith("Expected {subjectName} to be empty{reason}, but found {0}.", a.actual())
	return assertion.And(a)
}

// NotBeEmpty asserts that the string has characters. A missing
// string is not empty.
func (a *StringAssertions) NotBeEmpty(because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(!ok || v != "").
		FailWith("Did not expect {subjectName} to be empty{reason}.")
	return assertion.And(a)
}

// BeNullOrEmpty asserts that the string is missing or empty.
func (a *StringAssertions) BeNullOrEmpty(because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(!ok || v == "").
		FailWith("Expected {subjectName} to be <null> or empty{reason}, but found {0}.", a.actual())
	return assertion.And(a)
}

// NotBeNullOrEmpty asserts that the string is present and has
// characters.
func (a *StringAssertions) NotBeNullOrEmpty(because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && v != "").
		FailWith("Expected {subjectName} not to be <null> or empty{reason}, but found {0}.", a.actual())
	return assertion.And(a)
}

// BeNullOrWhiteSpace asserts that the string is missing or holds
// only white space.
func (a *StringAssertions) BeNullOrWhiteSpace(because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(!ok || strings.TrimSpace(v) == "").
		FailWith("Expected {subjectName} to be <null> or whitespace{reason}, but found {0}.", a.actual())
	return assertion.And(a)
}

// NotBeNullOrWhiteSpace asserts that the string holds something
// other than white space.
func (a *StringAssertions) NotBeNullOrWhiteSpace(because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && strings.TrimSpace(v) != "").
		FailWith("Expected {subjectName} not to be <null> or whitespace{reason}, but found {0}.", a.actual())
	return assertion.And(a)
}

// HaveLength asserts that the string has exactly expected runes.
func (a *StringAssertions) HaveLength(expected int, because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	v, ok := a.value()
	e := a.exec(because)
	if !ok {
		e.ForCondition(false).
			FailWith("Expected {subjectName} with length {0}{reason}, but found <null>.", expected)
		return assertion.And(a)
	}
	n := len([]rune(v))
	e.ForCondition(n == expected).
		FailWith("Expected {subjectName} with length {0}{reason}, but found string {1} with length {2}.",
			expected, v, n)
	return assertion.And(a)
}

// BeUpperCased asserts that the string has no lower-case letters.
func (a *StringAssertions) BeUpperCased(because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && strings.IndexFunc(v, unicode.IsLower) < 0).
		FailWith("Expected all alphabetic characters in {subjectName} to be upper-case{reason}, but found {0}.",
			a.actual())
	return assertion.And(a)
}

// BeLowerCased asserts that the string has no upper-case letters.
func (a *StringAssertions) BeLowerCased(because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && strings.IndexFunc(v, unicode.IsUpper) < 0).
		FailWith("Expected all alphabetic characters in {subjectName} to be lower-case{reason}, but found {0}.",
			a.actual())
	return assertion.And(a)
}

// BeNull asserts that the string is missing.
func (a *StringAssertions) BeNull(because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	a.exec(because).
		ForCondition(!a.subject.HasValue()).
		FailWith("Expected {subjectName} to be <null>{reason}, but found {0}.", a.actual())
	return assertion.And(a)
}

// NotBeNull asserts that the string is present.
func (a *StringAssertions) NotBeNull(because ...any) assertion.AndConstraint[*StringAssertions] {
	a.helper()
	a.exec(because).
		ForCondition(a.subject.HasValue()).
		FailWith("Expected {subjectName} not to be <null>{reason}.")
	return assertion.And(a)
}

// Equals is not an assertion. It always panics, pointing at Be.
func (a *StringAssertions) Equals(any) bool {
	return assertion.EqualsNotSupported(assertion.SuggestBe)
}

// validateEquality fails with a message locating the first
// difference between the subject and expected.
func (a *StringAssertions) validateEquality(expected string, fold bool, verb string, because []any) {
	a.helper()
	e := a.exec(because)
	v, ok := a.value()
	if !ok {
		e.ForCondition(false).
			FailWith("Expected {subjectName} "+verb+" {0}{reason}, but found <null>.", expected)
		return
	}
	if sameText(v, expected, fold) {
		return
	}

	subjectRunes, expectedRunes := []rune(v), []rune(expected)
	idx := firstMismatch(subjectRunes, expectedRunes, fold)
	diff := diffSuffix(expected, v)
	if len(subjectRunes) != len(expectedRunes) {
		e.ForCondition(false).
			FailWith("Expected {subjectName} "+verb+" {0} with a length of {1}{reason}, "+
				"but {2} has a length of {3}, differs near {4} (index {5}).{6}",
				expected, len(expectedRunes), v, len(subjectRunes),
				segmentAt(subjectRunes, idx), idx, diff)
		return
	}
	e.ForCondition(false).
		FailWith("Expected {subjectName} "+verb+" {0}{reason}, but {1} differs near {2} (index {3}).{4}",
			expected, v, segmentAt(subjectRunes, idx), idx, diff)
}

// validateAffix checks a prefix or, with suffix set, a suffix.
// An expectation longer than the subject is reported as too short.
func (a *StringAssertions) validateAffix(expected string, fold, suffix bool, verb string, because []any) {
	a.helper()
	e := a.exec(because)
	v, ok := a.value()
	if !ok {
		e.ForCondition(false).
			FailWith("Expected {subjectName} "+verb+" {0}{reason}, but found <null>.", expected)
		return
	}

	subjectRunes, expectedRunes := []rune(v), []rune(expected)
	if len(subjectRunes) < len(expectedRunes) {
		e.ForCondition(false).
			FailWith("Expected {subjectName} "+verb+" {0}{reason}, but {1} is too short.", expected, v)
		return
	}

	offset := 0
	if suffix {
		offset = len(subjectRunes) - len(expectedRunes)
	}
	idx := firstMismatch(subjectRunes[offset:], expectedRunes, fold)
	if idx == len(expectedRunes) {
		return
	}
	idx += offset
	e.ForCondition(false).
		FailWith("Expected {subjectName} "+verb+" {0}{reason}, but {1} differs near {2} (index {3}).",
			expected, v, segmentAt(subjectRunes, idx), idx)
}

func requireOperand(s, message string) {
	if s == "" {
		assertion.InvalidArgument("expected", "%s", message)
	}
}

func sameText(a, b string, fold bool) bool {
	if fold {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// firstMismatch returns the index of the first rune where a and b
// differ, or the length of the shorter one when it is a prefix of
// the other.
func firstMismatch(a, b []rune, fold bool) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			continue
		}
		if fold && unicode.ToLower(a[i]) == unicode.ToLower(b[i]) {
			continue
		}
		return i
	}
	return n
}

// segmentAt quotes up to three runes of s starting at index.
func segmentAt(s []rune, index int) render.Raw {
	end := min(index+3, len(s))
	return render.Raw(render.Value(string(s[index:end])))
}

// diffSuffix renders a unified diff below multi-line mismatches.
func diffSuffix(expected, actual string) render.Raw {
	diff := render.Diff(expected, actual)
	if diff == "" {
		return ""
	}
	return render.Raw("\n" + strings.TrimRight(diff, "\n"))
}

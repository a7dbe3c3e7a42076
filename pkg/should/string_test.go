package should

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_StartWithTooShort(t *testing.T) {
	msg := failureOf(t, func() { String(nil, "ABC").StartWith("ABCDEF") })

	assert.Equal(t, `Expected string to start with "ABCDEF", but "ABC" is too short.`, msg)
}

func TestString_StartWithDiffersNear(t *testing.T) {
	passes(t, func() { String(nil, "ABCDEF").StartWith("ABC").And.StartWithEquivalentOf("abc") })

	msg := failureOf(t, func() { String(nil, "ABC").StartWith("ABB", "because {0}", "prefixes") })
	assert.Equal(t,
		`Expected string to start with "ABB" because prefixes, but "ABC" differs near "C" (index 2).`,
		msg,
	)

	msg = failureOf(t, func() { String(nil, "ABCDEF").StartWithEquivalentOf("abd") })
	assert.Equal(t,
		`Expected string to start with equivalent of "abd", but "ABCDEF" differs near "CDE" (index 2).`,
		msg,
	)
}

func TestString_StartWithEmptyIsInvalid(t *testing.T) {
	err := argumentError(t, func() { String(nil, "ABC").StartWith("") })

	assert.Equal(t, "Cannot compare start of string with empty string.", err.Message)
	assert.Equal(t, "expected", err.Param)
}

func TestString_StartWithNull(t *testing.T) {
	msg := failureOf(t, func() { NullableString(nil, nil).StartWith("A") })

	assert.Equal(t, `Expected string to start with "A", but found <null>.`, msg)
}

func TestString_NotStartWith(t *testing.T) {
	passes(t, func() { String(nil, "ABC").NotStartWith("B") })

	msg := failureOf(t, func() { String(nil, "ABC").NotStartWith("AB") })
	assert.Equal(t, `Expected string that does not start with "AB", but found "ABC".`, msg)
}

func TestString_EndWith(t *testing.T) {
	passes(t, func() { String(nil, "ABC").EndWith("BC").And.EndWithEquivalentOf("bc").And.NotEndWith("AB") })

	msg := failureOf(t, func() { String(nil, "ABC").EndWith("ABCD") })
	assert.Equal(t, `Expected string to end with "ABCD", but "ABC" is too short.`, msg)

	msg = failureOf(t, func() { String(nil, "ABCDEF").EndWith("XEF") })
	assert.Equal(t, `Expected string to end with "XEF", but "ABCDEF" differs near "DEF" (index 3).`, msg)

	msg = failureOf(t, func() { String(nil, "ABC").NotEndWith("BC") })
	assert.Equal(t, `Expected string that does not end with "BC", but found "ABC".`, msg)
}

func TestString_Be(t *testing.T) {
	passes(t, func() { String(nil, "ABC").Be("ABC").And.BeEquivalentTo("abc") })

	msg := failureOf(t, func() { String(nil, "ADC").Be("ABC") })
	assert.Equal(t, `Expected string to be "ABC", but "ADC" differs near "DC" (index 1).`, msg)

	msg = failureOf(t, func() { String(nil, "AB").Named("code").Be("ABC") })
	assert.Equal(t,
		`Expected code to be "ABC" with a length of 3, but "AB" has a length of 2, differs near "" (index 2).`,
		msg,
	)

	msg = failureOf(t, func() { String(nil, "abd").BeEquivalentTo("ABC") })
	assert.Equal(t, `Expected string to be equivalent to "ABC", but "abd" differs near "d" (index 2).`, msg)

	msg = failureOf(t, func() { NullableString(nil, nil).Be("ABC") })
	assert.Equal(t, `Expected string to be "ABC", but found <null>.`, msg)
}

func TestString_BeMultilineAppendsDiff(t *testing.T) {
	msg := failureOf(t, func() { String(nil, "one\nthree\n").Be("one\ntwo\n") })

	assert.Contains(t, msg, "differs near")
	assert.Contains(t, msg, "--- Expected")
	assert.Contains(t, msg, "-two")
	assert.Contains(t, msg, "+three")
}

func TestString_NotBe(t *testing.T) {
	passes(t, func() { String(nil, "a").NotBe("b").And.NotBeEquivalentTo("B") })
	passes(t, func() { NullableString(nil, nil).NotBe("") })

	msg := failureOf(t, func() { String(nil, "a").NotBe("a") })
	assert.Equal(t, `Expected string not to be "a".`, msg)

	msg = failureOf(t, func() { String(nil, "a").NotBeEquivalentTo("A") })
	assert.Equal(t, `Expected string not to be equivalent to "A", but they are.`, msg)
}

func TestString_BeOneOf(t *testing.T) {
	passes(t, func() { String(nil, "b").BeOneOf([]string{"a", "b"}) })

	msg := failureOf(t, func() { String(nil, "c").BeOneOf([]string{"a", "b"}) })
	assert.Equal(t, `Expected string to be one of {"a", "b"}, but found "c".`, msg)
}

func TestString_Contain(t *testing.T) {
	passes(t, func() {
		String(nil, "hello world").Contain("lo w").And.ContainEquivalentOf("WORLD").And.NotContain("xyz")
	})
	passes(t, func() { NullableString(nil, nil).NotContain("a") })

	msg := failureOf(t, func() { String(nil, "hello").Contain("xyz") })
	assert.Equal(t, `Expected string "hello" to contain "xyz".`, msg)

	msg = failureOf(t, func() { String(nil, "hello").ContainEquivalentOf("XYZ") })
	assert.Equal(t, `Expected string "hello" to contain the equivalent of "XYZ".`, msg)

	msg = failureOf(t, func() { String(nil, "hello").NotContain("ell") })
	assert.Equal(t, `Did not expect string "hello" to contain "ell".`, msg)

	msg = failureOf(t, func() { NullableString(nil, nil).Contain("a") })
	assert.Equal(t, `Expected string <null> to contain "a".`, msg)

	argumentError(t, func() { String(nil, "a").Contain("") })
}

func TestString_Emptiness(t *testing.T) {
	passes(t, func() { String(nil, "").BeEmpty().And.BeNullOrEmpty().And.BeNullOrWhiteSpace() })
	passes(t, func() { NullableString(nil, nil).BeNullOrEmpty().And.BeNullOrWhiteSpace().And.NotBeEmpty() })
	passes(t, func() { String(nil, " x ").NotBeEmpty().And.NotBeNullOrEmpty().And.NotBeNullOrWhiteSpace() })

	cases := map[string]struct {
		run func()
		msg string
	}{
		"BeEmpty":               {func() { String(nil, "a").BeEmpty() }, `Expected string to be empty, but found "a".`},
		"BeEmpty null":          {func() { NullableString(nil, nil).BeEmpty() }, `Expected string to be empty, but found <null>.`},
		"NotBeEmpty":            {func() { String(nil, "").NotBeEmpty() }, `Did not expect string to be empty.`},
		"BeNullOrEmpty":         {func() { String(nil, "a").BeNullOrEmpty() }, `Expected string to be <null> or empty, but found "a".`},
		"NotBeNullOrEmpty":      {func() { NullableString(nil, nil).NotBeNullOrEmpty() }, `Expected string not to be <null> or empty, but found <null>.`},
		"BeNullOrWhiteSpace":    {func() { String(nil, " a ").BeNullOrWhiteSpace() }, `Expected string to be <null> or whitespace, but found " a ".`},
		"NotBeNullOrWhiteSpace": {func() { String(nil, "\t ").NotBeNullOrWhiteSpace() }, "Expected string not to be <null> or whitespace, but found \"\t \"."},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.msg, failureOf(t, tc.run))
		})
	}
}

func TestString_HaveLength(t *testing.T) {
	passes(t, func() { String(nil, "héllo").HaveLength(5) })

	msg := failureOf(t, func() { String(nil, "abc").HaveLength(2) })
	assert.Equal(t, `Expected string with length 2, but found string "abc" with length 3.`, msg)

	msg = failureOf(t, func() { NullableString(nil, nil).HaveLength(2) })
	assert.Equal(t, `Expected string with length 2, but found <null>.`, msg)
}

func TestString_Casing(t *testing.T) {
	passes(t, func() { String(nil, "ABC 123").BeUpperCased() })
	passes(t, func() { String(nil, "abc 123").BeLowerCased() })

	msg := failureOf(t, func() { String(nil, "AbC").BeUpperCased() })
	assert.Equal(t, `Expected all alphabetic characters in string to be upper-case, but found "AbC".`, msg)

	msg = failureOf(t, func() { String(nil, "aBc").BeLowerCased() })
	assert.Equal(t, `Expected all alphabetic characters in string to be lower-case, but found "aBc".`, msg)
}

func TestString_Null(t *testing.T) {
	passes(t, func() { NullableString(nil, nil).BeNull() })
	passes(t, func() { NullableString(nil, ptr("")).NotBeNull().And.BeEmpty() })

	msg := failureOf(t, func() { String(nil, "x").BeNull() })
	assert.Equal(t, `Expected string to be <null>, but found "x".`, msg)

	msg = failureOf(t, func() { NullableString(nil, nil).NotBeNull("because {0}", "required") })
	assert.Equal(t, `Expected string not to be <null> because required.`, msg)
}

func TestString_EqualsIsUnsupported(t *testing.T) {
	unsupported(t, func() { String(nil, "a").Equals("a") })
}

func TestRequireOperand_KeepsMessageVerbatim(t *testing.T) {
	err := argumentError(t, func() { requireOperand("", "Cannot use 100% of an empty string.") })

	assert.Equal(t, "expected", err.Param)
	assert.Equal(t, "Cannot use 100% of an empty string.", err.Message)
}

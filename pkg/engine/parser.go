package engine

import "strings"

// ParseAssertionString parses a compact check of the form
// "kind.type:value" into its components. If no colon is present
// the value is nil.
//
// Examples:
//
//	"string.start_with:ABC" -> ("string", "start_with", "ABC")
//	"boolean.be_true"       -> ("boolean", "be_true", nil)
//	"numeric.be:42"         -> ("numeric", "be", "42")
func ParseAssertionString(s string) (kind, assertionType string, value any) {
	parts := strings.SplitN(s, ":", 2)
	key := parts[0]

	if len(parts) > 1 {
		value = parts[1]
	}

	kind, assertionType, found := strings.Cut(key, ".")
	if !found {
		return "", key, value
	}
	return kind, assertionType, value
}

// ParseDefinition builds a Definition from a compact check and
// the actual value.
func ParseDefinition(s string, actual any) Definition {
	kind, assertionType, value := ParseAssertionString(s)
	return Definition{
		ID:       s,
		Kind:     kind,
		Type:     assertionType,
		Actual:   actual,
		Expected: value,
	}
}

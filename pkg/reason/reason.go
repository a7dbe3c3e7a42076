// Package reason renders the optional "because ..." clause that
// assertions insert into their failure messages.
package reason

import (
	"fmt"
	"strconv"
	"strings"
)

const prefix = "because"

// Reason is an unrendered because-clause: a format string with
// positional {0}, {1}, ... placeholders and the arguments that
// fill them. The zero value renders to an empty clause.
type Reason struct {
	Format string
	Args   []any
}

// New captures a reason without rendering it.
func New(format string, args ...any) Reason {
	return Reason{Format: format, Args: args}
}

// IsEmpty reports whether the reason renders to nothing.
func (r Reason) IsEmpty() bool {
	return strings.TrimSpace(r.Format) == ""
}

// Render returns the clause ready to be spliced into a sentence:
// a leading space followed by text that starts with "because".
// A blank format renders as "".
func (r Reason) Render() string {
	if r.IsEmpty() {
		return ""
	}

	text := strings.TrimSpace(Substitute(r.Format, r.Args...))
	if !strings.HasPrefix(strings.ToLower(text), prefix) {
		text = prefix + " " + text
	}

	return " " + text
}

// Substitute replaces positional {N} placeholders with the
// matching argument. It panics with a *FormatError when an index
// is out of range or not a number.
func Substitute(format string, args ...any) string {
	return Expand(format, func(key string) (string, bool) {
		idx, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || idx < 0 || idx >= len(args) {
			return "", false
		}
		return fmt.Sprint(args[idx]), true
	})
}

package reason

import (
	"fmt"
	"strings"
)

// FormatError is raised when a template references a placeholder
// that has no value or when its braces are unbalanced.
type FormatError struct {
	Format  string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format %q: %s", e.Format, e.Message)
}

// Expand substitutes every {key} placeholder in format with the
// value returned by lookup. Doubled braces ("{{", "}}") produce a
// literal brace. Substituted values are never rescanned.
//
// Expand panics with a *FormatError when lookup does not know a
// key or the braces do not balance.
func Expand(
	format string,
	lookup func(key string) (string, bool),
) string {
	var sb strings.Builder
	sb.Grow(len(format))

	for i := 0; i < len(format); i++ {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				sb.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				panic(&FormatError{
					Format:  format,
					Message: fmt.Sprintf("unclosed '{' at offset %d", i),
				})
			}
			key := format[i+1 : i+1+end]
			value, ok := lookup(key)
			if !ok {
				panic(&FormatError{
					Format: format,
					Message: fmt.Sprintf(
						"no value for placeholder {%s}", key,
					),
				})
			}
			sb.WriteString(value)
			i += end + 1
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				sb.WriteByte('}')
				i++
				continue
			}
			panic(&FormatError{
				Format:  format,
				Message: fmt.Sprintf("unexpected '}' at offset %d", i),
			})
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

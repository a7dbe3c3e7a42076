// Package render converts values into the canonical text used in
// assertion failure messages: <null> for missing values, quoted
// strings, angle-bracketed dates, braced GUIDs and brace-delimited
// collections.
package render

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"digital.vasic.fluent/pkg/chrono"
)

const (
	// Null is the rendering of a missing value.
	Null = "<null>"

	// EmptyGUIDName is how the all-zero GUID is named in
	// messages about emptiness.
	EmptyGUIDName = "Guid.Empty"
)

// Renderer is implemented by values that know their own message
// form. It takes priority over every built-in rule.
type Renderer interface {
	RenderValue() string
}

// Raw is text inserted into a message verbatim.
type Raw string

// RenderValue returns the text unchanged.
func (r Raw) RenderValue() string { return string(r) }

// NullOf renders a missing value of the named type, for messages
// about a part of a value where the reader needs to know what
// kind of value was expected.
func NullOf(typeName string) Raw {
	return Raw(Null + " " + typeName)
}

// Func is a custom formatter. It returns false when it does not
// handle v.
type Func func(v any) (string, bool)

// Options tune the renderer.
type Options struct {
	// MaxItems caps how many collection elements are listed.
	// Zero or less lists every element.
	MaxItems int

	// Diff enables unified diffs below multi-line string
	// mismatches.
	Diff bool

	// MaxDepth limits how deep structs and maps are dumped.
	MaxDepth int
}

// DefaultOptions returns the options used when none were set.
func DefaultOptions() Options {
	return Options{MaxItems: 32, Diff: true, MaxDepth: 5}
}

var (
	mu         sync.RWMutex
	options    = DefaultOptions()
	formatters []registered
	nextID     int
)

type registered struct {
	id int
	fn Func
}

// SetOptions replaces the renderer options.
func SetOptions(o Options) {
	mu.Lock()
	defer mu.Unlock()
	options = o
}

// CurrentOptions returns the options in effect.
func CurrentOptions() Options {
	mu.RLock()
	defer mu.RUnlock()
	return options
}

// Register adds a custom formatter that is consulted before the
// built-in rules. Later registrations win. The returned function
// removes the formatter again.
func Register(fn Func) (unregister func()) {
	mu.Lock()
	defer mu.Unlock()

	nextID++
	id := nextID
	formatters = append([]registered{{id: id, fn: fn}}, formatters...)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		for i, r := range formatters {
			if r.id == id {
				formatters = append(formatters[:i], formatters[i+1:]...)
				return
			}
		}
	}
}

func custom(v any) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	for _, r := range formatters {
		if s, ok := r.fn(v); ok {
			return s, true
		}
	}
	return "", false
}

// Value renders a single value.
func Value(v any) string {
	if isNil(v) {
		return Null
	}

	if r, ok := v.(Renderer); ok {
		return r.RenderValue()
	}

	if s, ok := custom(v); ok {
		return s
	}

	switch v := v.(type) {
	case string:
		return `"` + v + `"`
	case bool:
		if v {
			return "True"
		}
		return "False"
	case time.Time:
		return "<" + Time(v, false) + ">"
	case time.Duration:
		return Duration(v)
	case time.Month:
		return v.String()
	case chrono.DateOnly:
		return "<" + v.String() + ">"
	case chrono.TimeOnly:
		return "<" + v.String() + ">"
	case uuid.UUID:
		return GUID(v)
	case error:
		return "error(" + strconv.Quote(v.Error()) + ")"
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		return Value(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return Values(items...)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Bool:
		return Value(rv.Bool())
	case reflect.String:
		return Value(rv.String())
	}

	return dump(v)
}

// Values renders a set of values as {a, b, c}, preserving order.
func Values(vs ...any) string {
	limit := CurrentOptions().MaxItems

	parts := make([]string, 0, len(vs))
	for i, v := range vs {
		if limit > 0 && i == limit {
			parts = append(parts, fmt.Sprintf("…%d more…", len(vs)-limit))
			break
		}
		parts = append(parts, Value(v))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// GUID renders a GUID in its braced canonical form.
func GUID(u uuid.UUID) string {
	return "{" + u.String() + "}"
}

// dump renders structs, maps and other composite values in a
// compact single-line form with sorted map keys.
func dump(v any) string {
	cfg := spew.ConfigState{
		Indent:                  " ",
		MaxDepth:                CurrentOptions().MaxDepth,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	return cfg.Sprintf("%+v", v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr,
		reflect.Interface, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

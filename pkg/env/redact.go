package env

import (
	"sort"
	"strings"
)

var sensitiveMarkers = []string{
	"TOKEN", "SECRET", "PASSWORD", "PASSWD", "API_KEY", "APIKEY",
	"PRIVATE_KEY", "CREDENTIAL", "AUTH",
}

// RedactValue masks a value, showing only the first 4 and last 4 characters.
func RedactValue(v string) string {
	if len(v) <= 8 {
		return strings.Repeat("*", len(v))
	}
	return v[:4] + strings.Repeat("*", len(v)-8) + v[len(v)-4:]
}

// IsSensitiveKey reports whether a variable name looks like it
// holds a credential.
func IsSensitiveKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, m := range sensitiveMarkers {
		if strings.Contains(upper, m) {
			return true
		}
	}
	return false
}

// Secrets returns the distinct values of every sensitive variable
// visible to the loader, longest first so that overlapping secrets
// are masked whole.
func (l *DefaultLoader) Secrets() []string {
	seen := make(map[string]bool)
	add := func(k, v string) {
		if v != "" && IsSensitiveKey(k) {
			seen[v] = true
		}
	}

	l.mu.RLock()
	for k, v := range l.vars {
		add(k, v)
	}
	l.mu.RUnlock()

	for _, kv := range l.environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			add(k, v)
		}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

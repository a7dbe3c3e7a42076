package assertion

// MatchWildcard reports whether text matches pattern, where '*'
// matches any run of characters (including none) and '?' matches
// exactly one character. All other characters match themselves.
func MatchWildcard(pattern, text string) bool {
	p := []rune(pattern)
	s := []rune(text)

	pi, si := 0, 0
	star, mark := -1, 0

	for si < len(s) {
		switch {
		case pi < len(p) && p[pi] == '*':
			star = pi
			mark = si
			pi++
		case pi < len(p) && (p[pi] == '?' || p[pi] == s[si]):
			pi++
			si++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}

	for pi < len(p) && p[pi] == '*' {
		pi++
	}

	return pi == len(p)
}

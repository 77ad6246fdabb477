package domain

import "strings"

// Request fields arrive as `any` because the API distinguishes a field
// that is absent from one that has the wrong JSON type, and the two
// cases produce different error messages.

// isBlank mirrors JavaScript falsiness for decoded JSON values: nil,
// the empty string, false and the number zero are all "undefined" as
// far as the validators are concerned.
func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	}
	return false
}

// parsesAsNumber reports whether s would parse under parseInt-style
// leading-numeric rules: optional surrounding whitespace, optional
// sign, then at least one digit. "12abc" parses, "abc12" does not.
func parsesAsNumber(s string) bool {
	t := strings.TrimSpace(s)
	if t != "" && (t[0] == '+' || t[0] == '-') {
		t = t[1:]
	}
	return t != "" && t[0] >= '0' && t[0] <= '9'
}

// leadingInt extracts the leading integer of s under the same rules.
func leadingInt(s string) (int64, bool) {
	t := strings.TrimSpace(s)
	neg := false
	if t != "" && (t[0] == '+' || t[0] == '-') {
		neg = t[0] == '-'
		t = t[1:]
	}

	var n int64
	i := 0
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		n = n*10 + int64(t[i]-'0')
		i++
	}
	if i == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// StringValue returns the string form of a decoded JSON value, or the
// empty string when it is not a string. Only meaningful after the
// field has passed validation.
func StringValue(v any) string {
	s, _ := v.(string)
	return s
}

// Package normalize repairs text damage introduced by upstream JSON
// re-encoding, where non-ASCII characters arrive as literal backslash-u
// escape sequences inside string values instead of as the characters
// themselves.
package normalize

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

var escapeSeq = regexp.MustCompile(`\\u([0-9a-fA-F]{4})`)

// String replaces every literal \uXXXX sequence in s with the rune it
// encodes. Sequences that do not decode to a valid rune, such as lone
// surrogate halves, are left untouched. Applying String to its own output
// changes nothing.
func String(s string) string {
	return escapeSeq.ReplaceAllStringFunc(s, func(m string) string {
		code, err := strconv.ParseUint(m[2:], 16, 32)
		if err != nil {
			return m
		}
		r := rune(code)
		if !utf8.ValidRune(r) {
			return m
		}
		return string(r)
	})
}

// Value walks v recursively and repairs every string it contains. Maps and
// slices are rebuilt with repaired contents; all other values pass through
// unchanged. The input is never mutated.
func Value(v any) any {
	switch t := v.(type) {
	case string:
		return String(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[k] = Value(elem)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = Value(elem)
		}
		return out
	default:
		return v
	}
}

package edit

import "strings"

// DecodeEscapes turns the two recognized two-character escape forms
// into their literal values: `\n` becomes a line terminator and `\\` a
// single backslash. Shells commonly deliver these verbatim. Any other
// backslash pair is left as written.
func DecodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// EncodeEscapes is the inverse of DecodeEscapes for the two recognized
// forms. Decoding then encoding is lossless for strings containing only
// those escapes.
func EncodeEscapes(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "\n", `\n`)
}

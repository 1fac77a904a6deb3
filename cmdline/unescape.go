package cmdline

// Unescape resolves backslash escapes the way an interactive shell does
// before splitting:
//
//   - \$, \" and \\ become the escaped character;
//   - a backslash followed by a newline is dropped with the newline;
//   - a backslash before any other character is kept as written.
//
// The result is appended to dst. dst may be src[:0]: the output never grows
// faster than the input, so unescaping in place is safe.
func Unescape(dst, src []byte) []byte {
	escaped := false
	for _, c := range src {
		switch {
		case escaped && (c == '$' || c == '"' || c == '\\'):
			dst = append(dst, c)
			escaped = false
		case escaped && c == '\n':
			escaped = false
		case escaped:
			dst = append(dst, '\\', c)
			escaped = false
		case c == '\\':
			escaped = true
		default:
			dst = append(dst, c)
		}
	}
	// A trailing lone backslash is dropped.
	return dst
}

// UnescapeString is Unescape for strings.
func UnescapeString(s string) string {
	return string(Unescape(make([]byte, 0, len(s)), []byte(s)))
}

// Package target turns the raw request path into a filesystem-relative
// lookup path: unsafe-pattern filtering, default-document substitution,
// leading-slash stripping, then percent-decoding, in that order.
package target

import (
	"errors"
	"strings"
)

// ErrUnsafePath marks paths rejected by the syntactic filter.
var ErrUnsafePath = errors.New("unsafe path")

// Resolve maps the wire path to a relative filesystem path.
//
// The filter runs on the path exactly as sent, before any decoding:
// any occurrence of "..", "//" or a backslash is rejected. It is a
// purely lexical check and deliberately does not re-validate after
// decoding, to keep parity with the original behavior.
//
// Decoding runs last, after the leading slash has been stripped, so a
// path that starts with an encoded slash ("%2F...") keeps it.
func Resolve(raw, defaultDocument string) (string, error) {
	if strings.Contains(raw, "..") || strings.Contains(raw, "//") || strings.ContainsRune(raw, '\\') {
		return "", ErrUnsafePath
	}

	p := raw
	switch {
	case p == "" || p == "/":
		p = defaultDocument
	case strings.HasPrefix(p, "/"):
		p = p[1:]
	}

	return decode(p), nil
}

// decode resolves %XX escapes and turns '+' into a space. The original
// never validated the hex digits, so invalid ones decode laxly (each
// bad digit contributes a zero nibble) rather than erroring; a '%'
// with fewer than two bytes left passes through verbatim.
func decode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '%' && i+2 < len(s):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		case c == '+':
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

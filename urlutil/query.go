package urlutil

import (
	"strings"
)

// Param is a single query parameter. Order is preserved by EncodeQuery.
type Param struct {
	Key   string
	Value string
}

// EncodeQuery encodes params as a query string in the order given.
//
// Keys and values are percent-encoded per RFC 3986: only unreserved
// characters (ALPHA, DIGIT, '-', '.', '_', '~') pass through, so a value can
// never introduce '&', '=', '#' or '?' into the query structure. Spaces are
// written as %20 rather than '+'.
func EncodeQuery(params ...Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Escape(p.Key))
		b.WriteByte('=')
		b.WriteString(Escape(p.Value))
	}
	return b.String()
}

// Escape percent-encodes every byte of s that is not an RFC 3986 unreserved
// character.
func Escape(s string) string {
	const hex = "0123456789ABCDEF"

	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', hex[c>>4], hex[c&0x0f])
	}
	return string(buf)
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

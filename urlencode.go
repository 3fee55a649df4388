package buglink

import "strings"

const upperhex = "0123456789ABCDEF"

// queryEscape percent-encodes s for use as one URL query component value.
// Unreserved characters (letters, digits, '-', '.', '_', '~') pass through;
// every other byte, including each byte of a multi-byte UTF-8 sequence,
// becomes uppercase %XX. Space is %20, never '+'.
func queryEscape(s string) string {
	b := strings.Builder{}
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]

		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true

	case c == '-', c == '.', c == '_', c == '~':
		return true
	}

	return false
}

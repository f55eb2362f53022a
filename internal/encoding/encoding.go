// Package encoding implements the percent-encoding of filesystem object
// names and symlink targets into delimiter-safe text tokens. Encoding is a
// pure, stateless and total function: every byte value has exactly one
// encoded representation and decoding recovers the original bytes.
//
// The escaping is RFC3986-like, except that '/' always passes through: it is
// only ever the path separator in composed output paths, since base names on
// POSIX filesystems cannot contain it.
package encoding

import (
	"errors"
	"strings"
)

// ErrInvalidEscape occurs when a percent sign is not followed by two
// hexadecimal digits during decoding.
var ErrInvalidEscape = errors.New("invalid percent escape")

const upperHex = "0123456789ABCDEF"

// specials are printable bytes that are escaped regardless: the record
// delimiter ':' and punctuation that collides with shell and parsing tools.
const specials = " !\"#$%&'()*+,:;<=>?@[\\]`{|}~"

func needsEscape(c byte) bool {
	if c < 0x20 || c > 0x7e {
		return true
	}

	return strings.IndexByte(specials, c) >= 0
}

// Encode maps an arbitrary byte sequence to a delimiter-safe token. Letters,
// digits and a safe punctuation subset pass through unchanged; every other
// byte is rendered as '%' followed by two uppercase hexadecimal digits.
func Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if needsEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0f])
		} else {
			b.WriteByte(c)
		}
	}

	return b.String()
}

// Decode is the inverse of [Encode], via standard percent-decoding: every
// '%XX' escape becomes the byte XX, all other bytes are taken literally.
func Decode(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)

			continue
		}

		if i+3 > len(s) {
			return "", ErrInvalidEscape
		}

		hi, ok1 := unhex(s[i+1])
		lo, ok2 := unhex(s[i+2])
		if !ok1 || !ok2 {
			return "", ErrInvalidEscape
		}

		b.WriteByte(hi<<4 | lo)
		i += 2
	}

	return b.String(), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}

	return 0, false
}

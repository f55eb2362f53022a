package encoding_test

import (
	"strings"
	"testing"

	"github.com/ccin2p3/fist/internal/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncode_Success tests encoding of representative names.
func TestEncode_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "report.txt", "report.txt"},
		{"space", "a b.txt", "a%20b.txt"},
		{"colon delimiter", "10:30", "10%3A30"},
		{"percent itself", "100%", "100%25"},
		{"newline", "line\nbreak", "line%0Abreak"},
		{"tab", "col\tumn", "col%09umn"},
		{"shell specials", "$(rm)", "%24%28rm%29"},
		{"escape char", "\x1b[0m", "%1B%5B0m"},
		{"del char", "\x7f", "%7F"},
		{"high bytes", "caf\xc3\xa9", "caf%C3%A9"},
		{"slash passes through", "a/b", "a/b"},
		{"safe punctuation", "a-b_c.d^e", "a-b_c.d^e"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, encoding.Encode(tt.input))
		})
	}
}

// TestEncode_UppercaseHex tests that every escape uses uppercase hex digits.
func TestEncode_UppercaseHex(t *testing.T) {
	t.Parallel()

	encoded := encoding.Encode("\xab\xcd\xef")

	assert.Equal(t, "%AB%CD%EF", encoded)
	assert.Equal(t, strings.ToUpper(encoded), encoded)
}

// TestEncodeDecode_RoundTripAllBytes tests that decoding inverts encoding for
// every single byte value.
func TestEncodeDecode_RoundTripAllBytes(t *testing.T) {
	t.Parallel()

	for b := 0; b < 256; b++ {
		s := string([]byte{byte(b)})

		decoded, err := encoding.Decode(encoding.Encode(s))

		require.NoError(t, err)
		assert.Equal(t, s, decoded, "byte 0x%02X did not round-trip", b)
	}
}

// TestEncodeDecode_RoundTripSequences tests round-tripping of longer mixed
// byte sequences, including all byte values at once.
func TestEncodeDecode_RoundTripSequences(t *testing.T) {
	t.Parallel()

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	inputs := []string{
		string(all),
		"some dir/with files/a b c.txt",
		"weird:name -> with arrow",
		"\x00\x01\x02trailing\xff",
	}

	for _, s := range inputs {
		decoded, err := encoding.Decode(encoding.Encode(s))

		require.NoError(t, err)
		assert.Equal(t, s, decoded)
	}
}

// TestEncode_Injective tests that no two distinct bytes share an encoding.
func TestEncode_Injective(t *testing.T) {
	t.Parallel()

	seen := make(map[string]byte, 256)

	for b := 0; b < 256; b++ {
		encoded := encoding.Encode(string([]byte{byte(b)}))

		prev, dup := seen[encoded]
		require.False(t, dup, "bytes 0x%02X and 0x%02X both encode to %q", prev, b, encoded)

		seen[encoded] = byte(b)
	}
}

// TestDecode_InvalidEscape tests rejection of malformed escapes.
func TestDecode_InvalidEscape(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"%", "%2", "%ZZ", "abc%"} {
		_, err := encoding.Decode(s)

		require.ErrorIs(t, err, encoding.ErrInvalidEscape)
	}
}

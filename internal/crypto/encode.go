package crypto

import (
	"encoding/base64"
	"fmt"

	"wgvanity/internal/domain"
)

// EncodedKeyLen is the length of a base64-encoded 32-byte key, padding included.
const EncodedKeyLen = 44

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// EncodeKey writes the standard base64 encoding of key into dst.
// It does not allocate, so it is safe to call once per search attempt.
func EncodeKey(dst *[EncodedKeyLen]byte, key [domain.KeySize]byte) {
	base64.StdEncoding.Encode(dst[:], key[:])
}

// DecodeKey parses a standard base64 key and checks its length.
func DecodeKey(s string) ([domain.KeySize]byte, error) {
	var out [domain.KeySize]byte
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("decode key: %w", err)
	}
	if len(b) != domain.KeySize {
		return out, fmt.Errorf("decode key: want %d bytes, got %d", domain.KeySize, len(b))
	}
	copy(out[:], b)
	Wipe(b)
	return out, nil
}

// AppendKey appends the standard base64 encoding of key to dst.
func AppendKey(dst []byte, key [domain.KeySize]byte) []byte {
	return base64.StdEncoding.AppendEncode(dst, key[:])
}

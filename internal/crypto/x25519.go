package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"

	"wgvanity/internal/domain"
)

// GenerateX25519 reads a fresh scalar from r and returns the clamped private
// key with its public key. The private key is clamped per RFC 7748.
func GenerateX25519(r io.Reader) (priv domain.X25519Private, pub domain.X25519Public, err error) {
	if _, err = io.ReadFull(r, priv[:]); err != nil {
		return priv, pub, fmt.Errorf("read scalar: %w", err)
	}
	Clamp(&priv)
	pub, err = PublicX25519(priv)
	return priv, pub, err
}

// PublicX25519 multiplies priv with the Curve25519 base point.
func PublicX25519(priv domain.X25519Private) (pub domain.X25519Public, err error) {
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return pub, err
	}
	copy(pub[:], pb)
	return pub, nil
}

// Clamp fixes the low three bits and the top two bits of k.
func Clamp(k *domain.X25519Private) {
	kb := k[:]
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}

package types

import "fmt"

// KeySize is the length in bytes of Curve25519 scalars and public keys.
const KeySize = 32

// X25519Public is a Curve25519 public key.
type X25519Public [KeySize]byte

// X25519Private is a clamped Curve25519 private scalar.
type X25519Private [KeySize]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// MustX25519Private copies a decoded scalar into a private key. b must hold
// exactly KeySize bytes.
func MustX25519Private(b []byte) X25519Private {
	if len(b) != KeySize {
		panic(fmt.Errorf("X25519 private: want %d bytes, got %d", KeySize, len(b)))
	}
	var out X25519Private
	copy(out[:], b)
	return out
}

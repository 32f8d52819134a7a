package crypto

import (
	"crypto/subtle"

	"filippo.io/edwards25519"

	"wgvanity/internal/domain"
)

// MontgomeryPublic derives the X25519 public key for priv through the
// twisted Edwards form of the curve: u = (1+y)/(1-y) of priv*B.
//
// It shares no code with PublicX25519 and is used to cross-check it.
func MontgomeryPublic(priv domain.X25519Private) (pub domain.X25519Public, err error) {
	s, err := edwards25519.NewScalar().SetBytesWithClamping(priv.Slice())
	if err != nil {
		return pub, err
	}
	copy(pub[:], new(edwards25519.Point).ScalarBaseMult(s).BytesMontgomery())
	return pub, nil
}

// Verify re-derives kp.Public from kp.Private and reports
// domain.ErrKeyMismatch if they disagree.
func Verify(kp domain.KeyPair) error {
	want, err := MontgomeryPublic(kp.Private)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(want[:], kp.Public[:]) != 1 {
		return domain.ErrKeyMismatch
	}
	return nil
}

package crypto

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// NewSource returns a ChaCha8 generator seeded from the operating system.
//
// Each search worker owns one; generators are never shared, so no locking is
// needed and streams are independent. The seed buffer is wiped after use.
func NewSource() *rand.ChaCha8 {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("crypto: seed worker source: " + err.Error())
	}
	defer Wipe(seed[:])
	return rand.NewChaCha8(seed)
}

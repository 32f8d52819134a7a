package crypto

import (
	"runtime"

	"wgvanity/internal/domain"
)

// Wipe zeroes the provided buffer. This is best-effort and aims to
// reduce the chance of the compiler eliding the write.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(&b)
}

// WipePrivate zeroes a private scalar in place.
func WipePrivate(k *domain.X25519Private) { Wipe(k[:]) }

package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"

	"wgvanity/internal/crypto"
	"wgvanity/internal/domain"
)

// Unbounded is a budget with no practical limit.
const Unbounded = math.MaxUint64

// checkEvery is how many candidates are produced between context checks.
const checkEvery = 1 << 10

// ErrBudgetExhausted is returned by Find when the attempt budget ran out
// before a match was found.
var ErrBudgetExhausted = errors.New("search: attempt budget exhausted")

// Candidates yields fresh key pairs drawn from r until ctx is done or the
// consumer stops. A failing random source is unrecoverable and panics.
func Candidates(ctx context.Context, r io.Reader) iter.Seq[domain.KeyPair] {
	return func(yield func(domain.KeyPair) bool) {
		for n := uint64(1); ; n++ {
			if n%checkEvery == 0 && ctx.Err() != nil {
				return
			}
			priv, pub, err := crypto.GenerateX25519(r)
			if err != nil {
				panic(fmt.Errorf("search: random source failed: %w", err))
			}
			if !yield(domain.KeyPair{Private: priv, Public: pub}) {
				return
			}
		}
	}
}

// Unit runs the search loop for a single worker. It is not safe for
// concurrent use.
type Unit struct {
	src     io.Reader
	matcher domain.Matcher
	buf     [crypto.EncodedKeyLen]byte
}

// New returns a Unit drawing randomness from src and testing with m.
func New(src io.Reader, m domain.Matcher) *Unit {
	return &Unit{src: src, matcher: m}
}

// Attempt performs one generate, encode and match step and reports whether
// the candidate matched. The candidate itself is discarded.
func (u *Unit) Attempt() bool {
	_, pub, err := crypto.GenerateX25519(u.src)
	if err != nil {
		panic(fmt.Errorf("search: random source failed: %w", err))
	}
	return u.test(pub)
}

// Find draws candidates until one matches, the budget is spent or ctx is
// done. It returns the match and the number of attempts made.
func (u *Unit) Find(ctx context.Context, budget uint64) (domain.KeyPair, uint64, error) {
	if budget == 0 {
		return domain.KeyPair{}, 0, ErrBudgetExhausted
	}
	var n uint64
	for kp := range Candidates(ctx, u.src) {
		n++
		if u.test(kp.Public) {
			return kp, n, nil
		}
		if n == budget {
			return domain.KeyPair{}, n, ErrBudgetExhausted
		}
	}
	return domain.KeyPair{}, n, ctx.Err()
}

func (u *Unit) test(pub domain.X25519Public) bool {
	crypto.EncodeKey(&u.buf, pub)
	return u.matcher.Match(u.buf[:])
}

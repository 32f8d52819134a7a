package types

// KeyPair is one search candidate: a private scalar and the public key
// derived from it. It is immutable once produced.
type KeyPair struct {
	Private X25519Private
	Public  X25519Public
}

// Match is a candidate that satisfied the pattern, tagged with the worker
// that found it and how many attempts that worker made since its last match.
type Match struct {
	KeyPair
	Worker   int
	Attempts uint64
}

// Package pattern compiles the user's search expression and tests encoded
// public keys against it.
//
// Expressions use Go's RE2 syntax. Matching runs directly on the encoded
// bytes; the key alphabet is pure ASCII, so no Unicode decoding or case
// folding beyond what the expression itself asks for takes place.
//
// A compiled Pattern is immutable and shared read-only by every search
// worker.
package pattern

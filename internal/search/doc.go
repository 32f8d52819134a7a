// Package search implements the generate, encode and test loop for one
// worker.
//
// Candidates is a lazy, unbounded producer of fresh key pairs. A Unit
// consumes it, encodes each public key into a reusable buffer and asks the
// matcher about it, returning the first pair that matches. A Unit touches no
// state shared with other workers; give each worker its own Unit and its own
// random source.
package search

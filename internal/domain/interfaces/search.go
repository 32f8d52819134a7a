package interfaces

import domaintypes "wgvanity/internal/domain/types"

// Matcher tests an encoded public key against a compiled pattern.
// Implementations must be safe for concurrent read-only use.
type Matcher interface {
	Match(encoded []byte) bool
}

// Sink receives every match. Emit must serialize concurrent callers so that
// one match is never interleaved with another.
type Sink interface {
	Emit(match domaintypes.Match) error
}

package domain

import (
	interfaces "wgvanity/internal/domain/interfaces"
	types "wgvanity/internal/domain/types"
)

// KeySize is the length in bytes of Curve25519 keys.
const KeySize = types.KeySize

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	X25519Public  = types.X25519Public
	X25519Private = types.X25519Private
	KeyPair       = types.KeyPair
	Match         = types.Match
	PatternError  = types.PatternError
	WriteError    = types.WriteError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Matcher = interfaces.Matcher
	Sink    = interfaces.Sink
)

// ErrKeyMismatch is re-exported from the types subpackage.
var ErrKeyMismatch = types.ErrKeyMismatch

// MustX25519Private is re-exported from the types subpackage.
var MustX25519Private = types.MustX25519Private

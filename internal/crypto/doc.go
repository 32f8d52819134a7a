// Package crypto exposes the minimal primitives used by wgvanity.
//
// Contents
//
//   - X25519 key generation, clamping and public-key derivation
//     (GenerateX25519, Clamp, PublicX25519)
//   - An independent edwards25519 derivation used to cross-check results
//     (MontgomeryPublic, Verify)
//   - The fixed text encoding for keys: standard base64 with padding
//     (EncodeKey, B64, DecodeKey)
//   - Per-worker random sources seeded from the operating system (NewSource)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// All functions return fixed-size array types defined in internal/domain to
// avoid accidental reallocations. Key generation reads from whatever
// io.Reader it is given; a failing reader is reported as an error here and
// treated as fatal by callers.
package crypto

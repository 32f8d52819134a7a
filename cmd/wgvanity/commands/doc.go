// Package commands defines the wgvanity CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - search REGEX   Search for key pairs whose base64 public key matches REGEX
//   - rate REGEX     Measure single-core throughput and the expected wait
//   - pubkey         Read a base64 private key on stdin, print its public key
//
// Running wgvanity with a single argument is shorthand for search; with no
// arguments it prints help. A pattern that collides with a subcommand name
// can be passed to search explicitly.
//
// # Implementation
//
// The root command loads configuration (defaults, WGVANITY_* environment,
// flags) before any subcommand runs. Matches are written to stdout, one line
// each; every diagnostic goes to stderr.
package commands

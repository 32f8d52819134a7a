// Package config assembles runtime settings for wgvanity.
//
// Values are layered, lowest precedence first: built-in defaults, environment
// variables prefixed with WGVANITY_ (see the env tags on Config), then
// command-line flags. Layers are merged with mergo so a zero value in a
// higher layer never clears a lower one.
package config

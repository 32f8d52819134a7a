// Package app wires application dependencies for the CLI.
//
// It builds the logger, the compiled pattern, the output sink and the search
// service from a config.Config, exposing them via the Wire struct for
// commands to use.
package app

// Package rate measures single-threaded search throughput and renders it
// for display. The measurement is advisory only; nothing in the search
// depends on it.
package rate

// Package vanity runs the parallel key search.
//
// A Service owns a fixed pool of workers. Each worker has its own random
// source and its own search.Unit and loops forever: find a match, optionally
// re-derive it through an independent code path, hand it to the shared sink.
// Nothing is deduplicated and the first match does not stop the search.
//
// The search ends when the context is cancelled, when every worker has spent
// its attempt budget, or when any worker fails. A failing sink write aborts
// all workers and is returned from Run.
package vanity

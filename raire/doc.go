// Package raire is the top-level RAIRE assertion-search engine: it wires the
// vote table, IRV tabulator, audit model, and assertion/cache packages
// together into the frontier search (runRaire, spec.md §4.5), the pruning
// tree (spec.md §4.6), and the two-pass trim heuristic (spec.md §4.7),
// exposed through a single Problem/Solve/Result API (spec.md §6).
//
// Solve is the sole entry point collaborators (JSON serialization, the CLI,
// the service layer — all out of scope here) are expected to call: build a
// Problem, call Solve, and either get a Result or one of the typed errors in
// package errs.
package raire

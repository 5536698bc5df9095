// Package timeout implements the polled deadline/work-quota handle shared by
// the IRV tabulator, the frontier search, and the pruning-tree trim stage
// (spec.md §4.8, §5).
//
// There is no cooperative scheduler and no cancellation channel: Check
// increments a work-done counter on every call, tests the work quota every
// call, and tests the wall clock only every 100th call (a wall-clock read is
// comparatively expensive; the work-quota check is a cheap integer
// comparison). Callers are expected to poll Check at natural iteration
// boundaries and translate a true result into the appropriate typed timeout
// error immediately — Check itself never blocks and never returns an error.
package timeout

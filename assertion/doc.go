// Package assertion defines the two RAIRE assertion variants — NEB
// ("not eliminated before") and NEN ("not eliminated next") — as a tagged
// sum type (spec.md §4.4, §9 design notes: "re-architect as a tagged sum
// type with method dispatch on the tag"), plus the NEB difficulty cache
// (spec.md §4.5 "cache") and the best-candidate search helpers the frontier
// search builds on.
//
// An Assertion is a small value type; Effect evaluates what it implies about
// a candidate elimination-order suffix, and DifficultyOn computes its
// audit-effort estimate against a vote table and audit model.
package assertion

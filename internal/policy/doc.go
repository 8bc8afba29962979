// Package policy is the single source of truth for cookie command
// semantics. Both front ends build a Request and hand it to the Engine; the
// divergent validation the two historical tools carried lives here once.
//
// Ownership boundary:
// - pid/scope/command validation, checked in order, before any kernel call
//
// - sequencing of the before-get, primary operation and after-get
//
// - the user-visible error taxonomy and its exit code mapping
//
// policy does not talk to the kernel directly and does not format output;
// those belong to schedcore and report.
package policy

// Package schedcore owns the kernel control boundary for core scheduling
// cookies.
//
// Ownership boundary:
// - cookie and scope value types
//
// - the four prctl(PR_SCHED_CORE) primitives: get, create, pull, push
//
// - kernel failure classification (no such task, permission denied,
//   facility absent)
//
// schedcore does not own command validation or sequencing; that belongs to
// the policy engine. Pull always applies at thread scope on the calling
// task, which is kernel contract, not a tool decision.
package schedcore

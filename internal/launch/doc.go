// Package launch owns the cookie-then-exec sequence.
//
// Ownership boundary:
// - establishing a cookie on the calling task (pull or create)
//
// - replacing the process image once the cookie is in place
//
// The replacement preserves the task identity, so the cookie survives it.
// The ordering is one-way: a failure anywhere before the exec call aborts
// the launch, and on a successful exec no code in this package runs again.
package launch

package schedcore

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

var (
	ErrUnsupported      = errors.New("schedcore: core scheduling not supported by this kernel")
	ErrNoSuchTask       = errors.New("schedcore: no such task")
	ErrPermissionDenied = errors.New("schedcore: permission denied")
)

// Cookie is an opaque core scheduling token assigned by the kernel. Zero is
// the reserved "no cookie" sentinel; cookies compare for equality only.
type Cookie uint64

func (c Cookie) String() string {
	return fmt.Sprintf("0x%x", uint64(c))
}

// None reports whether the task carries the default scheduling group.
func (c Cookie) None() bool {
	return c == 0
}

// Scope is the breadth of task relatives affected by a create or push.
type Scope int

const (
	ScopeThread       Scope = 0
	ScopeThreadGroup  Scope = 1
	ScopeProcessGroup Scope = 2
)

func (s Scope) Valid() bool {
	return s >= ScopeThread && s <= ScopeProcessGroup
}

func (s Scope) String() string {
	switch s {
	case ScopeThread:
		return "pid"
	case ScopeThreadGroup:
		return "tgid"
	case ScopeProcessGroup:
		return "pgid"
	}
	return fmt.Sprintf("scope(%d)", int(s))
}

// ParseScope accepts both the symbolic scope names and their numeric forms.
func ParseScope(raw string) (Scope, error) {
	switch strings.TrimSpace(raw) {
	case "pid", "0":
		return ScopeThread, nil
	case "tgid", "1":
		return ScopeThreadGroup, nil
	case "pgid", "2":
		return ScopeProcessGroup, nil
	}
	return 0, fmt.Errorf("invalid scope %q (expected pid, tgid, pgid or 0-2)", raw)
}

// Controller is the narrow contract over the kernel's four cookie
// primitives. Implementations perform no validation beyond what the kernel
// itself enforces.
type Controller interface {
	// Get reads the task's current cookie.
	Get(pid int) (Cookie, error)
	// Create allocates a fresh cookie for the task and its scope relatives.
	Create(pid int, scope Scope) error
	// Pull copies the source task's cookie onto the calling task.
	Pull(src int) error
	// Push copies the calling task's cookie onto the destination task and
	// its scope relatives.
	Push(dest int, scope Scope) error
	// Supported reports whether the kernel facility is present. The answer
	// is probed once and memoized for the process lifetime.
	Supported() bool
}

// OpError carries the failing operation and task identity for every kernel
// failure. Its cause unwraps to one of the package sentinels when the errno
// is recognized.
type OpError struct {
	Op  string
	PID int
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s pid %d: %v", e.Op, e.PID, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op string, pid int, err error) error {
	return &OpError{Op: op, PID: pid, Err: classify(err)}
}

func classify(err error) error {
	switch {
	case errors.Is(err, syscall.ESRCH):
		return ErrNoSuchTask
	case errors.Is(err, syscall.EPERM), errors.Is(err, syscall.EACCES):
		return ErrPermissionDenied
	}
	return err
}

package policy

import (
	"errors"
	"fmt"

	"github.com/danmuck/coreschedctl/internal/schedcore"
)

var (
	ErrUsage    = errors.New("policy: bad usage")
	ErrNoCookie = errors.New("policy: no core scheduling cookie")
)

// Kind selects the primary cookie operation.
type Kind int

const (
	// KindGet reads and reports a task's cookie. Default command.
	KindGet Kind = iota
	// KindNew assigns a fresh cookie to an existing task, or launches a
	// program under one.
	KindNew
	// KindCopy pulls a source task's cookie onto the caller and pushes it
	// to a destination task, or launches a program under it.
	KindCopy
	// KindPush copies the calling task's cookie onto an existing task and
	// its scope relatives.
	KindPush
)

func (k Kind) String() string {
	switch k {
	case KindGet:
		return "get"
	case KindNew:
		return "new"
	case KindCopy:
		return "copy"
	case KindPush:
		return "push"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Request is one parsed command, front-end agnostic. PID is the source or
// target task (zero means unset, which defaults to the caller where a
// default is legal). Argv is a trailing program to launch in place of an
// existing target.
type Request struct {
	Kind      Kind
	PID       int
	Dest      int
	Scope     schedcore.Scope
	ScopeSet  bool
	Argv      []string
	CallerPID int
}

func badUsage(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// Validate enforces the pid/scope/command constraints in order; the first
// violation is reported and no kernel call happens before the whole request
// passes.
func (r Request) Validate() error {
	if r.Kind < KindGet || r.Kind > KindPush {
		return badUsage("unknown command %q", r.Kind)
	}
	if r.ScopeSet && !r.Scope.Valid() {
		return badUsage("invalid scope %d (expected 0-2)", int(r.Scope))
	}
	if r.Kind == KindCopy && r.PID == 0 {
		return badUsage("copy requires a source pid")
	}
	if r.Dest != 0 && r.Kind != KindCopy {
		return badUsage("a destination pid is only valid with copy")
	}

	switch r.Kind {
	case KindGet:
		if len(r.Argv) > 0 {
			return badUsage("get does not accept a command to run")
		}
	case KindNew:
		if r.PID != 0 && len(r.Argv) > 0 {
			return badUsage("new cannot accept both a pid and a command")
		}
		if r.PID == 0 && len(r.Argv) == 0 {
			return badUsage("new requires either a pid or a command")
		}
	case KindCopy:
		if r.Dest != 0 && len(r.Argv) > 0 {
			return badUsage("copy cannot accept both a destination pid and a command")
		}
		if r.Dest == 0 && len(r.Argv) == 0 {
			return badUsage("copy requires either a destination pid or a command")
		}
	case KindPush:
		if len(r.Argv) > 0 {
			return badUsage("push does not accept a command to run")
		}
		if r.PID == 0 {
			return badUsage("push requires a destination pid")
		}
	}
	return nil
}

// target resolves the task a read or create applies to.
func (r Request) target() int {
	if r.PID != 0 {
		return r.PID
	}
	return r.CallerPID
}

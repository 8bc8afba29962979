package policy

import (
	"errors"
	"os/exec"

	"github.com/danmuck/coreschedctl/internal/launch"
	"github.com/danmuck/coreschedctl/internal/schedcore"
)

// Exit codes shared by both front ends. The no-cookie and unsupported
// values mirror ENODATA and ENOTSUP; exec failures use the shell's
// not-runnable/not-found convention.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitUsage        = 2
	ExitNoCookie     = 61
	ExitUnsupported  = 95
	ExitExecErr      = 126
	ExitExecNotFound = 127
)

// ExitCode maps the error taxonomy onto process exit codes.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrNoCookie):
		return ExitNoCookie
	case errors.Is(err, schedcore.ErrUnsupported):
		return ExitUnsupported
	case errors.Is(err, launch.ErrExec):
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return ExitExecNotFound
		}
		return ExitExecErr
	}
	return ExitFailure
}

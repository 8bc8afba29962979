package launch

import (
	"errors"
	"fmt"

	"github.com/danmuck/coreschedctl/internal/report"
	"github.com/danmuck/coreschedctl/internal/schedcore"
	"github.com/rs/zerolog/log"
)

// ErrExec marks a failed image replacement; it wraps the underlying exec
// error and names the attempted program.
var ErrExec = errors.New("launch: exec failed")

// Launcher replaces the current process image with argv. Exec returns only
// on failure; on success the process is no longer running this code.
type Launcher interface {
	Exec(argv []string) error
}

// Phase is the orchestrator's position in its one-way lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCookieEstablished
	PhaseExec
)

// Orchestrator establishes a cookie for the calling task and then hands the
// process over to a new program image.
type Orchestrator struct {
	ctrl     schedcore.Controller
	launcher Launcher
	caller   int
	phase    Phase
}

func NewOrchestrator(ctrl schedcore.Controller, launcher Launcher, callerPID int) *Orchestrator {
	return &Orchestrator{ctrl: ctrl, launcher: launcher, caller: callerPID}
}

func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// Run pulls the cookie from src when src is nonzero, otherwise creates a
// fresh cookie on the calling task with the given scope. The calling task's
// resulting cookie is reported immediately before the image replacement.
// Any failure before the exec call aborts without attempting the launch.
func (o *Orchestrator) Run(src int, scope schedcore.Scope, argv []string, rep *report.Reporter) error {
	if len(argv) == 0 {
		return fmt.Errorf("%w: empty argument vector", ErrExec)
	}

	if src != 0 {
		if err := o.ctrl.Pull(src); err != nil {
			return err
		}
	} else {
		if err := o.ctrl.Create(o.caller, scope); err != nil {
			return err
		}
	}
	o.phase = PhaseCookieEstablished

	cookie, err := o.ctrl.Get(o.caller)
	if err != nil {
		return err
	}
	rep.After(o.caller, cookie)

	o.phase = PhaseExec
	log.Debug().Strs("argv", argv).Msg("replacing process image")
	if err := o.launcher.Exec(argv); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExec, argv[0], err)
	}
	return nil
}

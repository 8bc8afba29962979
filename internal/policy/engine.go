package policy

import (
	"fmt"

	"github.com/danmuck/coreschedctl/internal/launch"
	"github.com/danmuck/coreschedctl/internal/report"
	"github.com/danmuck/coreschedctl/internal/schedcore"
	"github.com/rs/zerolog/log"
)

// Engine turns validated requests into kernel call sequences: an optional
// verbose "before" get, the primary operation, then a final get reported as
// the "after" state. When the request carries a program to launch, the
// after state is read on the calling task immediately before the image
// replacement.
type Engine struct {
	Ctrl     schedcore.Controller
	Launcher launch.Launcher
	Reporter *report.Reporter
}

func NewEngine(ctrl schedcore.Controller, launcher launch.Launcher, rep *report.Reporter) *Engine {
	return &Engine{Ctrl: ctrl, Launcher: launcher, Reporter: rep}
}

// Run validates and executes one request. Validation failures surface as
// ErrUsage before any kernel call, including the support probe.
func (e *Engine) Run(req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !e.Ctrl.Supported() {
		return schedcore.ErrUnsupported
	}

	log.Debug().
		Stringer("kind", req.Kind).
		Int("pid", req.PID).
		Int("dest", req.Dest).
		Stringer("scope", req.Scope).
		Msg("running cookie command")

	switch req.Kind {
	case KindGet:
		return e.runGet(req)
	case KindNew:
		return e.runNew(req)
	case KindCopy:
		return e.runCopy(req)
	default:
		return e.runPush(req)
	}
}

func (e *Engine) runGet(req Request) error {
	pid := req.target()
	cookie, err := e.Ctrl.Get(pid)
	if err != nil {
		return err
	}
	if cookie.None() {
		e.Reporter.NoCookie(pid)
		return fmt.Errorf("%w: pid %d", ErrNoCookie, pid)
	}
	e.Reporter.Current(pid, cookie)
	return nil
}

func (e *Engine) runNew(req Request) error {
	if len(req.Argv) > 0 {
		orch := launch.NewOrchestrator(e.Ctrl, e.Launcher, req.CallerPID)
		return orch.Run(0, req.Scope, req.Argv, e.Reporter)
	}

	if err := e.reportBefore(req.PID); err != nil {
		return err
	}
	if err := e.Ctrl.Create(req.PID, req.Scope); err != nil {
		return err
	}
	return e.reportAfter(req.PID)
}

func (e *Engine) runCopy(req Request) error {
	if len(req.Argv) > 0 {
		orch := launch.NewOrchestrator(e.Ctrl, e.Launcher, req.CallerPID)
		return orch.Run(req.PID, req.Scope, req.Argv, e.Reporter)
	}

	if err := e.reportBefore(req.Dest); err != nil {
		return err
	}
	// The cookie travels through the calling task: pull at thread scope,
	// then push to the destination and its scope relatives.
	if err := e.Ctrl.Pull(req.PID); err != nil {
		return err
	}
	if err := e.Ctrl.Push(req.Dest, req.Scope); err != nil {
		return err
	}
	cookie, err := e.Ctrl.Get(req.Dest)
	if err != nil {
		return err
	}
	e.Reporter.Copied(req.PID, req.Dest, cookie)
	e.Reporter.After(req.Dest, cookie)
	return nil
}

func (e *Engine) runPush(req Request) error {
	if err := e.reportBefore(req.PID); err != nil {
		return err
	}
	if err := e.Ctrl.Push(req.PID, req.Scope); err != nil {
		return err
	}
	return e.reportAfter(req.PID)
}

// reportBefore reads the pre-operation cookie only under verbose, so the
// default call sequence stays minimal.
func (e *Engine) reportBefore(pid int) error {
	if !e.Reporter.Verbose {
		return nil
	}
	cookie, err := e.Ctrl.Get(pid)
	if err != nil {
		return err
	}
	e.Reporter.Before(pid, cookie)
	return nil
}

// reportAfter always re-reads the cookie; the reporter decides whether the
// line is shown.
func (e *Engine) reportAfter(pid int) error {
	cookie, err := e.Ctrl.Get(pid)
	if err != nil {
		return err
	}
	e.Reporter.After(pid, cookie)
	return nil
}

// Package report formats cookie values and diagnostic lines for the front
// ends. The invoking program name is threaded in explicitly rather than read
// from ambient process state.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/danmuck/coreschedctl/internal/schedcore"
)

// Reporter writes primary results to Out and diagnostics to Diag. Before,
// After and Copied lines appear only when Verbose is set; the kernel call
// sequence behind them is the engine's concern, not the reporter's.
type Reporter struct {
	Program string
	Out     io.Writer
	Diag    io.Writer
	Verbose bool
}

func New(program string) *Reporter {
	return &Reporter{Program: program, Out: os.Stdout, Diag: os.Stderr}
}

// Current reports a task's existing nonzero cookie.
func (r *Reporter) Current(pid int, cookie schedcore.Cookie) {
	fmt.Fprintf(r.Out, "%s: cookie of pid %d is %s\n", r.Program, pid, cookie)
}

// NoCookie reports the distinct "unset" condition, never rendered as 0x0.
func (r *Reporter) NoCookie(pid int) {
	fmt.Fprintf(r.Diag, "%s: pid %d doesn't have a core scheduling cookie\n", r.Program, pid)
}

func (r *Reporter) Before(pid int, cookie schedcore.Cookie) {
	if !r.Verbose {
		return
	}
	fmt.Fprintf(r.Diag, "%s: cookie of pid %d was %s\n", r.Program, pid, cookie)
}

func (r *Reporter) After(pid int, cookie schedcore.Cookie) {
	if !r.Verbose {
		return
	}
	fmt.Fprintf(r.Diag, "%s: set cookie of pid %d to %s\n", r.Program, pid, cookie)
}

func (r *Reporter) Copied(src, dest int, cookie schedcore.Cookie) {
	if !r.Verbose {
		return
	}
	fmt.Fprintf(r.Diag, "%s: copied cookie %s from pid %d to pid %d\n", r.Program, cookie, src, dest)
}

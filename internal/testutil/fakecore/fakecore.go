// Package fakecore provides an in-memory kernel cookie table that records
// every operation, so tests can assert call sequences and copy semantics
// without a live kernel.
package fakecore

import (
	"github.com/danmuck/coreschedctl/internal/schedcore"
)

// Call is one recorded kernel operation.
type Call struct {
	Op    string
	PID   int
	Scope schedcore.Scope
}

// Controller implements schedcore.Controller over a pid->cookie map.
// Create hands out values never observed before; Pull and Push copy between
// the caller's entry and the named task, mirroring the kernel contract.
type Controller struct {
	CallerPID int

	cookies     map[int]schedcore.Cookie
	calls       []Call
	next        uint64
	unsupported bool
	fail        map[string]error
}

func New(callerPID int) *Controller {
	return &Controller{
		CallerPID: callerPID,
		cookies:   make(map[int]schedcore.Cookie),
		next:      0xc00000,
		fail:      make(map[string]error),
	}
}

// SetCookie seeds a task's cookie without recording a call.
func (c *Controller) SetCookie(pid int, cookie schedcore.Cookie) {
	c.cookies[pid] = cookie
}

// CookieOf inspects the table without recording a call.
func (c *Controller) CookieOf(pid int) schedcore.Cookie {
	return c.cookies[pid]
}

// FailWith injects an error for every subsequent call of the named op.
func (c *Controller) FailWith(op string, err error) {
	c.fail[op] = err
}

func (c *Controller) SetUnsupported() {
	c.unsupported = true
}

func (c *Controller) Calls() []Call {
	out := make([]Call, len(c.calls))
	copy(out, c.calls)
	return out
}

// Mutations returns the recorded calls that change kernel state.
func (c *Controller) Mutations() []Call {
	var out []Call
	for _, call := range c.calls {
		if call.Op != "get" {
			out = append(out, call)
		}
	}
	return out
}

func (c *Controller) record(op string, pid int, scope schedcore.Scope) error {
	c.calls = append(c.calls, Call{Op: op, PID: pid, Scope: scope})
	return c.fail[op]
}

func (c *Controller) Get(pid int) (schedcore.Cookie, error) {
	if err := c.record("get", pid, schedcore.ScopeThread); err != nil {
		return 0, err
	}
	return c.cookies[pid], nil
}

func (c *Controller) Create(pid int, scope schedcore.Scope) error {
	if err := c.record("create", pid, scope); err != nil {
		return err
	}
	c.next++
	c.cookies[pid] = schedcore.Cookie(c.next)
	return nil
}

func (c *Controller) Pull(src int) error {
	if err := c.record("pull", src, schedcore.ScopeThread); err != nil {
		return err
	}
	c.cookies[c.CallerPID] = c.cookies[src]
	return nil
}

func (c *Controller) Push(dest int, scope schedcore.Scope) error {
	if err := c.record("push", dest, scope); err != nil {
		return err
	}
	c.cookies[dest] = c.cookies[c.CallerPID]
	return nil
}

func (c *Controller) Supported() bool {
	return !c.unsupported
}

// Launcher records image-replacement attempts. When Ctrl is set it snapshots
// how many kernel calls had been recorded at exec time, so tests can prove
// nothing ran afterwards.
type Launcher struct {
	Ctrl        *Controller
	Argv        []string
	Execs       int
	CallsAtExec int
	Err         error
}

func (l *Launcher) Exec(argv []string) error {
	l.Execs++
	l.Argv = append([]string(nil), argv...)
	if l.Ctrl != nil {
		l.CallsAtExec = len(l.Ctrl.calls)
	}
	return l.Err
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/coreschedctl/internal/config"
	"github.com/danmuck/coreschedctl/internal/policy"
	"github.com/danmuck/coreschedctl/internal/schedcore"
)

const usageText = `usage:
 coresetctl [-v] [-p PID]
 coresetctl --new [-s SCOPE] -p PID
 coresetctl --new [-s SCOPE] -- PROGRAM [ARGS...]
 coresetctl --copy -p PID [-s SCOPE] -d PID
 coresetctl --copy -p PID [-s SCOPE] -- PROGRAM [ARGS...]
 coresetctl --to -p PID [-s SCOPE]
`

// parseArgs maps the coreset surface onto a policy request. Scope is
// numeric here (0, 1 or 2) and defaults to the single task, matching the
// historical tool.
func parseArgs(argv []string, defs config.Defaults) (policy.Request, bool, error) {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usageText) }

	var (
		newCmd   bool
		copyCmd  bool
		pushCmd  bool
		pid      int
		dest     int
		scopeRaw string
		verbose  bool
	)
	fs.BoolVar(&newCmd, "n", false, "create a new cookie on the pid or launched program")
	fs.BoolVar(&newCmd, "new", false, "create a new cookie on the pid or launched program")
	fs.BoolVar(&copyCmd, "c", false, "copy the cookie from the given pid")
	fs.BoolVar(&copyCmd, "copy", false, "copy the cookie from the given pid")
	fs.BoolVar(&pushCmd, "t", false, "push the calling task's cookie to the given pid")
	fs.BoolVar(&pushCmd, "to", false, "push the calling task's cookie to the given pid")
	fs.IntVar(&pid, "p", 0, "operate on the existing pid/tid")
	fs.IntVar(&pid, "pid", 0, "operate on the existing pid/tid")
	fs.IntVar(&dest, "d", 0, "copy destination pid")
	fs.IntVar(&dest, "dest", 0, "copy destination pid")
	fs.StringVar(&scopeRaw, "s", "", "scope of the change: 0 (task), 1 (thread group) or 2 (process group)")
	fs.StringVar(&scopeRaw, "scope", "", "scope of the change: 0 (task), 1 (thread group) or 2 (process group)")
	fs.BoolVar(&verbose, "v", false, "report before/after cookie state")
	fs.BoolVar(&verbose, "verbose", false, "report before/after cookie state")

	if err := fs.Parse(argv); err != nil {
		return policy.Request{}, false, fmt.Errorf("%w: %v", policy.ErrUsage, err)
	}

	selected := 0
	for _, on := range []bool{newCmd, copyCmd, pushCmd} {
		if on {
			selected++
		}
	}
	if selected > 1 {
		return policy.Request{}, false, fmt.Errorf("%w: --new, --copy and --to are mutually exclusive", policy.ErrUsage)
	}

	kind := policy.KindGet
	switch {
	case newCmd:
		kind = policy.KindNew
	case copyCmd:
		kind = policy.KindCopy
	case pushCmd:
		kind = policy.KindPush
	}

	scope := schedcore.ScopeThread
	scopeSet := false
	if defs.ScopeSet {
		scope = defs.Scope
	}
	if raw := strings.TrimSpace(scopeRaw); raw != "" {
		parsed, err := schedcore.ParseScope(raw)
		if err != nil {
			return policy.Request{}, false, fmt.Errorf("%w: %v", policy.ErrUsage, err)
		}
		scope = parsed
		scopeSet = true
	}

	if !verbose && defs.VerboseSet {
		verbose = defs.Verbose
	}

	req := policy.Request{
		Kind:      kind,
		PID:       pid,
		Dest:      dest,
		Scope:     scope,
		ScopeSet:  scopeSet,
		Argv:      fs.Args(),
		CallerPID: os.Getpid(),
	}
	return req, verbose, nil
}

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
 coreschedctl [-v] [-p PID]
 coreschedctl --new [-t TYPE] -p PID
 coreschedctl --new [-t TYPE] -- PROGRAM [ARGS...]
 coreschedctl --copy -p PID [-t TYPE] -d PID
 coreschedctl --copy -p PID [-t TYPE] -- PROGRAM [ARGS...]
`

// parseArgs maps the coresched surface onto a policy request. The scope
// defaults to tgid unless a flag or the defaults file moved it.
func parseArgs(argv []string, defs config.Defaults) (policy.Request, bool, error) {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usageText) }

	var (
		newCmd   bool
		copyCmd  bool
		pid      int
		dest     int
		scopeRaw string
		verbose  bool
	)
	fs.BoolVar(&newCmd, "n", false, "assign a new cookie to a pid or a launched program")
	fs.BoolVar(&newCmd, "new", false, "assign a new cookie to a pid or a launched program")
	fs.BoolVar(&copyCmd, "c", false, "copy the cookie from an existing pid")
	fs.BoolVar(&copyCmd, "copy", false, "copy the cookie from an existing pid")
	fs.IntVar(&pid, "p", 0, "operate on an existing pid")
	fs.IntVar(&pid, "pid", 0, "operate on an existing pid")
	fs.IntVar(&dest, "d", 0, "destination pid when copying")
	fs.IntVar(&dest, "dest", 0, "destination pid when copying")
	fs.StringVar(&scopeRaw, "t", "", "scope of the target pid: pid, tgid or pgid")
	fs.StringVar(&scopeRaw, "type", "", "scope of the target pid: pid, tgid or pgid")
	fs.BoolVar(&verbose, "v", false, "report before/after cookie state")
	fs.BoolVar(&verbose, "verbose", false, "report before/after cookie state")

	if err := fs.Parse(argv); err != nil {
		return policy.Request{}, false, fmt.Errorf("%w: %v", policy.ErrUsage, err)
	}
	if newCmd && copyCmd {
		return policy.Request{}, false, fmt.Errorf("%w: --new and --copy are mutually exclusive", policy.ErrUsage)
	}

	kind := policy.KindGet
	switch {
	case newCmd:
		kind = policy.KindNew
	case copyCmd:
		kind = policy.KindCopy
	}

	scope := schedcore.ScopeThreadGroup
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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/danmuck/coreschedctl/internal/config"
	"github.com/danmuck/coreschedctl/internal/launch"
	"github.com/danmuck/coreschedctl/internal/logging"
	"github.com/danmuck/coreschedctl/internal/policy"
	"github.com/danmuck/coreschedctl/internal/report"
	"github.com/danmuck/coreschedctl/internal/schedcore"
)

const program = "coresetctl"

func main() {
	logging.ConfigureRuntime()

	defs, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", program, err)
		os.Exit(policy.ExitFailure)
	}
	logging.ApplyConfigLevel(defs.LogLevel)

	req, verbose, err := parseArgs(os.Args[1:], defs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", program, err)
		os.Exit(policy.ExitCode(err))
	}

	rep := report.New(program)
	rep.Verbose = verbose

	engine := policy.NewEngine(schedcore.NewPrctlController(), launch.ExecLauncher{}, rep)
	if err := engine.Run(req); err != nil {
		if !errors.Is(err, policy.ErrNoCookie) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", program, err)
		}
		os.Exit(policy.ExitCode(err))
	}
}

package main

import (
	"errors"
	"testing"

	"github.com/danmuck/coreschedctl/internal/config"
	"github.com/danmuck/coreschedctl/internal/policy"
	"github.com/danmuck/coreschedctl/internal/schedcore"
)

func TestParseArgsDefaultsToShow(t *testing.T) {
	req, verbose, err := parseArgs([]string{"-p", "700"}, config.Defaults{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Kind != policy.KindGet || req.PID != 700 {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Scope != schedcore.ScopeThread || req.ScopeSet {
		t.Fatalf("default scope must be the single task: %+v", req)
	}
	if verbose {
		t.Fatalf("verbose must default off")
	}
}

func TestParseArgsNumericScope(t *testing.T) {
	req, _, err := parseArgs([]string{"-n", "-s", "1", "-p", "700"}, config.Defaults{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Kind != policy.KindNew || req.Scope != schedcore.ScopeThreadGroup || !req.ScopeSet {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestParseArgsPush(t *testing.T) {
	req, _, err := parseArgs([]string{"--to", "-s", "2", "-p", "700"}, config.Defaults{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Kind != policy.KindPush || req.PID != 700 || req.Scope != schedcore.ScopeProcessGroup {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestParseArgsCopyWithProgram(t *testing.T) {
	req, _, err := parseArgs([]string{"-c", "-p", "700", "sshd", "-b", "1024"}, config.Defaults{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Kind != policy.KindCopy || req.PID != 700 {
		t.Fatalf("unexpected request: %+v", req)
	}
	if len(req.Argv) != 3 || req.Argv[0] != "sshd" {
		t.Fatalf("unexpected argv: %+v", req.Argv)
	}
}

func TestParseArgsMutuallyExclusiveCommands(t *testing.T) {
	for _, argv := range [][]string{
		{"-c", "-n", "-p", "700"},
		{"-c", "-t", "-p", "700"},
		{"-n", "-t", "-p", "700"},
	} {
		if _, _, err := parseArgs(argv, config.Defaults{}); !errors.Is(err, policy.ErrUsage) {
			t.Fatalf("argv %v: expected usage error, got %v", argv, err)
		}
	}
}

func TestParseArgsScopeOutOfRange(t *testing.T) {
	_, _, err := parseArgs([]string{"-n", "-s", "3", "-p", "700"}, config.Defaults{})
	if !errors.Is(err, policy.ErrUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

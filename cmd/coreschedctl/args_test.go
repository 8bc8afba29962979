package main

import (
	"errors"
	"os"
	"testing"

	"github.com/danmuck/coreschedctl/internal/config"
	"github.com/danmuck/coreschedctl/internal/policy"
	"github.com/danmuck/coreschedctl/internal/schedcore"
)

func TestParseArgsDefaultsToGet(t *testing.T) {
	req, verbose, err := parseArgs([]string{"-p", "42"}, config.Defaults{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Kind != policy.KindGet || req.PID != 42 {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Scope != schedcore.ScopeThreadGroup || req.ScopeSet {
		t.Fatalf("default scope must be tgid and unset: %+v", req)
	}
	if verbose {
		t.Fatalf("verbose must default off")
	}
	if req.CallerPID != os.Getpid() {
		t.Fatalf("caller pid must be this process: %+v", req)
	}
}

func TestParseArgsNewWithProgram(t *testing.T) {
	req, _, err := parseArgs([]string{"-n", "-t", "pid", "--", "echo", "hi"}, config.Defaults{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Kind != policy.KindNew {
		t.Fatalf("unexpected kind: %v", req.Kind)
	}
	if req.Scope != schedcore.ScopeThread || !req.ScopeSet {
		t.Fatalf("unexpected scope: %+v", req)
	}
	if len(req.Argv) != 2 || req.Argv[0] != "echo" || req.Argv[1] != "hi" {
		t.Fatalf("unexpected argv: %+v", req.Argv)
	}
}

func TestParseArgsCopyToDest(t *testing.T) {
	req, _, err := parseArgs([]string{"--copy", "-p", "42", "-d", "77"}, config.Defaults{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Kind != policy.KindCopy || req.PID != 42 || req.Dest != 77 {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestParseArgsRejectsNewPlusCopy(t *testing.T) {
	_, _, err := parseArgs([]string{"-n", "-c", "-p", "42"}, config.Defaults{})
	if !errors.Is(err, policy.ErrUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestParseArgsRejectsBadScope(t *testing.T) {
	_, _, err := parseArgs([]string{"-n", "-t", "household", "-p", "42"}, config.Defaults{})
	if !errors.Is(err, policy.ErrUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestParseArgsDefaultsFileOverlay(t *testing.T) {
	defs := config.Defaults{
		Scope:      schedcore.ScopeProcessGroup,
		ScopeSet:   true,
		Verbose:    true,
		VerboseSet: true,
	}
	req, verbose, err := parseArgs([]string{"-p", "42"}, defs)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Scope != schedcore.ScopeProcessGroup {
		t.Fatalf("file default scope must apply: %+v", req)
	}
	if req.ScopeSet {
		t.Fatalf("a file default is not an explicit scope: %+v", req)
	}
	if !verbose {
		t.Fatalf("file default verbose must apply")
	}
}

func TestParseArgsFlagBeatsDefaultsFile(t *testing.T) {
	defs := config.Defaults{Scope: schedcore.ScopeProcessGroup, ScopeSet: true}
	req, _, err := parseArgs([]string{"-n", "-t", "pid", "-p", "42"}, defs)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Scope != schedcore.ScopeThread {
		t.Fatalf("explicit flag must beat the file default: %+v", req)
	}
}

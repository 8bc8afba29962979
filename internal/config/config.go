// Package config loads the optional TOML defaults file shared by both
// front ends. Flags always win over the file; the file only moves the
// defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/coreschedctl/internal/schedcore"
)

const EnvConfigPath = "CORESCHEDCTL_CONFIG"

// Defaults carries only the keys the file actually defined, so the front
// ends can overlay them beneath explicit flags.
type Defaults struct {
	Scope      schedcore.Scope
	ScopeSet   bool
	Verbose    bool
	VerboseSet bool
	LogLevel   string
}

type fileConfig struct {
	DefaultScope string `toml:"default_scope"`
	Verbose      bool   `toml:"verbose"`
	LogLevel     string `toml:"log_level"`
}

// Load reads the file named by CORESCHEDCTL_CONFIG. An unset variable is
// not an error; a set-but-broken file is.
func Load() (Defaults, error) {
	path := strings.TrimSpace(os.Getenv(EnvConfigPath))
	if path == "" {
		return Defaults{}, nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (Defaults, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Defaults{}, fmt.Errorf("load defaults config (%s): %w", path, err)
	}

	var out Defaults
	if meta.IsDefined("default_scope") {
		scope, err := schedcore.ParseScope(raw.DefaultScope)
		if err != nil {
			return Defaults{}, fmt.Errorf("load defaults config (%s): %w", path, err)
		}
		out.Scope = scope
		out.ScopeSet = true
	}
	if meta.IsDefined("verbose") {
		out.Verbose = raw.Verbose
		out.VerboseSet = true
	}
	if meta.IsDefined("log_level") {
		out.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return out, nil
}

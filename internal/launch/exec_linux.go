//go:build linux

package launch

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// ExecLauncher replaces the process image with execvp semantics: argv[0] is
// resolved against PATH and the current environment is preserved.
type ExecLauncher struct{}

func (ExecLauncher) Exec(argv []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return err
	}
	return unix.Exec(path, argv, os.Environ())
}

//go:build linux

package schedcore

import (
	"errors"
	"os"
	"sync"
	"unsafe"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// PrctlController drives the kernel facility through prctl(PR_SCHED_CORE).
// Every operation is synchronous; blocking is confined to the kernel call.
type PrctlController struct {
	probeOnce sync.Once
	supported bool
}

func NewPrctlController() *PrctlController {
	return &PrctlController{}
}

func (c *PrctlController) Get(pid int) (Cookie, error) {
	var cookie uint64
	err := unix.Prctl(unix.PR_SCHED_CORE, unix.PR_SCHED_CORE_GET, uintptr(pid),
		unix.PR_SCHED_CORE_SCOPE_THREAD, uintptr(unsafe.Pointer(&cookie)))
	if err != nil {
		return 0, opError("get", pid, err)
	}
	log.Debug().Int("pid", pid).Stringer("cookie", Cookie(cookie)).Msg("sched core get")
	return Cookie(cookie), nil
}

func (c *PrctlController) Create(pid int, scope Scope) error {
	err := unix.Prctl(unix.PR_SCHED_CORE, unix.PR_SCHED_CORE_CREATE, uintptr(pid),
		uintptr(scope), 0)
	if err != nil {
		return opError("create", pid, err)
	}
	log.Debug().Int("pid", pid).Stringer("scope", scope).Msg("sched core create")
	return nil
}

func (c *PrctlController) Pull(src int) error {
	// Pull is thread-scope by kernel contract regardless of any scope the
	// caller asked for elsewhere in the command.
	err := unix.Prctl(unix.PR_SCHED_CORE, unix.PR_SCHED_CORE_SHARE_FROM, uintptr(src),
		unix.PR_SCHED_CORE_SCOPE_THREAD, 0)
	if err != nil {
		return opError("pull", src, err)
	}
	log.Debug().Int("src", src).Msg("sched core pull")
	return nil
}

func (c *PrctlController) Push(dest int, scope Scope) error {
	err := unix.Prctl(unix.PR_SCHED_CORE, unix.PR_SCHED_CORE_SHARE_TO, uintptr(dest),
		uintptr(scope), 0)
	if err != nil {
		return opError("push", dest, err)
	}
	log.Debug().Int("dest", dest).Stringer("scope", scope).Msg("sched core push")
	return nil
}

// Supported probes the facility with a harmless get on the calling task.
// EINVAL means the kernel does not recognize PR_SCHED_CORE; any other
// outcome (success included) means the facility is present.
func (c *PrctlController) Supported() bool {
	c.probeOnce.Do(func() {
		var cookie uint64
		err := unix.Prctl(unix.PR_SCHED_CORE, unix.PR_SCHED_CORE_GET, uintptr(os.Getpid()),
			unix.PR_SCHED_CORE_SCOPE_THREAD, uintptr(unsafe.Pointer(&cookie)))
		c.supported = !errors.Is(err, unix.EINVAL)
		if !c.supported {
			log.Debug().Msg("sched core probe: PR_SCHED_CORE rejected with EINVAL")
		}
	})
	return c.supported
}

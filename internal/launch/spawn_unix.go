//go:build unix

package launch

import (
	"os/exec"
	"syscall"
)

// configureDetached starts the child in its own session so closing the
// launcher's terminal does not take it down.
func configureDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}

//go:build !unix

package launch

import "os/exec"

func configureDetached(*exec.Cmd) {}

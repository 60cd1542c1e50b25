package launch

import "os/exec"

// ProcessSpawner starts commands with the launcher's environment, detached
// from its standard streams.
type ProcessSpawner struct {
	Env []string
	Dir string
}

// Spawn resolves argv[0] on the search path and starts it. The child is
// released immediately; its exit status is never collected.
func (p ProcessSpawner) Spawn(argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, ErrEmptyCommand
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = p.Env
	cmd.Dir = p.Dir
	configureDetached(cmd)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, err
	}
	return pid, nil
}

var _ Spawner = ProcessSpawner{}

package editor

import (
	"fmt"
	"os/exec"

	"vimbridge/internal/domain"
	"vimbridge/internal/ports"
)

// Launcher implements ports.ProcessLauncher with os/exec
type Launcher struct {
	// Dir is the working directory of spawned processes; empty inherits ours
	Dir string
}

// Ensure Launcher implements ProcessLauncher
var _ ports.ProcessLauncher = (*Launcher)(nil)

// NewLauncher creates a new process launcher
func NewLauncher() *Launcher {
	return &Launcher{}
}

// Launch starts the command and returns without waiting for it to exit.
// Output is not captured and stdin is not connected.
func (l *Launcher) Launch(c domain.Command) error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = l.Dir

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", c.Name, err)
	}

	// Reap the child so it does not linger as a zombie
	go cmd.Wait()

	return nil
}

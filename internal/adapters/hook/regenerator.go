package hook

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"runtime"
	"strings"

	"vimbridge/internal/ports"
)

// Regenerator implements ports.MetadataRegenerator by running a user-supplied
// shell command, e.g. a script that rebuilds the .sln/.csproj files
type Regenerator struct {
	command string
	dir     string
	logger  *log.Logger
}

// Ensure Regenerator implements MetadataRegenerator
var _ ports.MetadataRegenerator = (*Regenerator)(nil)

// Option configures the Regenerator
type Option func(*Regenerator)

// WithDir sets the directory the command runs in
func WithDir(dir string) Option {
	return func(r *Regenerator) {
		r.dir = dir
	}
}

// WithLogger sets the logger used when no command is configured
func WithLogger(l *log.Logger) Option {
	return func(r *Regenerator) {
		r.logger = l
	}
}

// NewRegenerator creates a regenerator for the given shell command.
// An empty command makes regeneration a logged no-op.
func NewRegenerator(command string, opts ...Option) *Regenerator {
	r := &Regenerator{command: strings.TrimSpace(command)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegenerateProjectMetadata runs the configured command and waits for it
func (r *Regenerator) RegenerateProjectMetadata(ctx context.Context) error {
	if r.command == "" {
		if r.logger != nil {
			r.logger.Printf("no regeneration command configured, skipping")
		}
		return nil
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/c", r.command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", r.command)
	}
	cmd.Dir = r.dir

	if _, err := cmd.Output(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("regeneration command failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return fmt.Errorf("regeneration command failed: %w", err)
	}
	return nil
}

package commands

import (
	"errors"
	"os"

	"vimbridge/internal/application"
	"vimbridge/internal/domain"
	"vimbridge/internal/ports"
)

// OpenFileCommand dispatches files to a running Vim server
type OpenFileCommand struct {
	launcher    ports.ProcessLauncher
	ProjectRoot string
}

// Ensure OpenFileCommand implements FileOpener
var _ ports.FileOpener = (*OpenFileCommand)(nil)

// NewOpenFileCommand creates a new OpenFileCommand. projectRoot is appended to
// Vim's search path; it may be empty.
func NewOpenFileCommand(launcher ports.ProcessLauncher, projectRoot string) *OpenFileCommand {
	return &OpenFileCommand{
		launcher:    launcher,
		ProjectRoot: projectRoot,
	}
}

// OpenFile opens req in Vim. A file whose extension is not configured is
// rejected with Success=false and no diagnostic; every other failure carries
// a diagnostic and a typed error. Success only means the process started.
func (c *OpenFileCommand) OpenFile(cfg domain.EditorConfig, req domain.OpenRequest) domain.DispatchResult {
	if !cfg.Accepts(req.FilePath) {
		return domain.DispatchResult{}
	}

	if !domain.IsExecutable(cfg.ExecutablePath) {
		return failure(&application.ConfigurationError{Path: cfg.ExecutablePath}, nil)
	}

	if info, err := os.Stat(req.FilePath); err != nil || info.IsDir() {
		return failure(&application.TargetNotFoundError{Path: req.FilePath}, nil)
	}

	cmd := domain.BuildCommand(cfg, req, c.ProjectRoot)

	if err := c.launcher.Launch(cmd); err != nil {
		var launchErr *application.LaunchError
		if !errors.As(err, &launchErr) {
			launchErr = &application.LaunchError{Executable: cmd.Name, Err: err}
		}
		return failure(launchErr, &cmd)
	}

	return domain.DispatchResult{Success: true, Command: &cmd}
}

func failure(err error, cmd *domain.Command) domain.DispatchResult {
	return domain.DispatchResult{
		Diagnostic: err.Error(),
		Err:        err,
		Command:    cmd,
	}
}

package ports

import "vimbridge/internal/domain"

// ProcessLauncher starts an external process without waiting for it
type ProcessLauncher interface {
	// Launch spawns cmd and returns once the process has started.
	// The exit status of the process is never observed.
	Launch(cmd domain.Command) error
}

// FileOpener dispatches open requests to the external editor
type FileOpener interface {
	OpenFile(cfg domain.EditorConfig, req domain.OpenRequest) domain.DispatchResult
}

package commands

import (
	"context"
	"fmt"

	"vimbridge/internal/domain"
	"vimbridge/internal/ports"
)

// SyncResult contains the result of a sync check
type SyncResult struct {
	Synced  bool
	Message string
}

// SyncCommand regenerates project metadata when code files change
type SyncCommand struct {
	regenerator ports.MetadataRegenerator
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(regenerator ports.MetadataRegenerator) *SyncCommand {
	return &SyncCommand{regenerator: regenerator}
}

// Execute regenerates metadata if the batch touches a configured extension
func (c *SyncCommand) Execute(ctx context.Context, cfg domain.EditorConfig, changes domain.ChangeSet) (*SyncResult, error) {
	if !changes.Touches(cfg) {
		return &SyncResult{Message: "No code files changed"}, nil
	}

	if err := c.regenerator.RegenerateProjectMetadata(ctx); err != nil {
		return nil, fmt.Errorf("failed to regenerate project metadata: %w", err)
	}

	return &SyncResult{
		Synced: true,
		Message: fmt.Sprintf("Regenerated project metadata for %d new files, %d moved files.",
			len(changes.Added), len(changes.Moved)),
	}, nil
}

// SyncAll regenerates metadata unconditionally
func (c *SyncCommand) SyncAll(ctx context.Context) (*SyncResult, error) {
	if err := c.regenerator.RegenerateProjectMetadata(ctx); err != nil {
		return nil, fmt.Errorf("failed to regenerate project metadata: %w", err)
	}
	return &SyncResult{Synced: true, Message: "Regenerated project metadata"}, nil
}

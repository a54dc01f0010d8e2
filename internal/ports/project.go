package ports

import "context"

// MetadataRegenerator rebuilds the project/solution files the editor relies on
// for completion and navigation
type MetadataRegenerator interface {
	RegenerateProjectMetadata(ctx context.Context) error
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vimbridge/internal/application"
	"vimbridge/internal/domain"
)

var changes domain.ChangeSet

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Regenerate project metadata if code files changed",
	Long: `Report a batch of changed files. Project metadata is regenerated when an
added, deleted or moved file matches the configured extensions.

Examples:
  vimbridge-cli sync --added Assets/Player.cs --moved Assets/AI/Enemy.cs`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := application.LoadConfig(GetStore())
		if err != nil {
			return err
		}

		result, err := newSyncCommand().Execute(context.Background(), cfg, changes)
		if err != nil {
			return err
		}
		if result.Synced {
			logger.Print(result.Message)
		}
		return nil
	},
}

var syncAllCmd = &cobra.Command{
	Use:   "sync-all",
	Short: "Regenerate project metadata unconditionally",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newSyncCommand().SyncAll(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	syncCmd.Flags().StringSliceVar(&changes.Added, "added", nil, "added file paths")
	syncCmd.Flags().StringSliceVar(&changes.Deleted, "deleted", nil, "deleted file paths")
	syncCmd.Flags().StringSliceVar(&changes.Moved, "moved", nil, "new paths of moved files")
	syncCmd.Flags().StringSliceVar(&changes.MovedFrom, "moved-from", nil, "old paths of moved files")
	syncCmd.Flags().StringSliceVar(&changes.Imported, "imported", nil, "re-imported file paths")

	rootCmd.AddCommand(syncCmd, syncAllCmd)
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"vimbridge/internal/adapters/watcher"
	"vimbridge/internal/application"
	"vimbridge/internal/domain"
)

var watchWindow time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the project and regenerate metadata when code files change",
	Long: `Watch every directory under the project root. Changes are batched and
project metadata is regenerated when a batch touches a configured extension.
Preferences are re-read for every batch.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		syncer := newSyncCommand()
		onBatch := func(changes domain.ChangeSet) {
			cfg, err := application.LoadConfig(GetStore())
			if err != nil {
				logger.Print(err)
				return
			}
			result, err := syncer.Execute(ctx, cfg, changes)
			if err != nil {
				logger.Print(err)
				return
			}
			if result.Synced {
				logger.Print(result.Message)
			}
		}

		w, err := watcher.New(projectRoot, watchWindow, onBatch, logger)
		if err != nil {
			return err
		}
		logger.Printf("watching %s", projectRoot)
		return w.Run(ctx)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchWindow, "window", watcher.DefaultWindow, "quiet period before a batch is reported")
	rootCmd.AddCommand(watchCmd)
}

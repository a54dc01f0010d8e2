package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"vimbridge/internal/adapters/hook"
	"vimbridge/internal/adapters/sqlite"
	"vimbridge/internal/application/commands"
	"vimbridge/internal/config"
	"vimbridge/internal/ports"
)

var (
	prefsPath   string
	projectRoot string
	regenCmd    string

	store  ports.PreferenceStore
	logger = log.New(os.Stderr, "vimbridge: ", 0)
)

var rootCmd = &cobra.Command{
	Use:   "vimbridge-cli",
	Short: "Open files in a running Vim server",
	Long: `vimbridge-cli opens files in an already-running Vim server through Vim's
remote-command protocol (vim --servername Unity --remote-silent).

It stores the Vim executable path and the list of code file extensions,
and can regenerate project metadata when code files are added or moved.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		s, err := sqlite.Open(prefsPath)
		if err != nil {
			return err
		}
		store = s
		projectRoot = config.AbsProjectRoot(projectRoot)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNotOpened) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", config.PrefsPath(), "path to the preferences database")
	rootCmd.PersistentFlags().StringVarP(&projectRoot, "project", "p", config.ProjectRoot(), "project root added to Vim's search path")
	rootCmd.PersistentFlags().StringVar(&regenCmd, "regen", config.RegenCommand(), "shell command that regenerates project metadata")
}

// GetStore returns the opened preference store
func GetStore() ports.PreferenceStore {
	return store
}

func newSyncCommand() *commands.SyncCommand {
	return commands.NewSyncCommand(hook.NewRegenerator(regenCmd, hook.WithDir(projectRoot), hook.WithLogger(logger)))
}

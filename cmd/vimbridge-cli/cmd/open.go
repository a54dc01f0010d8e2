package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vimbridge/internal/adapters/editor"
	"vimbridge/internal/application"
	"vimbridge/internal/application/commands"
	"vimbridge/internal/domain"
)

var printCommand bool

var openCmd = &cobra.Command{
	Use:   "open <file> [line] [column]",
	Short: "Open a file in the Vim server",
	Long: `Open a file in the running Vim server and move the cursor.

Files whose extension is not in the configured list are ignored and the
command exits non-zero without a message.

Examples:
  vimbridge-cli open Assets/Scripts/Player.cs 42 5
  vimbridge-cli open README.md`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := domain.OpenRequest{FilePath: args[0]}
		if len(args) > 1 {
			line, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid line %q: %w", args[1], err)
			}
			req.Line = line
		}
		if len(args) > 2 {
			column, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid column %q: %w", args[2], err)
			}
			req.Column = column
		}

		cfg, err := application.LoadConfig(GetStore())
		if err != nil {
			return err
		}

		result := commands.NewOpenFileCommand(editor.NewLauncher(), projectRoot).OpenFile(cfg, req)
		if result.Err != nil {
			logger.Print(result.Diagnostic)
		}
		if printCommand && result.Command != nil {
			fmt.Println(result.Command.String())
		}
		if !result.Success {
			return errNotOpened
		}
		return nil
	},
}

func init() {
	openCmd.Flags().BoolVar(&printCommand, "print", false, "print the remote command that was run")
	rootCmd.AddCommand(openCmd)
}

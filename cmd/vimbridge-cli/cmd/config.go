package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vimbridge/internal/application"
	"vimbridge/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the editor preferences",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := application.LoadConfig(GetStore())
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", application.KeyExecutablePath, cfg.ExecutablePath)
		fmt.Printf("%s: %s\n", application.KeyExtensions, domain.FormatExtensions(cfg.AllowedExtensions))
		return nil
	},
}

var (
	setPath string
	setExts string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the preferences",
	Long: `Change the Vim executable path and/or the code filename extensions.

Examples:
  vimbridge-cli config set --path /opt/homebrew/bin/mvim
  vimbridge-cli config set --extensions ".cs,.shader,.md"
  vimbridge-cli config set --extensions ""      # open every file type`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("path") && !cmd.Flags().Changed("extensions") {
			return fmt.Errorf("nothing to set: use --path and/or --extensions")
		}

		if cmd.Flags().Changed("path") {
			if err := application.ValidateExecutablePath(setPath); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("extensions") {
			if err := application.ValidateExtensions(setExts); err != nil {
				return err
			}
		}

		if cmd.Flags().Changed("path") {
			changed, err := application.SaveExecutablePath(GetStore(), setPath)
			if err != nil {
				return err
			}
			if changed {
				fmt.Printf("Updated %s\n", application.KeyExecutablePath)
			}
			if !domain.IsExecutable(setPath) {
				logger.Printf("warning: %s is not an executable file", setPath)
			}
		}

		if cmd.Flags().Changed("extensions") {
			changed, err := application.SaveExtensions(GetStore(), setExts)
			if err != nil {
				return err
			}
			if changed {
				fmt.Printf("Updated %s\n", application.KeyExtensions)
			}
		}
		return nil
	},
}

func init() {
	configSetCmd.Flags().StringVar(&setPath, "path", "", "path to the Vim executable")
	configSetCmd.Flags().StringVar(&setExts, "extensions", "", "comma-separated code filename extensions")

	configCmd.AddCommand(configGetCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

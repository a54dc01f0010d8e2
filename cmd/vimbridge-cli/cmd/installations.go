package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vimbridge/internal/application"
)

var installationsCmd = &cobra.Command{
	Use:   "installations [path]",
	Short: "List the configured Vim installation, or check a path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			inst, ok := application.TryGetInstallationForPath(args[0])
			if !ok {
				return fmt.Errorf("no installation at %s", args[0])
			}
			fmt.Printf("%s  %s\n", inst.Name, inst.Path)
			return nil
		}

		cfg, err := application.LoadConfig(GetStore())
		if err != nil {
			return err
		}
		for _, inst := range application.Installations(cfg) {
			fmt.Printf("%s  %s\n", inst.Name, inst.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installationsCmd)
}

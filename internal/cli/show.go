// internal/cli/show.go
package palbench

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/palbench/internal/appconfig"
)

// newShowCmd groups the 'show' commands.
func newShowCmd(a *app) *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show configuration details",
	}

	showCmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Show config settings",
		Long:  `Show config settings, confirming that the config file is loaded and overridden by env and flags accordingly.`,
		Run: func(cmd *cobra.Command, args []string) {
			appconfig.ShowConfig(cmd.OutOrStdout(), a.v.ConfigFileUsed(), a.cfg, a.colored())
		},
	})
	return showCmd
}

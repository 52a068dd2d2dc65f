package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [tool]",
	Short: "Uninstall all oreutils tools (not implemented)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newManager(cmd).Uninstall(cmd.Context(), selectorArg(args))
	},
}

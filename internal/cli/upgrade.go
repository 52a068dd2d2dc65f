package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade [tool]",
	Short: "Upgrade any installed tools. Use `oreutils install` to install missing ones.",
	Long:  "Compare each installed tool's `--version` with the latest stable release on crates.io and reinstall it with `cargo install -f` when it is behind.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newManager(cmd).Upgrade(cmd.Context(), selectorArg(args))
	},
}

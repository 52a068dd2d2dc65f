package cli

import (
	"github.com/spf13/cobra"

	"oreutils/internal/manager"
	"oreutils/internal/tools"
)

func init() {
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install [tool]",
	Short: manager.Summary(tools.Default),
	Long:  "Run `cargo install` for every tool (or the one named by its name, crate or command) that is not on PATH yet.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newManager(cmd).Install(cmd.Context(), selectorArg(args))
	},
}

package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lsCmd, lsRemoteCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the installed version of each tool",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newManager(cmd).List(cmd.Context())
	},
}

var lsRemoteCmd = &cobra.Command{
	Use:   "ls-remote",
	Short: "List the latest stable crates.io version of each tool",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newManager(cmd).ListRemote(cmd.Context())
	},
}

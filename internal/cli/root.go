package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"oreutils/internal/config"
	"oreutils/internal/crates"
	"oreutils/internal/manager"
	"oreutils/internal/system"
	"oreutils/internal/tools"
)

var settings = config.New()

var rootCmd = &cobra.Command{
	Use:   "oreutils",
	Short: "oreutils – installation manager for CLI utilities reimagined in Rust",
	Long:  "oreutils installs and upgrades ripgrep, exa, bat and fd through `cargo install`, checking crates.io for new releases.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.BindFlags(settings, cmd.Flags()); err != nil {
			return err
		}
		system.SetVerbose(config.Load(settings).Verbose)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String(config.KeyRegistry, crates.DefaultHost, "registry host (env OREUTILS_REGISTRY)")
	pf.String(config.KeyCargo, "cargo", "build tool used to install crates (env OREUTILS_CARGO)")
	pf.Duration(config.KeyTimeout, crates.DefaultTimeout, "registry request timeout (env OREUTILS_TIMEOUT)")
	pf.BoolP(config.KeyVerbose, "v", false, "log diagnostics to stderr")
}

// newManager wires the dispatcher from the resolved settings.
func newManager(cmd *cobra.Command) *manager.Manager {
	s := config.Load(settings)
	cargo := tools.Cargo{
		Bin:       s.Cargo,
		Rustflags: s.Rustflags,
		Stdout:    cmd.OutOrStdout(),
		Stderr:    cmd.ErrOrStderr(),
	}
	registry := crates.New(crates.WithHost(s.Registry), crates.WithTimeout(s.Timeout))
	return &manager.Manager{
		Roster: tools.Default,
		Resolver: &tools.Resolver{
			Runner:   tools.ExecRunner{},
			Registry: registry,
			Builder:  cargo,
		},
		Builder: cargo,
		Finder:  tools.PathFinder{},
		Out:     cmd.OutOrStdout(),
	}
}

// selectorArg returns the optional tool selector.
func selectorArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// Execute runs the CLI.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

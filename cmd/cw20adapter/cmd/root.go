package cmd

import (
	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/client/cli"
)

const flagHome = "home"

// NewRootCmd creates the offline adapter tool. It derives addresses and
// denoms and inspects node configuration without talking to a node.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cw20adapter",
		Short:         "Offline tools for the CW-20 adapter",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagHome, defaultNodeHome(), "node home directory holding config/app.toml")

	// the query group only holds offline commands
	rootCmd.AddCommand(cli.GetQueryCmd().Commands()...)
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

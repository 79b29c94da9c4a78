package cli

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

const flagAddressLength = "address-length"

// GetQueryCmd returns the cli query commands for this module. They work
// offline: the adapter address and denoms are derived, not stored.
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdAdapterAddress(),
		CmdDenom(),
		CmdParseDenom(),
		CmdPayload(),
	)

	return cmd
}

// AdapterAddress returns the bech32 address of the adapter using the
// configured account prefix.
func AdapterAddress() string {
	return authtypes.NewModuleAddress(types.ModuleName).String()
}

func CmdAdapterAddress() *cobra.Command {
	return &cobra.Command{
		Use:   "adapter-address",
		Short: "print the address of the adapter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), AdapterAddress())
			return nil
		},
	}
}

func CmdDenom() *cobra.Command {
	return &cobra.Command{
		Use:   "denom [cw20_contract]",
		Short: "print the factory denom backing a CW-20 contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), types.NewAdapterDenom(AdapterAddress(), args[0]).String())
			return nil
		},
	}
}

func CmdParseDenom() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse-denom [denom]",
		Short: "print the adapter and CW-20 contract of a factory denom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := cmd.Flags().GetInt(flagAddressLength)
			if err != nil {
				return err
			}

			denom, err := types.DenomCodec{AddressLength: length}.Parse(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "adapter: %s\ncw20: %s\n", denom.Adapter, denom.Cw20)
			if denom.Adapter != AdapterAddress() {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: denom was not created by this chain's adapter")
			}
			return nil
		},
	}

	cmd.Flags().Int(flagAddressLength, types.DefaultAddressLength, "expected length of both address segments, 0 to accept any")

	return cmd
}

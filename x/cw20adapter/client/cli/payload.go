package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

const flagRecipient = "recipient"

// CmdPayload prints adapter execute messages, for contracts and scripts that
// call the adapter.
func CmdPayload() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payload",
		Short: "print the JSON of an adapter execute message",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "register [cw20_contract]",
			Short: "register_cw20_contract message",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printExecuteMsg(cmd, types.ExecuteMsg{
					RegisterCw20Contract: &types.RegisterCw20Contract{Addr: args[0]},
				})
			},
		},
		cmdRedeemAndTransferPayload(),
		&cobra.Command{
			Use:   "redeem-and-send [recipient] [submsg_json]",
			Short: "redeem_and_send message",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printExecuteMsg(cmd, types.ExecuteMsg{
					RedeemAndSend: &types.RedeemAndSend{Recipient: args[0], Submsg: []byte(args[1])},
				})
			},
		},
		&cobra.Command{
			Use:   "update-metadata [cw20_contract]",
			Short: "update_metadata message",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printExecuteMsg(cmd, types.ExecuteMsg{
					UpdateMetadata: &types.UpdateMetadata{Addr: args[0]},
				})
			},
		},
	)

	return cmd
}

func cmdRedeemAndTransferPayload() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem-and-transfer",
		Short: "redeem_and_transfer message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			redeem := &types.RedeemAndTransfer{}
			if recipient, _ := cmd.Flags().GetString(flagRecipient); recipient != "" {
				redeem.Recipient = &recipient
			}
			return printExecuteMsg(cmd, types.ExecuteMsg{RedeemAndTransfer: redeem})
		},
	}

	cmd.Flags().String(flagRecipient, "", "receiver of the CW-20 tokens, defaults to the caller")

	return cmd
}

func printExecuteMsg(cmd *cobra.Command, msg types.ExecuteMsg) error {
	if err := msg.ValidateBasic(); err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(types.MustMarshalExecuteMsg(msg)))
	return nil
}

package cli

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// GetTxCmd returns the transaction commands for this module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		NewDepositCmd(),
		NewRegisterCmd(),
		NewRedeemAndTransferCmd(),
		NewRedeemAndSendCmd(),
		NewUpdateMetadataCmd(),
	)

	return cmd
}

// NewDepositCmd sends CW-20 tokens to the adapter, which mints the matching
// factory tokens to the sender.
func NewDepositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [cw20_contract] [amount]",
		Args:  cobra.ExactArgs(2),
		Short: "Convert CW-20 tokens into factory tokens",
		Long: strings.TrimSpace(
			`Send [amount] tokens of [cw20_contract] to the adapter. The adapter mints the same
amount of factory/{adapter}/{cw20_contract} to the sender, registering the contract first
if needed.`,
		),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := sdkmath.NewIntFromString(args[1])
			if !ok || !amount.IsPositive() {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			msg, err := NewDepositMsg(clientCtx.GetFromAddress().String(), args[0], amount)
			if err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewDepositMsg builds the CW-20 send from sender to the adapter.
func NewDepositMsg(sender, cw20Contract string, amount sdkmath.Int) (*wasmtypes.MsgExecuteContract, error) {
	send, err := types.NewCw20SendMsg(AdapterAddress(), amount, []byte{})
	if err != nil {
		return nil, err
	}

	msg := &wasmtypes.MsgExecuteContract{
		Sender:   sender,
		Contract: cw20Contract,
		Msg:      wasmtypes.RawContractMessage(send),
		Funds:    sdk.Coins{},
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return msg, nil
}

// NewRegisterCmd registers a CW-20 contract, paying the denom creation fee.
func NewRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register [cw20_contract] [fee]",
		Args:  cobra.RangeArgs(1, 2),
		Short: "Register a CW-20 contract with the adapter",
		Long: strings.TrimSpace(
			`Register [cw20_contract], creating factory/{adapter}/{cw20_contract}. [fee] must
match the token factory denom creation fee exactly and may be omitted when it is zero.`,
		),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			fee := sdk.Coins{}
			if len(args) == 2 {
				fee, err = sdk.ParseCoinsNormalized(args[1])
				if err != nil {
					return err
				}
			}

			msg, err := NewRegisterMsg(clientCtx.GetFromAddress().String(), args[0], fee)
			if err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewRedeemAndTransferCmd burns factory tokens and transfers the CW-20 tokens.
func NewRedeemAndTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem-and-transfer [amount]",
		Args:  cobra.ExactArgs(1),
		Short: "Convert factory tokens back into CW-20 tokens",
		Long: strings.TrimSpace(
			`Burn [amount] of a factory/{adapter}/{cw20_contract} denom and transfer the same
amount of CW-20 tokens to --recipient, or to the sender when it is not set.`,
		),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := sdk.ParseCoinNormalized(args[0])
			if err != nil {
				return err
			}
			recipient, err := cmd.Flags().GetString(flagRecipient)
			if err != nil {
				return err
			}

			msg, err := NewRedeemAndTransferMsg(clientCtx.GetFromAddress().String(), amount, recipient)
			if err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagRecipient, "", "receiver of the CW-20 tokens, defaults to the sender")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewRedeemAndSendCmd burns factory tokens and sends the CW-20 tokens to a
// contract together with a message.
func NewRedeemAndSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem-and-send [amount] [recipient_contract] [submsg_json]",
		Args:  cobra.ExactArgs(3),
		Short: "Convert factory tokens back into CW-20 tokens sent to a contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := sdk.ParseCoinNormalized(args[0])
			if err != nil {
				return err
			}

			msg, err := NewRedeemAndSendMsg(clientCtx.GetFromAddress().String(), amount, args[1], []byte(args[2]))
			if err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewUpdateMetadataCmd copies the CW-20 token info onto its factory denom.
func NewUpdateMetadataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-metadata [cw20_contract]",
		Args:  cobra.ExactArgs(1),
		Short: "Set the bank metadata of a factory denom from its CW-20 token info",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg, err := NewUpdateMetadataMsg(clientCtx.GetFromAddress().String(), args[0])
			if err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

func NewRegisterMsg(sender, cw20Contract string, fee sdk.Coins) (*types.MsgExecute, error) {
	return newMsgExecute(sender, types.ExecuteMsg{
		RegisterCw20Contract: &types.RegisterCw20Contract{Addr: cw20Contract},
	}, fee)
}

// NewRedeemAndTransferMsg builds the redemption of amount. An empty
// recipient leaves it to the adapter to pay out to the sender.
func NewRedeemAndTransferMsg(sender string, amount sdk.Coin, recipient string) (*types.MsgExecute, error) {
	redeem := &types.RedeemAndTransfer{}
	if recipient != "" {
		redeem.Recipient = &recipient
	}
	return newMsgExecute(sender, types.ExecuteMsg{RedeemAndTransfer: redeem}, sdk.NewCoins(amount))
}

func NewRedeemAndSendMsg(sender string, amount sdk.Coin, recipient string, submsg []byte) (*types.MsgExecute, error) {
	return newMsgExecute(sender, types.ExecuteMsg{
		RedeemAndSend: &types.RedeemAndSend{Recipient: recipient, Submsg: submsg},
	}, sdk.NewCoins(amount))
}

func NewUpdateMetadataMsg(sender, cw20Contract string) (*types.MsgExecute, error) {
	return newMsgExecute(sender, types.ExecuteMsg{
		UpdateMetadata: &types.UpdateMetadata{Addr: cw20Contract},
	}, sdk.Coins{})
}

func newMsgExecute(sender string, msg types.ExecuteMsg, funds sdk.Coins) (*types.MsgExecute, error) {
	txMsg := types.NewMsgExecute(sender, msg, funds)
	if err := txMsg.ValidateBasic(); err != nil {
		return nil, err
	}
	return txMsg, nil
}

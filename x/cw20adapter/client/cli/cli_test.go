package cli_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"strings"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	appparams "github.com/babylonlabs-io/cw20-adapter/app/params"
	"github.com/babylonlabs-io/cw20-adapter/testutil/datagen"
	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/client/cli"
	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestAdapterAddress(t *testing.T) {
	appparams.SetAddressPrefixes()

	out, err := run(t, cli.CmdAdapterAddress())
	require.NoError(t, err)
	require.Equal(t, appparams.AccCw20Adapter.String(), out)
	require.True(t, strings.HasPrefix(out, appparams.Bech32PrefixAccAddr+"1"))
}

func TestDenomAndParseDenom(t *testing.T) {
	appparams.SetAddressPrefixes()
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	cw20 := datagen.GenRandomBech32Address(r)

	denom, err := run(t, cli.CmdDenom(), cw20)
	require.NoError(t, err)
	require.Equal(t, "factory/"+cli.AdapterAddress()+"/"+cw20, denom)

	out, err := run(t, cli.CmdParseDenom(), denom)
	require.NoError(t, err)
	require.Equal(t, "adapter: "+cli.AdapterAddress()+"\ncw20: "+cw20, out)

	_, err = run(t, cli.CmdParseDenom(), denom+"/extra")
	require.ErrorIs(t, err, types.ErrNotCw20Denom)

	_, err = run(t, cli.CmdParseDenom(), "factory/a/b")
	require.ErrorIs(t, err, types.ErrNotCw20Denom)

	out, err = run(t, cli.CmdParseDenom(), "--address-length=0", "factory/a/b")
	require.NoError(t, err)
	require.Equal(t, "adapter: a\ncw20: b", out)
}

func TestPayload(t *testing.T) {
	appparams.SetAddressPrefixes()
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	addr := datagen.GenRandomBech32Address(r)

	tcs := []struct {
		name  string
		args  []string
		check func(t *testing.T, msg types.ExecuteMsg)
	}{
		{
			name: "register",
			args: []string{"register", addr},
			check: func(t *testing.T, msg types.ExecuteMsg) {
				require.Equal(t, addr, msg.RegisterCw20Contract.Addr)
			},
		},
		{
			name: "redeem and transfer to caller",
			args: []string{"redeem-and-transfer"},
			check: func(t *testing.T, msg types.ExecuteMsg) {
				require.NotNil(t, msg.RedeemAndTransfer)
				require.Nil(t, msg.RedeemAndTransfer.Recipient)
			},
		},
		{
			name: "redeem and transfer to recipient",
			args: []string{"redeem-and-transfer", "--recipient", addr},
			check: func(t *testing.T, msg types.ExecuteMsg) {
				require.Equal(t, addr, *msg.RedeemAndTransfer.Recipient)
			},
		},
		{
			name: "redeem and send",
			args: []string{"redeem-and-send", addr, `{"stake":{}}`},
			check: func(t *testing.T, msg types.ExecuteMsg) {
				require.Equal(t, addr, msg.RedeemAndSend.Recipient)
				require.Equal(t, []byte(`{"stake":{}}`), msg.RedeemAndSend.Submsg)
			},
		},
		{
			name: "update metadata",
			args: []string{"update-metadata", addr},
			check: func(t *testing.T, msg types.ExecuteMsg) {
				require.Equal(t, addr, msg.UpdateMetadata.Addr)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, cli.CmdPayload(), tc.args...)
			require.NoError(t, err)

			var msg types.ExecuteMsg
			require.NoError(t, json.Unmarshal([]byte(out), &msg))
			require.NoError(t, msg.ValidateBasic())
			tc.check(t, msg)
		})
	}
}

func TestNewDepositMsg(t *testing.T) {
	appparams.SetAddressPrefixes()
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	sender := datagen.GenRandomBech32Address(r)
	cw20 := datagen.GenRandomBech32Address(r)

	msg, err := cli.NewDepositMsg(sender, cw20, sdkmath.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, sender, msg.Sender)
	require.Equal(t, cw20, msg.Contract)

	var cw20Msg types.Cw20ExecuteMsg
	require.NoError(t, json.Unmarshal(msg.Msg, &cw20Msg))
	require.NotNil(t, cw20Msg.Send)
	require.Equal(t, cli.AdapterAddress(), cw20Msg.Send.Contract)
	require.Equal(t, sdkmath.NewInt(100), cw20Msg.Send.Amount)
	require.Empty(t, cw20Msg.Send.Msg)

	// the message must be packable into a transaction
	encCfg := appparams.DefaultEncodingConfig()
	txBuilder := encCfg.TxConfig.NewTxBuilder()
	require.NoError(t, txBuilder.SetMsgs(msg))
	bz, err := encCfg.TxConfig.TxEncoder()(txBuilder.GetTx())
	require.NoError(t, err)
	require.NotEmpty(t, bz)

	_, err = cli.NewDepositMsg("not-an-address", cw20, sdkmath.NewInt(100))
	require.Error(t, err)
}

func TestTxCmds(t *testing.T) {
	var names []string
	for _, cmd := range cli.GetTxCmd().Commands() {
		names = append(names, cmd.Name())
	}
	require.ElementsMatch(t, []string{"deposit", "register", "redeem-and-transfer", "redeem-and-send", "update-metadata"}, names)
}

func TestNewMsgExecute(t *testing.T) {
	appparams.SetAddressPrefixes()
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	senderAddr := datagen.GenRandomAccAddress(r)
	sender := senderAddr.String()
	cw20 := datagen.GenRandomBech32Address(r)
	recipient := datagen.GenRandomBech32Address(r)
	tokens := sdk.NewInt64Coin(types.NewAdapterDenom(cli.AdapterAddress(), cw20).String(), 40)
	encCfg := appparams.DefaultEncodingConfig()

	register, err := cli.NewRegisterMsg(sender, cw20, sdk.NewCoins(sdk.NewInt64Coin("ubbn", 10)))
	require.NoError(t, err)
	transfer, err := cli.NewRedeemAndTransferMsg(sender, tokens, "")
	require.NoError(t, err)
	transferTo, err := cli.NewRedeemAndTransferMsg(sender, tokens, recipient)
	require.NoError(t, err)
	send, err := cli.NewRedeemAndSendMsg(sender, tokens, recipient, []byte(`{"stake":{}}`))
	require.NoError(t, err)
	metadata, err := cli.NewUpdateMetadataMsg(sender, cw20)
	require.NoError(t, err)

	parse := func(msg *types.MsgExecute) *types.ExecuteMsg {
		parsed, err := msg.ParseExecuteMsg()
		require.NoError(t, err)
		return parsed
	}
	require.Equal(t, cw20, parse(register).RegisterCw20Contract.Addr)
	require.Nil(t, parse(transfer).RedeemAndTransfer.Recipient)
	require.Equal(t, recipient, *parse(transferTo).RedeemAndTransfer.Recipient)
	require.Equal(t, recipient, parse(send).RedeemAndSend.Recipient)
	require.Equal(t, []byte(`{"stake":{}}`), parse(send).RedeemAndSend.Submsg)
	require.Equal(t, cw20, parse(metadata).UpdateMetadata.Addr)
	require.Equal(t, sdk.NewCoins(tokens), transfer.Funds)
	require.Empty(t, metadata.Funds)

	for _, msg := range []*types.MsgExecute{register, transfer, transferTo, send, metadata} {
		signers, _, err := encCfg.Codec.GetMsgV1Signers(msg)
		require.NoError(t, err)
		require.Equal(t, [][]byte{senderAddr.Bytes()}, signers)

		txBuilder := encCfg.TxConfig.NewTxBuilder()
		require.NoError(t, txBuilder.SetMsgs(msg))
		bz, err := encCfg.TxConfig.TxEncoder()(txBuilder.GetTx())
		require.NoError(t, err)

		decoded, err := encCfg.TxConfig.TxDecoder()(bz)
		require.NoError(t, err)
		require.Len(t, decoded.GetMsgs(), 1)
		require.Equal(t, msg.Msg, decoded.GetMsgs()[0].(*types.MsgExecute).Msg)
	}

	_, err = cli.NewRedeemAndTransferMsg("not-an-address", tokens, "")
	require.Error(t, err)

	_, err = cli.NewRedeemAndSendMsg(sender, tokens, "", nil)
	require.ErrorIs(t, err, types.ErrInvalidExecuteMsg)
}

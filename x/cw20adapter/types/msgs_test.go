package types_test

import (
	"bytes"
	"encoding/json"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

func TestExecuteMsgJSON(t *testing.T) {
	tcs := []struct {
		name   string
		raw    string
		action string
		expErr error
	}{
		{
			name:   "register",
			raw:    `{"register_cw20_contract":{"addr":"` + cw20Addr + `"}}`,
			action: types.ActionRegister,
		},
		{
			name:   "receive",
			raw:    `{"receive":{"sender":"` + adapterAddr + `","amount":"100","msg":""}}`,
			action: types.ActionReceive,
		},
		{
			name:   "redeem and transfer without recipient",
			raw:    `{"redeem_and_transfer":{}}`,
			action: types.ActionRedeem,
		},
		{
			name:   "redeem and send",
			raw:    `{"redeem_and_send":{"recipient":"` + adapterAddr + `","submsg":"e30="}}`,
			action: types.ActionRedeem,
		},
		{
			name:   "update metadata",
			raw:    `{"update_metadata":{"addr":"` + cw20Addr + `"}}`,
			action: types.ActionUpdateMetadata,
		},
		{
			name:   "no variant",
			raw:    `{}`,
			expErr: types.ErrInvalidExecuteMsg,
		},
		{
			name:   "two variants",
			raw:    `{"redeem_and_transfer":{},"update_metadata":{"addr":"` + cw20Addr + `"}}`,
			expErr: types.ErrInvalidExecuteMsg,
		},
		{
			name:   "zero receive amount",
			raw:    `{"receive":{"sender":"` + adapterAddr + `","amount":"0","msg":""}}`,
			expErr: types.ErrInvalidExecuteMsg,
		},
		{
			name:   "redeem and send without recipient",
			raw:    `{"redeem_and_send":{"recipient":"","submsg":"e30="}}`,
			expErr: types.ErrInvalidExecuteMsg,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var msg types.ExecuteMsg
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &msg))

			err := msg.ValidateBasic()
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.action, msg.Action())
		})
	}
}

func TestReceiveMsgDecodesUint128(t *testing.T) {
	var msg types.ExecuteMsg
	raw := `{"receive":{"sender":"` + adapterAddr + `","amount":"340282366920938463463374607431768211455","msg":"eyJhIjoxfQ=="}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))

	expected, ok := sdkmath.NewIntFromString("340282366920938463463374607431768211455")
	require.True(t, ok)
	require.True(t, expected.Equal(msg.Receive.Amount))
	require.Equal(t, []byte(`{"a":1}`), msg.Receive.Msg)
}

func TestCw20Messages(t *testing.T) {
	bz, err := types.NewCw20TransferMsg(adapterAddr, sdkmath.NewInt(80))
	require.NoError(t, err)
	require.JSONEq(t, `{"transfer":{"recipient":"`+adapterAddr+`","amount":"80"}}`, string(bz))

	bz, err = types.NewCw20SendMsg(adapterAddr, sdkmath.NewInt(80), []byte(`{}`))
	require.NoError(t, err)
	require.JSONEq(t, `{"send":{"contract":"`+adapterAddr+`","amount":"80","msg":"e30="}}`, string(bz))

	require.JSONEq(t, `{"token_info":{}}`, string(types.TokenInfoQuery()))
}

func TestTokenInfoResponseValidate(t *testing.T) {
	var info types.TokenInfoResponse
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Token","symbol":"TKN","decimals":6,"total_supply":"1000"}`), &info))
	require.NoError(t, info.Validate())
	require.Equal(t, uint8(6), info.Decimals)

	var balance types.TokenInfoResponse
	require.NoError(t, json.Unmarshal([]byte(`{"balance":"1000"}`), &balance))
	require.Error(t, balance.Validate())
}

func TestQueryMsgValidateBasic(t *testing.T) {
	var msg types.QueryMsg
	require.NoError(t, json.Unmarshal([]byte(`{"registered_contracts":{"limit":10}}`), &msg))
	require.NoError(t, msg.ValidateBasic())
	require.Equal(t, uint32(10), msg.RegisteredContracts.Limit)

	require.NoError(t, json.Unmarshal([]byte(`{"new_denom_fee":{}}`), &msg))
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidQueryMsg)

	require.ErrorIs(t, types.QueryMsg{}.ValidateBasic(), types.ErrInvalidQueryMsg)
}

func TestMsgExecuteValidateBasic(t *testing.T) {
	sender := sdk.AccAddress(bytes.Repeat([]byte{0x01}, 20)).String()
	factoryCoins := sdk.NewCoins(sdk.NewInt64Coin(types.NewAdapterDenom(adapterAddr, cw20Addr).String(), 10))

	tcs := []struct {
		name   string
		msg    *types.MsgExecute
		expErr error
	}{
		{
			name: "redeem and transfer",
			msg:  types.NewMsgExecute(sender, types.ExecuteMsg{RedeemAndTransfer: &types.RedeemAndTransfer{}}, factoryCoins),
		},
		{
			name: "register without fee",
			msg:  types.NewMsgExecute(sender, types.ExecuteMsg{RegisterCw20Contract: &types.RegisterCw20Contract{Addr: cw20Addr}}, nil),
		},
		{
			name:   "invalid sender",
			msg:    types.NewMsgExecute("notanaddress", types.ExecuteMsg{RedeemAndTransfer: &types.RedeemAndTransfer{}}, factoryCoins),
			expErr: sdkerrors.ErrInvalidAddress,
		},
		{
			name: "unsorted funds",
			msg: types.NewMsgExecute(sender, types.ExecuteMsg{RedeemAndTransfer: &types.RedeemAndTransfer{}},
				sdk.Coins{sdk.NewInt64Coin("ubbn", 1), sdk.NewInt64Coin("uatom", 1)}),
			expErr: sdkerrors.ErrInvalidCoins,
		},
		{
			name:   "malformed json",
			msg:    &types.MsgExecute{Sender: sender, Msg: []byte(`{"redeem_and_transfer":`)},
			expErr: sdkerrors.ErrJSONUnmarshal,
		},
		{
			name:   "no variant",
			msg:    &types.MsgExecute{Sender: sender, Msg: []byte(`{}`)},
			expErr: types.ErrInvalidExecuteMsg,
		},
		{
			name: "receive from an account",
			msg: types.NewMsgExecute(sender, types.ExecuteMsg{
				Receive: &types.Cw20ReceiveMsg{Sender: sender, Amount: sdkmath.NewInt(100)},
			}, nil),
			expErr: types.ErrInvalidExecuteMsg,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgExecuteEncoding(t *testing.T) {
	sender := sdk.AccAddress(bytes.Repeat([]byte{0x02}, 20)).String()
	funds := sdk.NewCoins(sdk.NewInt64Coin("ubbn", 7), sdk.NewInt64Coin(types.NewAdapterDenom(adapterAddr, cw20Addr).String(), 3))
	msg := types.NewMsgExecute(sender, types.ExecuteMsg{UpdateMetadata: &types.UpdateMetadata{Addr: cw20Addr}}, funds)

	require.Equal(t, "/babylon.cw20adapter.v1.MsgExecute", sdk.MsgTypeURL(msg))

	bz, err := msg.Marshal()
	require.NoError(t, err)
	require.Equal(t, msg.Size(), len(bz))

	var decoded types.MsgExecute
	require.NoError(t, decoded.Unmarshal(bz))
	require.Equal(t, msg.Sender, decoded.Sender)
	require.Equal(t, msg.Msg, decoded.Msg)
	require.True(t, funds.Equal(decoded.Funds))

	parsed, err := decoded.ParseExecuteMsg()
	require.NoError(t, err)
	require.Equal(t, cw20Addr, parsed.UpdateMetadata.Addr)
}

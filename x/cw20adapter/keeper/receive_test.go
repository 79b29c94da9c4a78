package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	tokenfactorytypes "github.com/strangelove-ventures/tokenfactory/x/tokenfactory/types"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/cw20-adapter/testutil/datagen"
	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

func TestReceiveRegistered(t *testing.T) {
	e := newTestEnv(t)
	cw20, cw20Bech32 := e.registerCw20()
	sender := datagen.GenRandomBech32Address(e.r)
	amount := datagen.RandomPositiveMathInt(e.r, 1_000_000)

	res, err := e.k.HandleReceive(e.ctx, types.MessageInfo{Sender: cw20}, types.Cw20ReceiveMsg{
		Sender: sender,
		Amount: amount,
		Msg:    []byte(`{"ignored":true}`),
	})
	require.NoError(t, err)
	require.Equal(t, []sdk.Msg{
		&tokenfactorytypes.MsgMint{
			Sender:        e.k.AdapterAddress(),
			Amount:        sdk.NewCoin(e.k.Denom(cw20Bech32), amount),
			MintToAddress: sender,
		},
	}, res.Messages)
}

func TestReceiveRegistersOnFirstDeposit(t *testing.T) {
	e := newTestEnv(t)
	e.expectFee(fees(10))
	e.expectAdapterBalance(feeDenom, 10)

	cw20, cw20Bech32 := datagen.GenRandomCw20Address(e.r)
	sender := datagen.GenRandomBech32Address(e.r)

	res, err := e.k.HandleReceive(e.ctx, types.MessageInfo{Sender: cw20}, types.Cw20ReceiveMsg{
		Sender: sender,
		Amount: sdkmath.NewInt(100),
	})
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)
	require.Equal(t, &tokenfactorytypes.MsgCreateDenom{
		Sender:   e.k.AdapterAddress(),
		Subdenom: cw20Bech32,
	}, res.Messages[0])
	require.Equal(t, &tokenfactorytypes.MsgMint{
		Sender:        e.k.AdapterAddress(),
		Amount:        sdk.NewInt64Coin(e.k.Denom(cw20Bech32), 100),
		MintToAddress: sender,
	}, res.Messages[1])
	e.requireRegistered(cw20Bech32, true)

	// the second deposit only mints
	res, err = e.k.HandleReceive(e.ctx, types.MessageInfo{Sender: cw20}, types.Cw20ReceiveMsg{
		Sender: sender,
		Amount: sdkmath.NewInt(5),
	})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	require.IsType(t, &tokenfactorytypes.MsgMint{}, res.Messages[0])
}

func TestReceiveAdapterCannotPayFee(t *testing.T) {
	e := newTestEnv(t)
	e.expectFee(fees(10))
	e.expectAdapterBalance(feeDenom, 9)

	cw20, cw20Bech32 := datagen.GenRandomCw20Address(e.r)
	_, err := e.k.HandleReceive(e.ctx, types.MessageInfo{Sender: cw20}, types.Cw20ReceiveMsg{
		Sender: datagen.GenRandomBech32Address(e.r),
		Amount: sdkmath.NewInt(100),
	})
	require.ErrorIs(t, err, types.ErrNotEnoughBalanceToPayDenomCreationFee)
	e.requireRegistered(cw20Bech32, false)
}

func TestReceiveInvalid(t *testing.T) {
	e := newTestEnv(t)
	cw20, _ := e.registerCw20()
	sender := datagen.GenRandomBech32Address(e.r)

	tcs := []struct {
		name   string
		funds  sdk.Coins
		msg    types.Cw20ReceiveMsg
		expErr error
	}{
		{
			name:   "funds attached",
			funds:  fees(1),
			msg:    types.Cw20ReceiveMsg{Sender: sender, Amount: sdkmath.NewInt(1)},
			expErr: types.ErrSuperfluousFundsProvided,
		},
		{
			name:   "zero amount",
			msg:    types.Cw20ReceiveMsg{Sender: sender, Amount: sdkmath.ZeroInt()},
			expErr: types.ErrInvalidExecuteMsg,
		},
		{
			name:   "nil amount",
			msg:    types.Cw20ReceiveMsg{Sender: sender},
			expErr: types.ErrInvalidExecuteMsg,
		},
		{
			name:   "invalid sender",
			msg:    types.Cw20ReceiveMsg{Sender: "cosmos1invalid", Amount: sdkmath.NewInt(1)},
			expErr: sdkerrors.ErrInvalidAddress,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.k.HandleReceive(e.ctx, types.MessageInfo{Sender: cw20, Funds: tc.funds}, tc.msg)
			require.ErrorIs(t, err, tc.expErr)
		})
	}
}

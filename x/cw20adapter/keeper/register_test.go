package keeper_test

import (
	"errors"
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/golang/mock/gomock"
	tokenfactorytypes "github.com/strangelove-ventures/tokenfactory/x/tokenfactory/types"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/cw20-adapter/testutil/datagen"
	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

func TestRegisterCw20Contract(t *testing.T) {
	e := newTestEnv(t)
	e.expectFee(fees(10))

	cw20, cw20Bech32 := datagen.GenRandomCw20Address(e.r)
	e.expectTokenInfo(cw20, defaultTokenInfo())
	caller := datagen.GenRandomAccAddress(e.r)

	res, err := e.k.HandleRegisterCw20Contract(e.ctx, types.MessageInfo{Sender: caller, Funds: fees(10)}, cw20Bech32)
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	require.Equal(t, &tokenfactorytypes.MsgCreateDenom{
		Sender:   e.k.AdapterAddress(),
		Subdenom: cw20Bech32,
	}, res.Messages[0])
	require.Contains(t, res.Attributes, sdk.NewAttribute(types.AttributeKeyDenom, e.k.Denom(cw20Bech32)))
	e.requireRegistered(cw20Bech32, true)

	// registering twice fails and leaves the registry untouched
	_, err = e.k.HandleRegisterCw20Contract(e.ctx, types.MessageInfo{Sender: caller, Funds: fees(10)}, cw20Bech32)
	require.ErrorIs(t, err, types.ErrContractAlreadyRegistered)

	contracts, err := e.k.GetRegisteredContracts(e.ctx, "", 0)
	require.NoError(t, err)
	require.Equal(t, []string{cw20Bech32}, contracts)
}

func TestRegisterCw20ContractNotCw20(t *testing.T) {
	e := newTestEnv(t)
	e.expectFee(fees(10))
	caller := datagen.GenRandomAccAddress(e.r)

	t.Run("query fails", func(t *testing.T) {
		cw20, cw20Bech32 := datagen.GenRandomCw20Address(e.r)
		e.mocks.WasmK.EXPECT().QuerySmart(gomock.Any(), cw20, gomock.Any()).Return(nil, errors.New("no such contract"))

		_, err := e.k.HandleRegisterCw20Contract(e.ctx, types.MessageInfo{Sender: caller, Funds: fees(10)}, cw20Bech32)
		require.ErrorIs(t, err, types.ErrNotCw20Address)
		e.requireRegistered(cw20Bech32, false)
	})

	t.Run("not token info", func(t *testing.T) {
		cw20, cw20Bech32 := datagen.GenRandomCw20Address(e.r)
		e.mocks.WasmK.EXPECT().QuerySmart(gomock.Any(), cw20, gomock.Any()).Return([]byte(`{"owner":"someone"}`), nil)

		_, err := e.k.HandleRegisterCw20Contract(e.ctx, types.MessageInfo{Sender: caller, Funds: fees(10)}, cw20Bech32)
		require.ErrorIs(t, err, types.ErrNotCw20Address)
		e.requireRegistered(cw20Bech32, false)
	})

	t.Run("invalid address", func(t *testing.T) {
		_, err := e.k.HandleRegisterCw20Contract(e.ctx, types.MessageInfo{Sender: caller, Funds: fees(10)}, "not-an-address")
		require.ErrorIs(t, err, types.ErrNotCw20Address)
		e.requireRegistered("not-an-address", false)
	})
}

func TestRegisterCw20ContractFunds(t *testing.T) {
	tcs := []struct {
		name   string
		fee    sdk.Coins
		funds  sdk.Coins
		expErr error
	}{
		{
			name:  "exact fee",
			fee:   fees(10),
			funds: fees(10),
		},
		{
			name:  "no fee and no funds",
			fee:   sdk.Coins{},
			funds: sdk.Coins{},
		},
		{
			name:   "no funds",
			fee:    fees(10),
			funds:  sdk.Coins{},
			expErr: types.ErrNotEnoughBalanceToPayDenomCreationFee,
		},
		{
			name:   "not enough funds",
			fee:    fees(10),
			funds:  fees(9),
			expErr: types.ErrNotEnoughBalanceToPayDenomCreationFee,
		},
		{
			name:   "wrong denom",
			fee:    fees(10),
			funds:  sdk.NewCoins(sdk.NewInt64Coin("uother", 10)),
			expErr: types.ErrNotEnoughBalanceToPayDenomCreationFee,
		},
		{
			name:   "too many funds",
			fee:    fees(10),
			funds:  fees(11),
			expErr: types.ErrSuperfluousFundsProvided,
		},
		{
			name:   "extra denom",
			fee:    fees(10),
			funds:  sdk.NewCoins(sdk.NewInt64Coin(feeDenom, 10), sdk.NewInt64Coin("uother", 1)),
			expErr: types.ErrSuperfluousFundsProvided,
		},
		{
			name:   "funds without fee",
			fee:    sdk.Coins{},
			funds:  fees(1),
			expErr: types.ErrSuperfluousFundsProvided,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEnv(t)
			e.expectFee(tc.fee)
			cw20, cw20Bech32 := datagen.GenRandomCw20Address(e.r)
			e.expectTokenInfo(cw20, defaultTokenInfo())

			res, err := e.k.HandleRegisterCw20Contract(
				e.ctx,
				types.MessageInfo{Sender: datagen.GenRandomAccAddress(e.r), Funds: tc.funds},
				cw20Bech32,
			)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				e.requireRegistered(cw20Bech32, false)
				return
			}
			require.NoError(t, err)
			require.Len(t, res.Messages, 1)
			e.requireRegistered(cw20Bech32, true)
		})
	}
}

func TestRegisterCw20ContractNonCanonicalAddress(t *testing.T) {
	e := newTestEnv(t)
	e.expectFee(fees(10))
	caller := datagen.GenRandomAccAddress(e.r)

	cw20, cw20Bech32 := datagen.GenRandomCw20Address(e.r)
	e.expectTokenInfo(cw20, defaultTokenInfo())
	_, err := e.k.HandleRegisterCw20Contract(e.ctx, types.MessageInfo{Sender: caller, Funds: fees(10)}, cw20Bech32)
	require.NoError(t, err)

	// the uppercase form decodes to the same contract but is not a second key
	upper := strings.ToUpper(cw20Bech32)
	_, err = e.k.HandleRegisterCw20Contract(e.ctx, types.MessageInfo{Sender: caller, Funds: fees(10)}, upper)
	require.ErrorIs(t, err, types.ErrNotCw20Address)
	e.requireRegistered(upper, false)

	// same for a contract that was never registered
	_, otherBech32 := datagen.GenRandomCw20Address(e.r)
	_, err = e.k.HandleRegisterCw20Contract(e.ctx, types.MessageInfo{Sender: caller, Funds: fees(10)}, strings.ToUpper(otherBech32))
	require.ErrorIs(t, err, types.ErrNotCw20Address)

	contracts, err := e.k.GetRegisteredContracts(e.ctx, "", 0)
	require.NoError(t, err)
	require.Equal(t, []string{cw20Bech32}, contracts)
}

func TestRegisterCw20ContractFailureKeepsRegistry(t *testing.T) {
	e := newTestEnv(t)
	e.expectFee(fees(10))
	caller := datagen.GenRandomAccAddress(e.r)

	first, firstBech32 := datagen.GenRandomCw20Address(e.r)
	e.expectTokenInfo(first, defaultTokenInfo())
	_, err := e.k.HandleRegisterCw20Contract(e.ctx, types.MessageInfo{Sender: caller, Funds: fees(10)}, firstBech32)
	require.NoError(t, err)

	second, secondBech32 := datagen.GenRandomCw20Address(e.r)
	e.expectTokenInfo(second, defaultTokenInfo())
	for _, funds := range []sdk.Coins{
		{},
		fees(9),
		fees(11),
		sdk.NewCoins(sdk.NewInt64Coin(feeDenom, 10), sdk.NewInt64Coin("uother", 1)),
	} {
		_, err := e.k.HandleRegisterCw20Contract(e.ctx, types.MessageInfo{Sender: caller, Funds: funds}, secondBech32)
		require.Error(t, err, "funds %s", funds)

		contracts, err := e.k.GetRegisteredContracts(e.ctx, "", 0)
		require.NoError(t, err)
		require.Equal(t, []string{firstBech32}, contracts)
	}
}

package keeper_test

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/golang/mock/gomock"
	tokenfactorytypes "github.com/strangelove-ventures/tokenfactory/x/tokenfactory/types"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/cw20-adapter/testutil/datagen"
	testkeeper "github.com/babylonlabs-io/cw20-adapter/testutil/keeper"
	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/keeper"
	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

const feeDenom = "ubbn"

type testEnv struct {
	t     *testing.T
	r     *rand.Rand
	k     *keeper.Keeper
	mocks *testkeeper.Cw20AdapterMocks
	ctx   sdk.Context
}

func newTestEnv(t *testing.T) *testEnv {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	k, mocks, ctx := testkeeper.Cw20AdapterKeeperWithMocks(t, nil)
	return &testEnv{t: t, r: r, k: k, mocks: mocks, ctx: ctx}
}

func defaultTokenInfo() types.TokenInfoResponse {
	return types.TokenInfoResponse{
		Name:        "Test Token",
		Symbol:      "TTK",
		Decimals:    6,
		TotalSupply: sdkmath.NewInt(1_000_000),
	}
}

// expectFee makes the token factory report fee as the denom creation fee.
func (e *testEnv) expectFee(fee sdk.Coins) {
	e.mocks.TokenFactoryK.EXPECT().GetParams(gomock.Any()).
		Return(tokenfactorytypes.Params{DenomCreationFee: fee}).AnyTimes()
}

// expectTokenInfo makes cw20 answer the token_info query with info.
func (e *testEnv) expectTokenInfo(cw20 sdk.AccAddress, info types.TokenInfoResponse) {
	bz, err := json.Marshal(info)
	require.NoError(e.t, err)
	e.mocks.WasmK.EXPECT().QuerySmart(gomock.Any(), cw20, types.TokenInfoQuery()).Return(bz, nil).AnyTimes()
}

// expectAdapterBalance sets the balance of the adapter in denom.
func (e *testEnv) expectAdapterBalance(denom string, amount int64) {
	e.mocks.BankK.EXPECT().GetBalance(gomock.Any(), e.k.AdapterAccAddress(), denom).
		Return(sdk.NewInt64Coin(denom, amount)).AnyTimes()
}

// registerCw20 puts a random CW-20 contract in the registry.
func (e *testEnv) registerCw20() (sdk.AccAddress, string) {
	addr, bech32Addr := datagen.GenRandomCw20Address(e.r)
	require.NoError(e.t, e.k.RegisterContract(e.ctx, bech32Addr))
	return addr, bech32Addr
}

func (e *testEnv) requireRegistered(addr string, expected bool) {
	registered, err := e.k.IsContractRegistered(e.ctx, addr)
	require.NoError(e.t, err)
	require.Equal(e.t, expected, registered)
}

func fees(amount int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewInt64Coin(feeDenom, amount))
}

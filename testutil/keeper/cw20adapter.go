package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/core/header"
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authcodec "github.com/cosmos/cosmos-sdk/x/auth/codec"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	appparams "github.com/babylonlabs-io/cw20-adapter/app/params"
	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/keeper"
	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// Cw20AdapterMocks bundles the mocked dependencies of the adapter keeper.
type Cw20AdapterMocks struct {
	Ctrl          *gomock.Controller
	BankK         *types.MockBankKeeper
	TokenFactoryK *types.MockTokenFactoryKeeper
	WasmK         *types.MockWasmKeeper
	Router        *types.MockMessageRouter
}

func Cw20AdapterKeeperWithStore(
	t testing.TB,
	db dbm.DB,
	stateStore store.CommitMultiStore,
	storeKey *storetypes.KVStoreKey,
	bankK types.BankKeeper,
	tokenFactoryK types.TokenFactoryKeeper,
	wasmK types.WasmKeeper,
	router types.MessageRouter,
	config types.Config,
) (*keeper.Keeper, sdk.Context) {
	if storeKey == nil {
		storeKey = storetypes.NewKVStoreKey(types.StoreKey)
	}

	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		authcodec.NewBech32Codec(appparams.Bech32PrefixAccAddr),
		bankK,
		tokenFactoryK,
		wasmK,
		router,
		config,
	)

	ctx := sdk.NewContext(
		stateStore,
		cmtproto.Header{
			Time: time.Now().UTC(),
		},
		false,
		log.NewNopLogger(),
	)
	ctx = ctx.WithHeaderInfo(header.Info{})

	return &k, ctx
}

// Cw20AdapterKeeperWithMocks returns an instantiated adapter keeper backed by
// an in-memory store and gomock dependencies.
func Cw20AdapterKeeperWithMocks(t testing.TB, ctrl *gomock.Controller) (*keeper.Keeper, *Cw20AdapterMocks, sdk.Context) {
	if ctrl == nil {
		ctrl = gomock.NewController(t)
	}
	mocks := &Cw20AdapterMocks{
		Ctrl:          ctrl,
		BankK:         types.NewMockBankKeeper(ctrl),
		TokenFactoryK: types.NewMockTokenFactoryKeeper(ctrl),
		WasmK:         types.NewMockWasmKeeper(ctrl),
		Router:        types.NewMockMessageRouter(ctrl),
	}

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewTestLogger(t), storemetrics.NewNoOpMetrics())
	k, ctx := Cw20AdapterKeeperWithStore(
		t, db, stateStore, nil,
		mocks.BankK, mocks.TokenFactoryK, mocks.WasmK, mocks.Router,
		types.DefaultConfig(),
	)

	if err := k.Instantiate(ctx, types.InstantiateMsg{}); err != nil {
		panic(err)
	}

	return k, mocks, ctx
}

package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

type (
	Keeper struct {
		storeService corestoretypes.KVStoreService
		addressCodec address.Codec

		config     types.Config
		denomCodec types.DenomCodec

		bankK         types.BankKeeper
		tokenFactoryK types.TokenFactoryKeeper
		wasmK         types.WasmKeeper
		router        types.MessageRouter

		// adapterAddr is the module account acting as the adapter contract;
		// it creates, mints and burns every denom and holds the CW-20 tokens
		adapterAddr   sdk.AccAddress
		adapterBech32 string

		// registeredContracts is the set of registered CW-20 addresses
		registeredContracts collections.KeySet[string]
		// contractName and contractVersion are recorded on instantiation
		contractName    collections.Item[string]
		contractVersion collections.Item[string]
	}
)

// NewKeeper creates the adapter keeper. wasmK is only used for smart queries,
// so the app may pass a pointer to a wasm keeper that is constructed later.
func NewKeeper(
	storeService corestoretypes.KVStoreService,
	addressCodec address.Codec,
	bankK types.BankKeeper,
	tokenFactoryK types.TokenFactoryKeeper,
	wasmK types.WasmKeeper,
	router types.MessageRouter,
	config types.Config,
) Keeper {
	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid %s config: %w", types.ModuleName, err))
	}

	adapterAddr := authtypes.NewModuleAddress(types.ModuleName)
	adapterBech32, err := addressCodec.BytesToString(adapterAddr)
	if err != nil {
		panic(fmt.Errorf("failed to encode %s module address: %w", types.ModuleName, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	return Keeper{
		storeService: storeService,
		addressCodec: addressCodec,

		config:     config,
		denomCodec: config.DenomCodec(),

		bankK:         bankK,
		tokenFactoryK: tokenFactoryK,
		wasmK:         wasmK,
		router:        router,

		adapterAddr:   adapterAddr,
		adapterBech32: adapterBech32,

		registeredContracts: collections.NewKeySet(
			sb,
			types.RegisteredContractsKey,
			"registered_contracts",
			// key: (cw20Addr)
			collections.StringKey,
		),
		contractName: collections.NewItem(
			sb,
			types.ContractNameKey,
			"contract_name",
			collections.StringValue,
		),
		contractVersion: collections.NewItem(
			sb,
			types.ContractVersionKey,
			"contract_version",
			collections.StringValue,
		),
	}
}

func (k Keeper) Logger(goCtx context.Context) log.Logger {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// AdapterAddress returns the bech32 address of the adapter.
func (k Keeper) AdapterAddress() string {
	return k.adapterBech32
}

// AdapterAccAddress returns the raw address of the adapter.
func (k Keeper) AdapterAccAddress() sdk.AccAddress {
	return k.adapterAddr
}

// DenomCodec returns the codec used to recognise adapter denoms.
func (k Keeper) DenomCodec() types.DenomCodec {
	return k.denomCodec
}

// Denom returns the factory denom backing the given CW-20 contract.
func (k Keeper) Denom(cw20Addr string) string {
	return types.NewAdapterDenom(k.adapterBech32, cw20Addr).String()
}

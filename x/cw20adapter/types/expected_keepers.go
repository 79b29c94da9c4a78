package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
	tokenfactorytypes "github.com/strangelove-ventures/tokenfactory/x/tokenfactory/types"
)

//go:generate mockgen -source=expected_keepers.go -package=types -destination=mocked_keepers.go

// BankKeeper defines the expected bank keeper
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// TokenFactoryKeeper exposes the denom creation fee
type TokenFactoryKeeper interface {
	GetParams(ctx sdk.Context) tokenfactorytypes.Params
}

// WasmKeeper answers smart queries against CW-20 contracts
type WasmKeeper interface {
	QuerySmart(ctx context.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error)
}

// MessageRouter routes the instructions emitted by handlers, as baseapp.MsgServiceRouter does
type MessageRouter interface {
	Handler(msg sdk.Msg) baseapp.MsgServiceHandler
}

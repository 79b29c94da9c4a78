package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	tokenfactorytypes "github.com/strangelove-ventures/tokenfactory/x/tokenfactory/types"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// HandleUpdateMetadata mirrors the CW-20 token info of addr onto its factory
// denom. Calling it again re-applies the current token info.
func (k Keeper) HandleUpdateMetadata(ctx context.Context, addr string) (*types.Response, error) {
	registered, err := k.IsContractRegistered(ctx, addr)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, errorsmod.Wrap(types.ErrContractNotRegistered, addr)
	}

	tokenInfo, err := k.QueryTokenInfo(ctx, addr)
	if err != nil {
		return nil, err
	}

	denom := k.Denom(addr)
	metadata := denomMetadata(denom, tokenInfo)
	if err := metadata.Validate(); err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "metadata of %s: %v", addr, err)
	}

	return types.NewResponse(types.ActionUpdateMetadata).
		AddAttribute(types.AttributeKeyCw20, addr).
		AddAttribute(types.AttributeKeyDenom, denom).
		AddMessages(&tokenfactorytypes.MsgSetDenomMetadata{
			Sender:   k.adapterBech32,
			Metadata: metadata,
		}), nil
}

// denomMetadata describes denom with the CW-20 name and symbol, exposing the
// symbol as a display unit scaled by the CW-20 decimals. CW-20 symbols are
// not always valid bank denoms; those only keep the base unit.
func denomMetadata(denom string, info *types.TokenInfoResponse) banktypes.Metadata {
	units := []*banktypes.DenomUnit{{Denom: denom, Exponent: 0}}
	display := denom
	if info.Decimals > 0 && info.Symbol != denom && sdk.ValidateDenom(info.Symbol) == nil {
		units = append(units, &banktypes.DenomUnit{Denom: info.Symbol, Exponent: uint32(info.Decimals)})
		display = info.Symbol
	}

	return banktypes.Metadata{
		Description: info.Name,
		DenomUnits:  units,
		Base:        denom,
		Display:     display,
		Name:        info.Name,
		Symbol:      info.Symbol,
	}
}

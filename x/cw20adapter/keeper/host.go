package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// DenomCreationFee returns the current fee charged by the token factory for
// creating a denom. It is read fresh on every call as it may change between
// blocks.
func (k Keeper) DenomCreationFee(ctx context.Context) sdk.Coins {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return k.tokenFactoryK.GetParams(sdkCtx).DenomCreationFee
}

// ensureSufficientCreateDenomBalance checks that the adapter itself can pay
// the denom creation fee.
func (k Keeper) ensureSufficientCreateDenomBalance(ctx context.Context) error {
	for _, required := range k.DenomCreationFee(ctx) {
		balance := k.bankK.GetBalance(ctx, k.adapterAddr, required.Denom)
		if balance.Amount.LT(required.Amount) {
			return errorsmod.Wrapf(
				types.ErrNotEnoughBalanceToPayDenomCreationFee,
				"adapter holds %s, requires %s", balance, required,
			)
		}
	}
	return nil
}

// canonicalAddressBytes decodes addr and requires it to be in the form the
// address codec encodes, so a contract has a single registry key and denom.
// bech32 also decodes the all-uppercase form, which is rejected here.
func (k Keeper) canonicalAddressBytes(addr string) ([]byte, error) {
	bz, err := k.addressCodec.StringToBytes(addr)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid address %s: %v", addr, err)
	}
	canonical, err := k.addressCodec.BytesToString(bz)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid address %s: %v", addr, err)
	}
	if canonical != addr {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "address %s is not in canonical form %s", addr, canonical)
	}
	return bz, nil
}

// QueryTokenInfo runs the CW-20 token_info query against cw20Addr.
func (k Keeper) QueryTokenInfo(ctx context.Context, cw20Addr string) (*types.TokenInfoResponse, error) {
	contractAddr, err := k.canonicalAddressBytes(cw20Addr)
	if err != nil {
		return nil, err
	}

	bz, err := k.wasmK.QuerySmart(ctx, contractAddr, types.TokenInfoQuery())
	if err != nil {
		return nil, errorsmod.Wrapf(err, "failed to query token info of %s", cw20Addr)
	}

	var info types.TokenInfoResponse
	if err := json.Unmarshal(bz, &info); err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrJSONUnmarshal, "token info of %s: %v", cw20Addr, err)
	}
	if err := info.Validate(); err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidType, "token info of %s: %v", cw20Addr, err)
	}
	return &info, nil
}

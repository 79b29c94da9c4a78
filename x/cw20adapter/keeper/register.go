package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	tokenfactorytypes "github.com/strangelove-ventures/tokenfactory/x/tokenfactory/types"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// HandleRegisterCw20Contract registers a CW-20 contract paid for by the
// caller. The attached funds must match the denom creation fee exactly.
func (k Keeper) HandleRegisterCw20Contract(ctx context.Context, info types.MessageInfo, addr string) (*types.Response, error) {
	registered, err := k.IsContractRegistered(ctx, addr)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, errorsmod.Wrap(types.ErrContractAlreadyRegistered, addr)
	}

	requiredFunds := k.DenomCreationFee(ctx)

	if _, err := k.QueryTokenInfo(ctx, addr); err != nil {
		return nil, errorsmod.Wrapf(types.ErrNotCw20Address, "%s: %v", addr, err)
	}

	if err := checkDenomCreationFunds(requiredFunds, info.Funds); err != nil {
		return nil, err
	}

	createDenomMsg, err := k.registerContract(ctx, addr)
	if err != nil {
		return nil, err
	}

	return types.NewResponse(types.ActionRegister).
		AddAttribute(types.AttributeKeyCw20, addr).
		AddAttribute(types.AttributeKeyDenom, k.Denom(addr)).
		AddMessages(createDenomMsg), nil
}

// checkDenomCreationFunds requires provided to equal required. There is no
// refund, so any excess is rejected. The first mismatch is reported.
func checkDenomCreationFunds(required, provided sdk.Coins) error {
	if len(provided) > len(required) {
		return errorsmod.Wrapf(types.ErrSuperfluousFundsProvided, "provided %s, required %s", provided, required)
	}

	for _, requiredCoin := range required {
		found, providedCoin := provided.Find(requiredCoin.Denom)
		if !found || providedCoin.Amount.LT(requiredCoin.Amount) {
			return errorsmod.Wrapf(types.ErrNotEnoughBalanceToPayDenomCreationFee, "provided %s, required %s", provided, required)
		}
		if providedCoin.Amount.GT(requiredCoin.Amount) {
			return errorsmod.Wrapf(types.ErrSuperfluousFundsProvided, "provided %s, required %s", provided, required)
		}
	}
	return nil
}

// registerContract inserts addr and returns the instruction creating its denom.
func (k Keeper) registerContract(ctx context.Context, addr string) (sdk.Msg, error) {
	if err := k.RegisterContract(ctx, addr); err != nil {
		return nil, err
	}
	return &tokenfactorytypes.MsgCreateDenom{
		Sender:   k.adapterBech32,
		Subdenom: addr,
	}, nil
}

package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	tokenfactorytypes "github.com/strangelove-ventures/tokenfactory/x/tokenfactory/types"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// HandleRedeemAndTransfer burns the attached factory tokens and transfers the
// matching CW-20 tokens to recipient, or to the caller when recipient is nil.
func (k Keeper) HandleRedeemAndTransfer(ctx context.Context, info types.MessageInfo, recipient *string) (*types.Response, error) {
	return k.redeem(ctx, info, recipient, types.NewCw20TransferMsg)
}

// HandleRedeemAndSend burns the attached factory tokens and sends the
// matching CW-20 tokens to the recipient contract along with submsg.
func (k Keeper) HandleRedeemAndSend(ctx context.Context, info types.MessageInfo, recipient string, submsg []byte) (*types.Response, error) {
	return k.redeem(ctx, info, &recipient, func(contract string, amount sdkmath.Int) ([]byte, error) {
		return types.NewCw20SendMsg(contract, amount, submsg)
	})
}

type cw20MsgEncoder func(recipient string, amount sdkmath.Int) ([]byte, error)

func (k Keeper) redeem(ctx context.Context, info types.MessageInfo, recipient *string, encode cw20MsgEncoder) (*types.Response, error) {
	if len(info.Funds) > 1 {
		return nil, errorsmod.Wrapf(types.ErrSuperfluousFundsProvided, "redeem accepts a single denom, got %s", info.Funds)
	}
	if len(info.Funds) == 0 {
		return nil, types.ErrNoRegisteredTokensProvided
	}
	tokens := info.Funds[0]

	denom, err := k.denomCodec.Parse(tokens.Denom)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrNoRegisteredTokensProvided, err.Error())
	}
	// a well-formed denom created by another account is not ours to redeem
	if denom.Adapter != k.adapterBech32 {
		return nil, errorsmod.Wrapf(types.ErrNoRegisteredTokensProvided, "%s was not created by the adapter", tokens.Denom)
	}
	registered, err := k.IsContractRegistered(ctx, denom.Cw20)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, errorsmod.Wrapf(types.ErrNoRegisteredTokensProvided, "%s is not registered", denom.Cw20)
	}

	var rcpt string
	if recipient != nil {
		rcpt = *recipient
		if _, err := k.addressCodec.StringToBytes(rcpt); err != nil {
			return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid recipient %s: %v", rcpt, err)
		}
	} else {
		rcpt, err = k.addressCodec.BytesToString(info.Sender)
		if err != nil {
			return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid caller: %v", err)
		}
	}

	cw20Msg, err := encode(rcpt, tokens.Amount)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}

	res := types.NewResponse(types.ActionRedeem).
		AddAttribute(types.AttributeKeyCw20, denom.Cw20).
		AddAttribute(types.AttributeKeyDenom, tokens.Denom).
		AddAttribute(types.AttributeKeyAmount, tokens.Amount.String()).
		AddAttribute(types.AttributeKeyReceiver, rcpt).
		AddMessages(
			&wasmtypes.MsgExecuteContract{
				Sender:   k.adapterBech32,
				Contract: denom.Cw20,
				Msg:      wasmtypes.RawContractMessage(cw20Msg),
			},
			&tokenfactorytypes.MsgBurn{
				Sender: k.adapterBech32,
				Amount: tokens,
			},
		)

	types.RecordRedemption(tokens.Amount)
	return res, nil
}

package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	tokenfactorytypes "github.com/strangelove-ventures/tokenfactory/x/tokenfactory/types"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// HandleReceive handles the CW-20 receiver hook. The caller is the CW-20
// contract itself; msg.Sender is the account whose tokens were sent and who
// gets the minted factory tokens. msg.Msg is not interpreted.
func (k Keeper) HandleReceive(ctx context.Context, info types.MessageInfo, msg types.Cw20ReceiveMsg) (*types.Response, error) {
	if !info.Funds.IsZero() {
		return nil, errorsmod.Wrapf(types.ErrSuperfluousFundsProvided, "receive carries %s", info.Funds)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, errorsmod.Wrap(types.ErrInvalidExecuteMsg, "receive amount must be positive")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Sender); err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender %s: %v", msg.Sender, err)
	}

	cw20Addr, err := k.addressCodec.BytesToString(info.Sender)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid caller: %v", err)
	}

	res := types.NewResponse(types.ActionReceive).
		AddAttribute(types.AttributeKeyCw20, cw20Addr).
		AddAttribute(types.AttributeKeySender, msg.Sender).
		AddAttribute(types.AttributeKeyAmount, msg.Amount.String())

	registered, err := k.IsContractRegistered(ctx, cw20Addr)
	if err != nil {
		return nil, err
	}
	if !registered {
		// the fee is paid from the adapter's own balance
		if err := k.ensureSufficientCreateDenomBalance(ctx); err != nil {
			return nil, err
		}
		createDenomMsg, err := k.registerContract(ctx, cw20Addr)
		if err != nil {
			return nil, err
		}
		res.AddMessages(createDenomMsg)
	}

	denom := k.Denom(cw20Addr)
	res.AddAttribute(types.AttributeKeyDenom, denom)
	res.AddMessages(&tokenfactorytypes.MsgMint{
		Sender:        k.adapterBech32,
		Amount:        sdk.Coin{Denom: denom, Amount: msg.Amount},
		MintToAddress: msg.Sender,
	})

	types.RecordDeposit(msg.Amount)
	return res, nil
}

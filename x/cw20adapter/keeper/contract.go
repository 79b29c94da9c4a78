package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// Instantiate records the contract name and configured version.
func (k Keeper) Instantiate(ctx context.Context, _ types.InstantiateMsg) error {
	return k.SetContractVersion(ctx, types.ContractVersion{
		Contract: types.ContractName,
		Version:  k.config.ContractVersion,
	})
}

// Execute decodes a JSON command and runs the matching handler. It mutates
// the registry but does not execute the returned instructions; see
// ExecuteAndDispatch.
func (k Keeper) Execute(ctx context.Context, info types.MessageInfo, rawMsg []byte) (*types.Response, error) {
	var msg types.ExecuteMsg
	if err := json.Unmarshal(rawMsg, &msg); err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrJSONUnmarshal, "failed to unmarshal execute msg: %v", err)
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	k.Logger(ctx).Debug("executing adapter command", "action", msg.Action(), "sender", info.Sender.String(), "funds", info.Funds.String())

	switch {
	case msg.RegisterCw20Contract != nil:
		return k.HandleRegisterCw20Contract(ctx, info, msg.RegisterCw20Contract.Addr)
	case msg.Receive != nil:
		return k.HandleReceive(ctx, info, *msg.Receive)
	case msg.RedeemAndTransfer != nil:
		return k.HandleRedeemAndTransfer(ctx, info, msg.RedeemAndTransfer.Recipient)
	case msg.RedeemAndSend != nil:
		return k.HandleRedeemAndSend(ctx, info, msg.RedeemAndSend.Recipient, msg.RedeemAndSend.Submsg)
	case msg.UpdateMetadata != nil:
		return k.HandleUpdateMetadata(ctx, msg.UpdateMetadata.Addr)
	default:
		return nil, errorsmod.Wrap(types.ErrInvalidExecuteMsg, "unknown variant")
	}
}

func (k Keeper) SetContractVersion(ctx context.Context, version types.ContractVersion) error {
	if err := k.contractName.Set(ctx, version.Contract); err != nil {
		return err
	}
	return k.contractVersion.Set(ctx, version.Version)
}

// GetContractVersion returns the name and version recorded on instantiation.
func (k Keeper) GetContractVersion(ctx context.Context) (types.ContractVersion, error) {
	name, err := k.contractName.Get(ctx)
	if err != nil {
		return types.ContractVersion{}, errorsmod.Wrap(err, "contract not instantiated")
	}
	version, err := k.contractVersion.Get(ctx)
	if err != nil {
		return types.ContractVersion{}, errorsmod.Wrap(err, "contract not instantiated")
	}
	return types.ContractVersion{Contract: name, Version: version}, nil
}

package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// Query decodes a JSON query and returns the JSON encoded answer.
func (k Keeper) Query(ctx context.Context, rawMsg []byte) ([]byte, error) {
	var msg types.QueryMsg
	if err := json.Unmarshal(rawMsg, &msg); err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrJSONUnmarshal, "failed to unmarshal query msg: %v", err)
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	var (
		res interface{}
		err error
	)
	switch {
	case msg.RegisteredContracts != nil:
		res, err = k.GetRegisteredContracts(ctx, msg.RegisteredContracts.StartAfter, msg.RegisteredContracts.Limit)
	case msg.NewDenomFee != nil:
		fee := k.DenomCreationFee(ctx)
		if fee == nil {
			fee = sdk.Coins{}
		}
		res = fee
	case msg.ContractVersion != nil:
		res, err = k.GetContractVersion(ctx)
	default:
		return nil, errorsmod.Wrap(types.ErrInvalidQueryMsg, "unknown variant")
	}
	if err != nil {
		return nil, err
	}

	bz, err := json.Marshal(res)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrJSONMarshal, "failed marshaling: %v", err)
	}
	return bz, nil
}

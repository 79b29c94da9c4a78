package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

var _ types.MsgServer = MsgServer{}

type MsgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &MsgServer{Keeper: k}
}

// Execute runs an adapter command signed by an account. The attached funds
// move to the adapter and every resulting instruction is dispatched in the
// same cache context as for contract callers.
func (ms MsgServer) Execute(goCtx context.Context, req *types.MsgExecute) (*types.MsgExecuteResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := ms.addressCodec.StringToBytes(req.Sender)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender %s: %v", req.Sender, err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	res, err := ms.ExecuteAndDispatch(ctx, sender, req.Funds, req.Msg)
	if err != nil {
		return nil, err
	}

	typeURLs := make([]string, len(res.Messages))
	for i, msg := range res.Messages {
		typeURLs[i] = sdk.MsgTypeURL(msg)
	}
	return &types.MsgExecuteResponse{Messages: typeURLs}, nil
}

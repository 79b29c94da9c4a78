package keeper

import (
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// ExecuteAndDispatch is the host side of a command: it moves the attached
// funds to the adapter, runs the handler and executes every instruction the
// handler returned, in order. All of it happens in a cache context that is
// only written when everything succeeds, so a failed call leaves no trace.
func (k Keeper) ExecuteAndDispatch(ctx sdk.Context, sender sdk.AccAddress, funds sdk.Coins, rawMsg []byte) (*types.Response, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyExecute)

	cacheCtx, writeCache := ctx.CacheContext()

	if !funds.IsZero() {
		if err := k.bankK.SendCoins(cacheCtx, sender, k.adapterAddr, funds); err != nil {
			return nil, errorsmod.Wrapf(err, "failed to transfer %s to the adapter", funds)
		}
	}

	res, err := k.Execute(cacheCtx, types.MessageInfo{Sender: sender, Funds: funds}, rawMsg)
	if err != nil {
		return nil, err
	}

	for i, msg := range res.Messages {
		if err := k.dispatchMsg(cacheCtx, msg); err != nil {
			k.Logger(ctx).Error("failed to dispatch adapter instruction", "index", i, "msg", sdk.MsgTypeURL(msg), "err", err)
			return nil, errorsmod.Wrapf(err, "instruction %d (%s)", i, sdk.MsgTypeURL(msg))
		}
	}

	// writeCache also re-emits the cached events on ctx
	cacheCtx.EventManager().EmitEvent(res.Event())
	writeCache()

	return res, nil
}

// dispatchMsg runs msg through the message router, as wasmd does for the
// messages a contract returns.
func (k Keeper) dispatchMsg(ctx sdk.Context, msg sdk.Msg) error {
	if m, ok := msg.(sdk.HasValidateBasic); ok {
		if err := m.ValidateBasic(); err != nil {
			return err
		}
	}

	handler := k.router.Handler(msg)
	if handler == nil {
		return errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "no handler for %s", sdk.MsgTypeURL(msg))
	}

	res, err := handler(ctx, msg)
	if err != nil {
		return err
	}

	// the router runs each handler with its own event manager
	events := make([]sdk.Event, len(res.Events))
	for i := range res.Events {
		events[i] = sdk.Event(res.Events[i])
	}
	ctx.EventManager().EmitEvents(events)
	return nil
}

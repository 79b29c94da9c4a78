package wasmbinding

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	wasmkeeper "github.com/CosmWasm/wasmd/x/wasm/keeper"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/babylonlabs-io/cw20-adapter/wasmbinding/bindings"
	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/keeper"
)

// CustomMessenger serves wasm execute messages addressed to the adapter and
// hands everything else to the wrapped messenger.
type CustomMessenger struct {
	wrapped wasmkeeper.Messenger
	adapter *keeper.Keeper
}

var _ wasmkeeper.Messenger = (*CustomMessenger)(nil)

// CustomMessageDecorator returns decorator for messages sent to the adapter
func CustomMessageDecorator(adapter *keeper.Keeper) func(wasmkeeper.Messenger) wasmkeeper.Messenger {
	return func(old wasmkeeper.Messenger) wasmkeeper.Messenger {
		return &CustomMessenger{
			wrapped: old,
			adapter: adapter,
		}
	}
}

// DispatchMsg executes on the contractMsg.
func (m *CustomMessenger) DispatchMsg(
	ctx sdk.Context,
	contractAddr sdk.AccAddress,
	contractIBCPortID string,
	msg wasmvmtypes.CosmosMsg,
) ([]sdk.Event, [][]byte, [][]*codectypes.Any, error) {
	if msg.Wasm == nil || msg.Wasm.Execute == nil || msg.Wasm.Execute.ContractAddr != m.adapter.AdapterAddress() {
		return m.wrapped.DispatchMsg(ctx, contractAddr, contractIBCPortID, msg)
	}

	funds, err := wasmkeeper.ConvertWasmCoinsToSdkCoins(msg.Wasm.Execute.Funds)
	if err != nil {
		return nil, nil, nil, errorsmod.Wrap(err, "adapter funds")
	}

	em := sdk.NewEventManager()
	if _, err := m.adapter.ExecuteAndDispatch(ctx.WithEventManager(em), contractAddr, funds, msg.Wasm.Execute.Msg); err != nil {
		return nil, nil, nil, err
	}
	return em.Events(), nil, nil, nil
}

// CustomQueryHandler answers smart queries addressed to the adapter and
// hands everything else to the wrapped handler.
type CustomQueryHandler struct {
	wrapped wasmkeeper.WasmVMQueryHandler
	adapter *keeper.Keeper
}

var _ wasmkeeper.WasmVMQueryHandler = (*CustomQueryHandler)(nil)

// CustomQueryDecorator returns decorator for smart queries sent to the adapter
func CustomQueryDecorator(adapter *keeper.Keeper) func(wasmkeeper.WasmVMQueryHandler) wasmkeeper.WasmVMQueryHandler {
	return func(old wasmkeeper.WasmVMQueryHandler) wasmkeeper.WasmVMQueryHandler {
		return &CustomQueryHandler{
			wrapped: old,
			adapter: adapter,
		}
	}
}

func (q *CustomQueryHandler) HandleQuery(ctx sdk.Context, caller sdk.AccAddress, request wasmvmtypes.QueryRequest) ([]byte, error) {
	if request.Wasm == nil || request.Wasm.Smart == nil || request.Wasm.Smart.ContractAddr != q.adapter.AdapterAddress() {
		return q.wrapped.HandleQuery(ctx, caller, request)
	}
	return q.adapter.Query(ctx, request.Wasm.Smart.Msg)
}

// CustomQuerier dispatches custom CosmWasm bindings queries.
func CustomQuerier(adapter *keeper.Keeper) func(ctx sdk.Context, request json.RawMessage) ([]byte, error) {
	return func(ctx sdk.Context, request json.RawMessage) ([]byte, error) {
		var contractQuery bindings.Cw20AdapterQuery
		if err := json.Unmarshal(request, &contractQuery); err != nil {
			return nil, errorsmod.Wrap(err, "failed to unmarshal request")
		}

		var res interface{}
		switch {
		case contractQuery.AdapterAddress != nil:
			res = bindings.AdapterAddressResponse{Address: adapter.AdapterAddress()}
		case contractQuery.AdapterDenom != nil:
			cw20 := contractQuery.AdapterDenom.Cw20
			registered, err := adapter.IsContractRegistered(ctx, cw20)
			if err != nil {
				return nil, err
			}
			res = bindings.AdapterDenomResponse{
				Denom:      adapter.Denom(cw20),
				Registered: registered,
			}
		default:
			return nil, wasmvmtypes.UnsupportedRequest{Kind: "unknown cw20 adapter query variant"}
		}

		bz, err := json.Marshal(res)
		if err != nil {
			return nil, errorsmod.Wrap(err, "failed marshaling")
		}
		return bz, nil
	}
}

// RegisterCustomPlugins wires the adapter into the wasm keeper: contracts
// execute and query it at its module address as if it were a contract.
func RegisterCustomPlugins(adapter *keeper.Keeper) []wasmkeeper.Option {
	return []wasmkeeper.Option{
		wasmkeeper.WithMessageHandlerDecorator(CustomMessageDecorator(adapter)),
		wasmkeeper.WithQueryHandlerDecorator(CustomQueryDecorator(adapter)),
		wasmkeeper.WithQueryPlugins(&wasmkeeper.QueryPlugins{
			Custom: CustomQuerier(adapter),
		}),
	}
}

func RegisterGrpcQueries(queryRouter baseapp.GRPCQueryRouter, codec codec.Codec) []wasmkeeper.Option {
	queryPluginOpt := wasmkeeper.WithQueryPlugins(
		&wasmkeeper.QueryPlugins{
			Stargate: wasmkeeper.AcceptListStargateQuerier(WhitelistedGrpcQuery(), &queryRouter, codec),
			Grpc:     wasmkeeper.AcceptListGrpcQuerier(WhitelistedGrpcQuery(), &queryRouter, codec),
		})

	return []wasmkeeper.Option{
		queryPluginOpt,
	}
}

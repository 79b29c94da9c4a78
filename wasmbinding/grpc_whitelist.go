package wasmbinding

import (
	wasmkeeper "github.com/CosmWasm/wasmd/x/wasm/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/cosmos/gogoproto/proto"
	tokenfactorytypes "github.com/strangelove-ventures/tokenfactory/x/tokenfactory/types"
)

// WhitelistedGrpcQuery returns the whitelisted Grpc queries
func WhitelistedGrpcQuery() wasmkeeper.AcceptedQueries {
	return wasmkeeper.AcceptedQueries{
		// tokenfactory
		"/osmosis.tokenfactory.v1beta1.Query/Params": func() proto.Message {
			return &tokenfactorytypes.QueryParamsResponse{}
		},
		"/osmosis.tokenfactory.v1beta1.Query/DenomAuthorityMetadata": func() proto.Message {
			return &tokenfactorytypes.QueryDenomAuthorityMetadataResponse{}
		},
		// bank
		"/cosmos.bank.v1beta1.Query/Balance": func() proto.Message {
			return &banktypes.QueryBalanceResponse{}
		},
		"/cosmos.bank.v1beta1.Query/DenomMetadata": func() proto.Message {
			return &banktypes.QueryDenomMetadataResponse{}
		},
	}
}

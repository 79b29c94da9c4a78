package params

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	cw20adaptertypes "github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

var (
	// AccCw20Adapter is the account that creates, mints and burns every
	// adapter denom and custodies the CW-20 tokens backing them
	AccCw20Adapter = authtypes.NewModuleAddress(cw20adaptertypes.ModuleName)
)

package cw20adapter

import (
	"context"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/keeper"
	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx context.Context, k keeper.Keeper, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}
	return k.InitGenesis(ctx, genState)
}

// ExportGenesis returns the module's exported genesis
func ExportGenesis(ctx context.Context, k keeper.Keeper) (*types.GenesisState, error) {
	return k.ExportGenesis(ctx)
}

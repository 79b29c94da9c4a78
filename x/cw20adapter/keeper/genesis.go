package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// InitGenesis instantiates the adapter and loads the registry. Without a
// recorded version in gs, the configured one is used.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if gs.ContractVersion != nil {
		if err := k.SetContractVersion(ctx, *gs.ContractVersion); err != nil {
			return err
		}
	} else if err := k.Instantiate(ctx, types.InstantiateMsg{}); err != nil {
		return err
	}

	for _, addr := range gs.RegisteredContracts {
		if _, err := k.canonicalAddressBytes(addr); err != nil {
			return errorsmod.Wrap(err, "registered contract")
		}
		if err := k.registeredContracts.Set(ctx, addr); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns the module's exported genesis
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	version, err := k.GetContractVersion(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := k.GetRegisteredContracts(ctx, "", 0)
	if err != nil {
		return nil, err
	}
	return &types.GenesisState{
		ContractVersion:     &version,
		RegisteredContracts: contracts,
	}, nil
}

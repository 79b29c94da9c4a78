package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

// IsContractRegistered reports whether addr is in the registry.
func (k Keeper) IsContractRegistered(ctx context.Context, addr string) (bool, error) {
	registered, err := k.registeredContracts.Has(ctx, addr)
	if err != nil {
		return false, errorsmod.Wrapf(err, "failed to look up contract %s", addr)
	}
	return registered, nil
}

// RegisterContract inserts addr into the registry. Registration is not
// idempotent: inserting an existing address fails.
func (k Keeper) RegisterContract(ctx context.Context, addr string) error {
	registered, err := k.IsContractRegistered(ctx, addr)
	if err != nil {
		return err
	}
	if registered {
		return errorsmod.Wrap(types.ErrContractAlreadyRegistered, addr)
	}
	if err := k.registeredContracts.Set(ctx, addr); err != nil {
		return errorsmod.Wrapf(err, "failed to register contract %s", addr)
	}

	types.IncrementRegisteredContracts()
	k.Logger(ctx).Info("registered CW-20 contract", "cw20", addr, "denom", k.Denom(addr))
	return nil
}

// GetRegisteredContracts lists registered addresses in ascending
// lexicographic order, starting after startAfter when it is set. A zero
// limit returns every remaining address.
func (k Keeper) GetRegisteredContracts(ctx context.Context, startAfter string, limit uint32) ([]string, error) {
	var rng collections.Ranger[string]
	if startAfter != "" {
		rng = new(collections.Range[string]).StartExclusive(startAfter)
	}

	iter, err := k.registeredContracts.Iterate(ctx, rng)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	contracts := []string{}
	for ; iter.Valid(); iter.Next() {
		addr, err := iter.Key()
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, addr)
		if limit != 0 && uint32(len(contracts)) == limit {
			break
		}
	}
	return contracts, nil
}

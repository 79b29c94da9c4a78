package types

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// GenesisState is the JSON genesis of the module.
type GenesisState struct {
	ContractVersion     *ContractVersion `json:"contract_version,omitempty"`
	RegisteredContracts []string         `json:"registered_contracts"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		RegisteredContracts: []string{},
	}
}

func (gs GenesisState) Validate() error {
	if gs.ContractVersion != nil {
		if gs.ContractVersion.Contract == "" || gs.ContractVersion.Version == "" {
			return fmt.Errorf("incomplete contract version %+v", *gs.ContractVersion)
		}
	}

	seen := make(map[string]struct{}, len(gs.RegisteredContracts))
	for _, addr := range gs.RegisteredContracts {
		if addr == "" {
			return fmt.Errorf("empty registered contract address")
		}
		if err := ValidateCanonicalBech32(addr); err != nil {
			return fmt.Errorf("registered contract: %w", err)
		}
		if _, ok := seen[addr]; ok {
			return fmt.Errorf("duplicate registered contract %s", addr)
		}
		seen[addr] = struct{}{}
	}
	return nil
}

// ValidateCanonicalBech32 checks that addr is a valid bech32 address written
// in its canonical lowercase form. The prefix is checked by the keeper.
func ValidateCanonicalBech32(addr string) error {
	hrp, bz, err := bech32.DecodeAndConvert(addr)
	if err != nil {
		return fmt.Errorf("invalid address %s: %w", addr, err)
	}
	canonical, err := bech32.ConvertAndEncode(hrp, bz)
	if err != nil {
		return fmt.Errorf("invalid address %s: %w", addr, err)
	}
	if canonical != addr {
		return fmt.Errorf("address %s is not in canonical form %s", addr, canonical)
	}
	return nil
}

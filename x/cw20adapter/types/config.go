package types

import (
	"fmt"

	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	"github.com/spf13/cast"
)

const (
	FlagAddressLength   = "cw20adapter.address-length"
	FlagContractVersion = "cw20adapter.contract-version"

	DefaultContractVersion = "1.0.0"
)

// DefaultConfigTemplate is appended to app.toml. It expects the adapter
// config under the Cw20Adapter field of the template data.
const DefaultConfigTemplate = `
###############################################################################
###                          CW-20 adapter                                  ###
###############################################################################

[cw20adapter]

# Length of both address segments of an adapter denom. 0 accepts any length.
# 42 fits 20-byte addresses with a 3-char prefix. A 32-byte contract address
# such as bbn1... is 62 chars, above the 44-char token-factory subdenom limit,
# so registering such a contract fails when the denom is created.
address-length = {{ .Cw20Adapter.AddressLength }}

# Version recorded when the adapter is instantiated at genesis.
contract-version = "{{ .Cw20Adapter.ContractVersion }}"
`

// Config holds node-level settings of the adapter. They are not part of
// consensus state except for the contract version recorded on instantiation.
type Config struct {
	// AddressLength is the fixed length of both address segments of an
	// adapter denom; zero disables the length check.
	//
	// The CW-20 address is also the token-factory subdenom, which is capped at
	// 44 chars (tokenfactorytypes.MaxSubdenomLength). Contracts instantiated by
	// wasmd have 32-byte addresses, 62 chars with a 3-char prefix, and cannot
	// be registered whatever this value is.
	AddressLength int
	// ContractVersion is recorded on instantiation
	ContractVersion string
}

func DefaultConfig() Config {
	return Config{
		AddressLength:   DefaultAddressLength,
		ContractVersion: DefaultContractVersion,
	}
}

func (c Config) Validate() error {
	if c.AddressLength < 0 {
		return fmt.Errorf("address length must not be negative, got %d", c.AddressLength)
	}
	if c.ContractVersion == "" {
		return fmt.Errorf("empty contract version")
	}
	return nil
}

func (c Config) DenomCodec() DenomCodec {
	return DenomCodec{AddressLength: c.AddressLength}
}

// ConfigFromAppOptions overrides the defaults with values set in app.toml.
func ConfigFromAppOptions(appOpts servertypes.AppOptions) (Config, error) {
	cfg := DefaultConfig()

	if v := appOpts.Get(FlagAddressLength); v != nil {
		length, err := cast.ToIntE(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", FlagAddressLength, err)
		}
		cfg.AddressLength = length
	}
	if v := appOpts.Get(FlagContractVersion); v != nil {
		cfg.ContractVersion = cast.ToString(v)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

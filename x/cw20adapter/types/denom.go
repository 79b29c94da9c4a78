package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

const (
	// DenomPrefix is the literal first segment of every token-factory denom
	DenomPrefix = "factory"
	// DenomSeparator separates the three segments of a token-factory denom
	DenomSeparator = "/"
	// DefaultAddressLength is the length of a bech32 address with a 3-char HRP
	// and a 20-byte payload, e.g. bbn1... or inj1...
	DefaultAddressLength = 42

	denomSegments = 3
)

// AdapterDenom is the pair of addresses a token-factory denom minted by the
// adapter is derived from. It is never persisted.
type AdapterDenom struct {
	Adapter string
	Cw20    string
}

// NewAdapterDenom returns the denom of the native token backing cw20 tokens
// held by adapter.
func NewAdapterDenom(adapter, cw20 string) AdapterDenom {
	return AdapterDenom{Adapter: adapter, Cw20: cw20}
}

// String returns the wire form factory/{adapter}/{cw20}.
func (d AdapterDenom) String() string {
	return strings.Join([]string{DenomPrefix, d.Adapter, d.Cw20}, DenomSeparator)
}

// DenomCodec parses adapter denoms. AddressLength pins both address segments
// to a fixed size; zero accepts any non-empty alphanumeric segment.
type DenomCodec struct {
	AddressLength int
}

func DefaultDenomCodec() DenomCodec {
	return DenomCodec{AddressLength: DefaultAddressLength}
}

// DenomLength is the exact length of a well-formed denom, or zero when the
// codec does not enforce address lengths.
func (c DenomCodec) DenomLength() int {
	if c.AddressLength == 0 {
		return 0
	}
	return len(DenomPrefix) + 2*len(DenomSeparator) + 2*c.AddressLength
}

// Parse splits denom into its adapter and CW-20 halves. The whole string must
// match, so trailing segments or characters are rejected rather than ignored.
func (c DenomCodec) Parse(denom string) (AdapterDenom, error) {
	if n := c.DenomLength(); n != 0 && len(denom) != n {
		return AdapterDenom{}, errorsmod.Wrapf(ErrNotCw20Denom, "%q: expected length %d, got %d", denom, n, len(denom))
	}

	parts := strings.Split(denom, DenomSeparator)
	if len(parts) != denomSegments {
		return AdapterDenom{}, errorsmod.Wrapf(ErrNotCw20Denom, "%q: expected %d segments, got %d", denom, denomSegments, len(parts))
	}
	if parts[0] != DenomPrefix {
		return AdapterDenom{}, errorsmod.Wrapf(ErrNotCw20Denom, "%q: missing %s prefix", denom, DenomPrefix)
	}
	for _, segment := range parts[1:] {
		if err := c.validateSegment(segment); err != nil {
			return AdapterDenom{}, errorsmod.Wrapf(ErrNotCw20Denom, "%q: %v", denom, err)
		}
	}

	return NewAdapterDenom(parts[1], parts[2]), nil
}

// IsAdapterDenom reports whether denom is structurally an adapter denom.
func (c DenomCodec) IsAdapterDenom(denom string) bool {
	_, err := c.Parse(denom)
	return err == nil
}

func (c DenomCodec) validateSegment(segment string) error {
	if segment == "" {
		return fmt.Errorf("empty address segment")
	}
	if c.AddressLength != 0 && len(segment) != c.AddressLength {
		return fmt.Errorf("address segment %q has length %d, expected %d", segment, len(segment), c.AddressLength)
	}
	for _, r := range segment {
		if !isAlphanumeric(r) {
			return fmt.Errorf("address segment %q contains non-alphanumeric character %q", segment, r)
		}
	}
	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

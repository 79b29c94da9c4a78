package datagen

import (
	"math/rand"

	sdk "github.com/cosmos/cosmos-sdk/types"

	appparams "github.com/babylonlabs-io/cw20-adapter/app/params"
)

// GenRandomAccAddress returns a random 20-byte address. Its bech32 form
// with the bbn prefix is 42 characters long, like the adapter address.
func GenRandomAccAddress(r *rand.Rand) sdk.AccAddress {
	return sdk.AccAddress(GenRandomByteArray(r, 20))
}

// GenRandomBech32Address returns a random 20-byte address in bech32 form.
func GenRandomBech32Address(r *rand.Rand) string {
	addr, err := sdk.Bech32ifyAddressBytes(appparams.Bech32PrefixAccAddr, GenRandomAccAddress(r))
	if err != nil {
		panic(err)
	}
	return addr
}

// GenRandomCw20Address returns a CW-20 contract address together with its
// bech32 form.
func GenRandomCw20Address(r *rand.Rand) (sdk.AccAddress, string) {
	addr := GenRandomAccAddress(r)
	bech32Addr, err := sdk.Bech32ifyAddressBytes(appparams.Bech32PrefixAccAddr, addr)
	if err != nil {
		panic(err)
	}
	return addr, bech32Addr
}

// GenRandomBech32Addresses returns n distinct random addresses.
func GenRandomBech32Addresses(r *rand.Rand, n int) []string {
	seen := make(map[string]struct{}, n)
	addrs := make([]string, 0, n)
	for len(addrs) < n {
		addr := GenRandomBech32Address(r)
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		addrs = append(addrs, addr)
	}
	return addrs
}

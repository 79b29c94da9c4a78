package keeper_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/cw20-adapter/testutil/datagen"
	"github.com/babylonlabs-io/cw20-adapter/x/cw20adapter/types"
)

func TestInitExportGenesis(t *testing.T) {
	e := newTestEnv(t)

	contracts := datagen.GenRandomBech32Addresses(e.r, 4)
	gs := types.GenesisState{
		ContractVersion:     &types.ContractVersion{Contract: types.ContractName, Version: "0.9.0"},
		RegisteredContracts: contracts,
	}
	require.NoError(t, gs.Validate())
	require.NoError(t, e.k.InitGenesis(e.ctx, gs))

	exported, err := e.k.ExportGenesis(e.ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())

	sort.Strings(contracts)
	require.Equal(t, contracts, exported.RegisteredContracts)
	require.Equal(t, gs.ContractVersion, exported.ContractVersion)
}

func TestInitGenesisWithoutVersion(t *testing.T) {
	e := newTestEnv(t)

	require.NoError(t, e.k.InitGenesis(e.ctx, *types.DefaultGenesis()))

	exported, err := e.k.ExportGenesis(e.ctx)
	require.NoError(t, err)
	require.Empty(t, exported.RegisteredContracts)
	require.Equal(t, &types.ContractVersion{
		Contract: types.ContractName,
		Version:  types.DefaultContractVersion,
	}, exported.ContractVersion)
}

func TestInitGenesisRejectsNonCanonicalAddresses(t *testing.T) {
	tcs := []struct {
		name string
		addr func(addr string) string
	}{
		{
			name: "uppercase",
			addr: strings.ToUpper,
		},
		{
			name: "foreign prefix",
			addr: func(string) string { return "inj1pjcw9hhx8kf462qtgu37p7l7shyqgpfr82r6em" },
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEnv(t)
			addr := tc.addr(datagen.GenRandomBech32Address(e.r))

			err := e.k.InitGenesis(e.ctx, types.GenesisState{RegisteredContracts: []string{addr}})
			require.Error(t, err)
			e.requireRegistered(addr, false)
		})
	}
}

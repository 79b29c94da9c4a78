package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "cw20adapter"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// ContractName is recorded on instantiation, in the same spirit as cw2 contract info
	ContractName = "babylon:cw20-adapter"
)

var (
	RegisteredContractsKey = collections.NewPrefix(1) // key prefix for the set of registered CW-20 addresses
	ContractNameKey        = collections.NewPrefix(2) // key prefix for the recorded contract name
	ContractVersionKey     = collections.NewPrefix(3) // key prefix for the recorded contract version
)

package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/cw20adapter module sentinel errors
var (
	ErrContractAlreadyRegistered             = errorsmod.Register(ModuleName, 2, "CW-20 contract with the same address was already registered")
	ErrContractNotRegistered                 = errorsmod.Register(ModuleName, 3, "CW-20 contract is not registered")
	ErrNotCw20Address                        = errorsmod.Register(ModuleName, 4, "address is not a CW-20 contract")
	ErrNoRegisteredTokensProvided            = errorsmod.Register(ModuleName, 5, "no registered tokens provided")
	ErrNotEnoughBalanceToPayDenomCreationFee = errorsmod.Register(ModuleName, 6, "not enough balance to pay the denom creation fee")
	ErrSuperfluousFundsProvided              = errorsmod.Register(ModuleName, 7, "superfluous funds provided")
	ErrNotCw20Denom                          = errorsmod.Register(ModuleName, 8, "denom is not an adapter token-factory denom")
	ErrInvalidExecuteMsg                     = errorsmod.Register(ModuleName, 9, "invalid execute message")
	ErrInvalidQueryMsg                       = errorsmod.Register(ModuleName, 10, "invalid query message")
)

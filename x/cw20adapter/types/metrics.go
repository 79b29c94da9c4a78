package types

import (
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"
)

// performance oriented metrics measuring the execution time of each command
const (
	MetricsKeyExecute = "execute"
)

const (
	// MetricsKeyRegisteredContracts counts CW-20 contracts registered, explicitly or on first deposit
	MetricsKeyRegisteredContracts = "registered_contracts"
	// MetricsKeyDeposits counts CW-20 deposits turned into factory tokens
	MetricsKeyDeposits = "deposits"
	// MetricsKeyRedemptions counts factory tokens redeemed for CW-20 tokens
	MetricsKeyRedemptions = "redemptions"
)

// contract addresses are never used as label values
var labels = []metrics.Label{
	telemetry.NewLabel(telemetry.MetricLabelNameModule, ModuleName),
}

// IncrementRegisteredContracts is triggered once a contract enters the registry
func IncrementRegisteredContracts() {
	telemetry.IncrCounterWithLabels([]string{MetricsKeyRegisteredContracts}, 1, labels)
}

// RecordDeposit records the amount minted for a deposit of CW-20 tokens
func RecordDeposit(amount sdkmath.Int) {
	telemetry.IncrCounterWithLabels([]string{MetricsKeyDeposits}, toFloat32(amount), labels)
}

// RecordRedemption records the amount burnt for a redemption of CW-20 tokens
func RecordRedemption(amount sdkmath.Int) {
	telemetry.IncrCounterWithLabels([]string{MetricsKeyRedemptions}, toFloat32(amount), labels)
}

// toFloat32 loses precision above 2^24
func toFloat32(amount sdkmath.Int) float32 {
	f, err := amount.ToLegacyDec().Float64()
	if err != nil {
		return 0
	}
	return float32(f)
}

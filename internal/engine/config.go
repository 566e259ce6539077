package engine

import (
	"fmt"
	"rebalancer/types"

	"github.com/shopspring/decimal"
)

// Quantity scale when sizing buy orders, rounded half up.
const financialScale = 4

// Config carries the functional constraints of a rebalancing run. Both
// values are read-only inputs shared by every portfolio in a batch.
type Config struct {
	driftThreshold float64
	tradeMinimum   decimal.Decimal
	showProgress   bool
}

// NewConfig validates and builds a run configuration. The drift threshold is
// a fraction in [0, 1); the trade minimum is a non-negative money amount.
func NewConfig(driftThreshold float64, tradeMinimum decimal.Decimal) (Config, error) {
	if driftThreshold < 0 || driftThreshold >= 1 {
		return Config{}, fmt.Errorf("drift threshold %v must be in [0, 1): %w", driftThreshold, types.ErrInvalidInput)
	}
	if tradeMinimum.IsNegative() {
		return Config{}, fmt.Errorf("trade minimum %s cannot be negative: %w", tradeMinimum, types.ErrInvalidInput)
	}
	return Config{
		driftThreshold: driftThreshold,
		tradeMinimum:   tradeMinimum,
	}, nil
}

// WithProgress enables a progress bar over batch runs.
func (c Config) WithProgress() Config {
	c.showProgress = true
	return c
}

package engine

import (
	"rebalancer/types"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testLot(t *testing.T, purchased time.Time, price, quantity string) types.TaxLot {
	t.Helper()
	lot, err := types.NewTaxLot(purchased, d(price), d(quantity))
	if err != nil {
		t.Fatalf("NewTaxLot() error = %v", err)
	}
	return lot
}

func testPosition(t *testing.T, class types.AssetClass, lots ...types.TaxLot) types.AssetPosition {
	t.Helper()
	position, err := types.NewAssetPosition(class, lots)
	if err != nil {
		t.Fatalf("NewAssetPosition() error = %v", err)
	}
	return position
}

func testPortfolio(t *testing.T, id string, positions map[types.AssetClass]types.AssetPosition, targets map[types.AssetClass]float64) types.Portfolio {
	t.Helper()
	portfolio, err := types.NewPortfolio(id, positions, targets)
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}
	return portfolio
}

// fixedSelector pins "today" so wash-sale and holding-period boundaries are
// exact in tests.
func fixedSelector(today time.Time) *LotSelector {
	return &LotSelector{now: func() time.Time { return today }}
}

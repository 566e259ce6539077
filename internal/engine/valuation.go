package engine

import (
	"errors"
	"fmt"
	"rebalancer/types"

	"github.com/shopspring/decimal"
)

// Global error declarations.
var (
	MissingPriceErr = errors.New("missing market price for asset class")
	InvalidPriceErr = errors.New("invalid market price for asset class")
)

// TotalMarketValue sums the market value of every position in the portfolio.
// Every held asset class must have a price in the table.
func TotalMarketValue(portfolio types.Portfolio, prices types.PriceTable) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, class := range portfolio.HeldClasses() {
		position, _ := portfolio.Position(class)
		value, err := PositionMarketValue(position, prices)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(value)
	}
	return total, nil
}

// PositionMarketValue values a single position at the current price.
func PositionMarketValue(position types.AssetPosition, prices types.PriceTable) (decimal.Decimal, error) {
	price, ok := prices.Price(position.AssetClass())
	if !ok {
		return decimal.Zero, fmt.Errorf("%s: %w", position.AssetClass(), MissingPriceErr)
	}
	return position.TotalQuantity().Mul(price), nil
}

// CurrentAllocations returns the fraction of total value held per asset
// class. A portfolio with no value has no exposure, so every target class
// maps to zero rather than dividing by zero. Fractions only drive threshold
// comparisons, so float64 is precise enough here.
func CurrentAllocations(portfolio types.Portfolio, totalValue decimal.Decimal, prices types.PriceTable) (map[types.AssetClass]float64, error) {
	allocations := make(map[types.AssetClass]float64)
	if totalValue.IsZero() {
		for class := range portfolio.TargetAllocation() {
			allocations[class] = 0
		}
		return allocations, nil
	}

	for class, position := range portfolio.Positions() {
		value, err := PositionMarketValue(position, prices)
		if err != nil {
			return nil, err
		}
		allocations[class] = value.Div(totalValue).InexactFloat64()
	}
	return allocations, nil
}

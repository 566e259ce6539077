package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AssetPosition is the total holding in one asset class within a portfolio,
// composed of the tax lots that built it up. The lot slice is copied at
// construction and lot order is preserved as given.
type AssetPosition struct {
	assetClass AssetClass
	lots       []TaxLot
}

func NewAssetPosition(assetClass AssetClass, lots []TaxLot) (AssetPosition, error) {
	if assetClass == "" {
		return AssetPosition{}, fmt.Errorf("asset position needs an asset class: %w", ErrInvalidInput)
	}
	if lots == nil {
		return AssetPosition{}, fmt.Errorf("asset position needs a lot list: %w", ErrInvalidInput)
	}
	return AssetPosition{
		assetClass: assetClass,
		lots:       append([]TaxLot(nil), lots...),
	}, nil
}

func (p AssetPosition) AssetClass() AssetClass {
	return p.assetClass
}

// Lots returns a copy of the position's tax lots in insertion order.
func (p AssetPosition) Lots() []TaxLot {
	return append([]TaxLot(nil), p.lots...)
}

// TotalQuantity sums the units held across all lots.
func (p AssetPosition) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, lot := range p.lots {
		total = total.Add(lot.Quantity)
	}
	return total
}

package types

import "github.com/shopspring/decimal"

// PriceTable maps an asset class to its current market price per unit.
// A table is read-only for the duration of a batch run.
type PriceTable map[AssetClass]decimal.Decimal

// Price looks up the price for an asset class.
func (t PriceTable) Price(class AssetClass) (decimal.Decimal, bool) {
	price, ok := t[class]
	return price, ok
}

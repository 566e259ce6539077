package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Global error declarations.
var ErrInvalidInput = errors.New("invalid input")

// TaxLot is a single purchase of an asset at a specific price and date,
// tracked separately for cost-basis purposes. A lot is never mutated;
// selling from it produces a derived (lot, quantity sold) pair.
type TaxLot struct {
	PurchaseDate  time.Time
	PurchasePrice decimal.Decimal
	Quantity      decimal.Decimal
}

func NewTaxLot(purchaseDate time.Time, purchasePrice, quantity decimal.Decimal) (TaxLot, error) {
	if purchaseDate.IsZero() {
		return TaxLot{}, fmt.Errorf("tax lot purchase date is required: %w", ErrInvalidInput)
	}
	if purchasePrice.IsNegative() || quantity.IsNegative() {
		return TaxLot{}, fmt.Errorf("tax lot price and quantity cannot be negative: %w", ErrInvalidInput)
	}
	return TaxLot{
		PurchaseDate:  purchaseDate,
		PurchasePrice: purchasePrice,
		Quantity:      quantity,
	}, nil
}

// MarketValue is the value of the whole lot at the given price.
func (l TaxLot) MarketValue(currentPrice decimal.Decimal) decimal.Decimal {
	return l.Quantity.Mul(currentPrice)
}

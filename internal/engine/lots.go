package engine

import (
	"rebalancer/types"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// Lots held longer than this count as long-term for tax purposes.
	longTermHoldingDays = 365
	// Lots purchased within this window (inclusive) are never sold.
	washSalePeriodDays = 30

	// Quantity scale when splitting a partial lot.
	lotQuantityScale = 8
)

// Selling priority, lowest first.
const (
	tierShortTermLoss = 1
	tierLongTermLoss  = 2
	tierLongTermGain  = 3
	tierShortTermGain = 4
)

// LotSale is one selected lot and the quantity to sell from it.
type LotSale struct {
	Lot          types.TaxLot
	QuantitySold decimal.Decimal
}

// LotSelector picks which tax lots to liquidate to raise a target amount of
// cash while minimizing the tax bill.
type LotSelector struct {
	now func() time.Time
}

func NewLotSelector() *LotSelector {
	return &LotSelector{now: time.Now}
}

// SelectLotsToSell selects lots from the position worth up to amountToSell
// at the current price, in selling-priority order: short-term losses, then
// long-term losses (largest loss first within each), then long-term gains,
// then short-term gains (smallest gain first within each). Whole lots are
// consumed while they fit; the last lot may be split. If eligible lots run
// out before the amount is reached, the shortfall is accepted silently.
//
// The wash-sale check looks only at the lot's own purchase date, not at
// repurchases elsewhere. A full implementation would scan the surrounding
// 30-day window across the whole portfolio.
func (s *LotSelector) SelectLotsToSell(position types.AssetPosition, amountToSell, currentPrice decimal.Decimal) []LotSale {
	today := s.now()

	lots := position.Lots()
	eligible := make([]types.TaxLot, 0, len(lots))
	for _, lot := range lots {
		if isWashSale(lot, today) {
			continue
		}
		eligible = append(eligible, lot)
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return sellsBefore(eligible[i], eligible[j], currentPrice, today)
	})

	remaining := amountToSell
	var sales []LotSale
	for _, lot := range eligible {
		if remaining.Sign() <= 0 {
			break
		}

		lotValue := lot.MarketValue(currentPrice)
		var quantity decimal.Decimal
		if lotValue.Cmp(remaining) <= 0 {
			// Consume the whole lot.
			quantity = lot.Quantity
			remaining = remaining.Sub(lotValue)
		} else {
			// Split the lot, rounding the quantity down so the sale value
			// never exceeds what is still needed.
			quantity = remaining.Div(currentPrice).RoundDown(lotQuantityScale)
			if quantity.GreaterThan(lot.Quantity) {
				quantity = lot.Quantity
			}
			remaining = decimal.Zero
		}

		if quantity.Sign() > 0 {
			sales = append(sales, LotSale{Lot: lot, QuantitySold: quantity})
		}
	}
	return sales
}

// sellsBefore orders lots by tier, then by unrealized gain ascending: within
// the loss tiers that puts the largest loss first, within the gain tiers the
// smallest gain first.
func sellsBefore(a, b types.TaxLot, currentPrice decimal.Decimal, today time.Time) bool {
	tierA := lotTier(a, currentPrice, today)
	tierB := lotTier(b, currentPrice, today)
	if tierA != tierB {
		return tierA < tierB
	}
	return unrealizedGain(a, currentPrice).LessThan(unrealizedGain(b, currentPrice))
}

func lotTier(lot types.TaxLot, currentPrice decimal.Decimal, today time.Time) int {
	longTerm := daysBetween(lot.PurchaseDate, today) > longTermHoldingDays
	if unrealizedGain(lot, currentPrice).IsNegative() {
		if longTerm {
			return tierLongTermLoss
		}
		return tierShortTermLoss
	}
	if longTerm {
		return tierLongTermGain
	}
	return tierShortTermGain
}

// unrealizedGain is the per-unit gain or loss of selling the lot today.
func unrealizedGain(lot types.TaxLot, currentPrice decimal.Decimal) decimal.Decimal {
	return currentPrice.Sub(lot.PurchasePrice)
}

func isWashSale(lot types.TaxLot, today time.Time) bool {
	return daysBetween(lot.PurchaseDate, today) <= washSalePeriodDays
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

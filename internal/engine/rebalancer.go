package engine

import (
	"fmt"
	"math"
	"rebalancer/types"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Rebalancer turns per-asset-class allocation drift into an ordered trade
// plan, selling tax-efficiently before buying from the raised cash.
type Rebalancer struct {
	cfg      Config
	selector *LotSelector
	log      zerolog.Logger
}

func NewRebalancer(cfg Config, log zerolog.Logger) *Rebalancer {
	return &Rebalancer{
		cfg:      cfg,
		selector: NewLotSelector(),
		log:      log.With().Str("service", "rebalancer").Logger(),
	}
}

// Rebalance computes the trade plan for a single portfolio. Sell orders are
// generated first for every overweight asset class, then the raised cash is
// spent on underweight classes, in canonical asset-class order. Sells always
// precede buys in the returned plan. Buys are not guaranteed to fully close
// the drift when the sell pass raised too little cash.
func (r *Rebalancer) Rebalance(portfolio types.Portfolio, prices types.PriceTable) (types.RebalancingResult, error) {
	totalValue, err := TotalMarketValue(portfolio, prices)
	if err != nil {
		return types.RebalancingResult{}, err
	}
	allocations, err := CurrentAllocations(portfolio, totalValue, prices)
	if err != nil {
		return types.RebalancingResult{}, err
	}

	targets := portfolio.TargetAllocation()
	classes := portfolio.TargetClasses()

	var sellOrders []types.TradeOrder
	cashFromSales := decimal.Zero
	totalRealizedGainLoss := decimal.Zero

	// Sell pass: overweight classes raise cash first.
	for _, class := range classes {
		drift := allocations[class] - targets[class]
		if drift <= r.cfg.driftThreshold {
			continue
		}
		tradeAmount := totalValue.Mul(decimal.NewFromFloat(math.Abs(drift)))
		if tradeAmount.Cmp(r.cfg.tradeMinimum) < 0 {
			continue
		}
		position, ok := portfolio.Position(class)
		if !ok {
			continue
		}
		price, ok := prices.Price(class)
		if !ok {
			return types.RebalancingResult{}, fmt.Errorf("%s: %w", class, MissingPriceErr)
		}

		for _, sale := range r.selector.SelectLotsToSell(position, tradeAmount, price) {
			saleValue := sale.QuantitySold.Mul(price)
			order, err := types.NewTradeOrder(class, types.OrderTypeSell, sale.QuantitySold, saleValue)
			if err != nil {
				return types.RebalancingResult{}, err
			}
			sellOrders = append(sellOrders, order)
			cashFromSales = cashFromSales.Add(saleValue)

			costBasis := sale.Lot.PurchasePrice.Mul(sale.QuantitySold)
			totalRealizedGainLoss = totalRealizedGainLoss.Add(saleValue.Sub(costBasis))
		}
	}

	var buyOrders []types.TradeOrder

	// Buy pass: spend the raised cash on underweight classes. Funding order
	// is the same canonical class order, so which class gets funded first
	// when cash is short is deterministic.
	for _, class := range classes {
		drift := allocations[class] - targets[class]
		if drift >= -r.cfg.driftThreshold {
			continue
		}
		requiredAmount := totalValue.Mul(decimal.NewFromFloat(math.Abs(drift)))
		amountToBuy := decimal.Min(requiredAmount, cashFromSales)
		if amountToBuy.Cmp(r.cfg.tradeMinimum) < 0 {
			continue
		}
		price, ok := prices.Price(class)
		if !ok || price.Sign() <= 0 {
			return types.RebalancingResult{}, fmt.Errorf("cannot size buy order for %s: %w", class, InvalidPriceErr)
		}

		quantity := amountToBuy.DivRound(price, financialScale)
		order, err := types.NewTradeOrder(class, types.OrderTypeBuy, quantity, amountToBuy)
		if err != nil {
			return types.RebalancingResult{}, err
		}
		buyOrders = append(buyOrders, order)
		cashFromSales = cashFromSales.Sub(amountToBuy)
	}

	orders := append(sellOrders, buyOrders...)
	return types.NewRebalancingResult(portfolio.ID(), orders, totalRealizedGainLoss), nil
}

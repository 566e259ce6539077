package types

import "github.com/shopspring/decimal"

// RebalancingResult is the full trade plan for one portfolio. Sell orders
// always precede buy orders. The order slice is copied at construction.
type RebalancingResult struct {
	PortfolioID           string
	Orders                []TradeOrder
	TotalRealizedGainLoss decimal.Decimal
}

func NewRebalancingResult(portfolioID string, orders []TradeOrder, totalRealizedGainLoss decimal.Decimal) RebalancingResult {
	return RebalancingResult{
		PortfolioID:           portfolioID,
		Orders:                append([]TradeOrder(nil), orders...),
		TotalRealizedGainLoss: totalRealizedGainLoss,
	}
}

// EmptyRebalancingResult is the zero-effect plan used when a portfolio needs
// no trades or its computation failed.
func EmptyRebalancingResult(portfolioID string) RebalancingResult {
	return RebalancingResult{
		PortfolioID:           portfolioID,
		TotalRealizedGainLoss: decimal.Zero,
	}
}

package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TradeOrder is one buy or sell instruction produced by a rebalancing run.
type TradeOrder struct {
	AssetClass  AssetClass
	OrderType   OrderType
	Quantity    decimal.Decimal
	MarketValue decimal.Decimal
}

func NewTradeOrder(assetClass AssetClass, orderType OrderType, quantity, marketValue decimal.Decimal) (TradeOrder, error) {
	if assetClass == "" {
		return TradeOrder{}, fmt.Errorf("trade order needs an asset class: %w", ErrInvalidInput)
	}
	if orderType != OrderTypeBuy && orderType != OrderTypeSell {
		return TradeOrder{}, fmt.Errorf("trade order type %q is unknown: %w", orderType, ErrInvalidInput)
	}
	return TradeOrder{
		AssetClass:  assetClass,
		OrderType:   orderType,
		Quantity:    quantity,
		MarketValue: marketValue,
	}, nil
}

package pricing

import (
	"context"
	"rebalancer/types"
	"testing"

	"github.com/shopspring/decimal"
)

func TestStaticCurrentPricesIsolated(t *testing.T) {
	source := types.PriceTable{types.Stocks: decimal.RequireFromString("205.50")}
	static := NewStatic(source)

	// Neither mutating the source nor the returned table may leak through.
	source[types.Stocks] = decimal.Zero

	table, err := static.CurrentPrices(context.Background())
	if err != nil {
		t.Fatalf("CurrentPrices() error = %v", err)
	}
	if price, _ := table.Price(types.Stocks); !price.Equal(decimal.RequireFromString("205.50")) {
		t.Errorf("stocks price = %s, want 205.50", price)
	}

	table[types.Bonds] = decimal.Zero
	again, err := static.CurrentPrices(context.Background())
	if err != nil {
		t.Fatalf("CurrentPrices() error = %v", err)
	}
	if _, ok := again.Price(types.Bonds); ok {
		t.Error("mutating a returned table reached the source")
	}
}

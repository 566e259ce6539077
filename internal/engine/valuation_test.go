package engine

import (
	"errors"
	"math"
	"rebalancer/types"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var valuationDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func TestTotalMarketValue(t *testing.T) {
	stocks := testPosition(t, types.Stocks,
		testLot(t, valuationDate.AddDate(-2, 0, 0), "100.00", "350"),
		testLot(t, valuationDate.AddDate(0, -6, 0), "150.00", "100"),
	)
	bonds := testPosition(t, types.Bonds,
		testLot(t, valuationDate.AddDate(-3, 0, 0), "95.00", "300"),
	)

	tests := []struct {
		name      string
		positions map[types.AssetClass]types.AssetPosition
		prices    types.PriceTable
		want      decimal.Decimal
		wantErr   error
	}{
		{
			name:      "empty portfolio is worthless",
			positions: map[types.AssetClass]types.AssetPosition{},
			prices:    types.PriceTable{types.Stocks: d("205.50")},
			want:      decimal.Zero,
		},
		{
			name: "sums quantity times price over every position",
			positions: map[types.AssetClass]types.AssetPosition{
				types.Stocks: stocks,
				types.Bonds:  bonds,
			},
			prices: types.PriceTable{types.Stocks: d("200"), types.Bonds: d("100")},
			// 450 * 200 + 300 * 100
			want: d("120000"),
		},
		{
			name: "held class without a price fails",
			positions: map[types.AssetClass]types.AssetPosition{
				types.Stocks: stocks,
				types.Bonds:  bonds,
			},
			prices:  types.PriceTable{types.Stocks: d("200")},
			wantErr: MissingPriceErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			portfolio := testPortfolio(t, "p1", tt.positions, map[types.AssetClass]float64{types.Stocks: 0.6, types.Bonds: 0.4})

			got, err := TotalMarketValue(portfolio, tt.prices)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("TotalMarketValue() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("TotalMarketValue() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("TotalMarketValue() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCurrentAllocations(t *testing.T) {
	stocks := testPosition(t, types.Stocks, testLot(t, valuationDate.AddDate(-1, 0, 0), "50", "75"))
	bonds := testPosition(t, types.Bonds, testLot(t, valuationDate.AddDate(-1, 0, 0), "90", "25"))
	portfolio := testPortfolio(t, "p1",
		map[types.AssetClass]types.AssetPosition{types.Stocks: stocks, types.Bonds: bonds},
		map[types.AssetClass]float64{types.Stocks: 0.6, types.Bonds: 0.4},
	)
	prices := types.PriceTable{types.Stocks: d("100"), types.Bonds: d("100")}

	allocations, err := CurrentAllocations(portfolio, d("10000"), prices)
	if err != nil {
		t.Fatalf("CurrentAllocations() error = %v", err)
	}
	if got := allocations[types.Stocks]; math.Abs(got-0.75) > 1e-9 {
		t.Errorf("stocks allocation = %v, want 0.75", got)
	}
	if got := allocations[types.Bonds]; math.Abs(got-0.25) > 1e-9 {
		t.Errorf("bonds allocation = %v, want 0.25", got)
	}
}

func TestCurrentAllocationsZeroValue(t *testing.T) {
	portfolio := testPortfolio(t, "p1",
		map[types.AssetClass]types.AssetPosition{},
		map[types.AssetClass]float64{types.Stocks: 0.6, types.Bonds: 0.4},
	)

	allocations, err := CurrentAllocations(portfolio, decimal.Zero, types.PriceTable{})
	if err != nil {
		t.Fatalf("CurrentAllocations() error = %v", err)
	}
	if len(allocations) != 2 {
		t.Fatalf("expected an entry per target class, got %d", len(allocations))
	}
	for class, fraction := range allocations {
		if fraction != 0 {
			t.Errorf("allocation for %s = %v, want 0", class, fraction)
		}
	}
}

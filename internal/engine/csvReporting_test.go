package engine

import (
	"bytes"
	"encoding/csv"
	"rebalancer/types"
	"testing"
)

func TestWriteResultsCSV(t *testing.T) {
	sell, err := types.NewTradeOrder(types.Stocks, types.OrderTypeSell, d("15"), d("1500"))
	if err != nil {
		t.Fatalf("NewTradeOrder() error = %v", err)
	}
	buy, err := types.NewTradeOrder(types.Bonds, types.OrderTypeBuy, d("15"), d("1500"))
	if err != nil {
		t.Fatalf("NewTradeOrder() error = %v", err)
	}
	results := []types.RebalancingResult{
		types.NewRebalancingResult("p1", []types.TradeOrder{sell, buy}, d("750")),
		types.EmptyRebalancingResult("p2"),
	}

	var buf bytes.Buffer
	if err := writeResultsCSV(&buf, results); err != nil {
		t.Fatalf("writeResultsCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv back: %v", err)
	}
	// Header plus one row per order; the empty result contributes nothing.
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	want := []string{"p1", "STOCKS", "SELL", "15", "1500", "750"}
	for i, field := range want {
		if records[1][i] != field {
			t.Errorf("record[1][%d] = %q, want %q", i, records[1][i], field)
		}
	}
	if records[2][2] != "BUY" {
		t.Errorf("record[2] order type = %q, want BUY", records[2][2])
	}
}

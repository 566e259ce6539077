package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"rebalancer/types"
)

// WriteResultsCSVFile writes the batch's trade plans to a CSV file at the
// given path, one row per order.
func WriteResultsCSVFile(path string, results []types.RebalancingResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer f.Close()

	return writeResultsCSV(f, results)
}

// writeResultsCSV writes trade plans to any io.Writer as CSV.
// You can pass os.Stdout for debugging, or a file.
func writeResultsCSV(w io.Writer, results []types.RebalancingResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"portfolio_id",
		"asset_class",
		"order_type",
		"quantity",
		"market_value",
		"total_realized_gain_loss",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, result := range results {
		for _, order := range result.Orders {
			record := []string{
				result.PortfolioID,
				string(order.AssetClass),
				string(order.OrderType),
				order.Quantity.String(),
				order.MarketValue.String(),
				result.TotalRealizedGainLoss.String(),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("write record: %w", err)
			}
		}
	}

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

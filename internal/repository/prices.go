package repository

import (
	"context"
	"fmt"
	"rebalancer/types"

	"github.com/shopspring/decimal"
)

const latestPricesQuery = `
	SELECT DISTINCT ON (asset_class) asset_class, price
	FROM prices
	ORDER BY asset_class, quoted_at DESC`

// CurrentPrices returns the most recently quoted price per asset class.
func (db *Database) CurrentPrices(ctx context.Context) (types.PriceTable, error) {
	rows, err := db.conn.Query(ctx, latestPricesQuery)
	if err != nil {
		return nil, fmt.Errorf("query prices: %w", err)
	}
	defer rows.Close()

	prices := make(types.PriceTable)
	for rows.Next() {
		var class string
		var price decimal.Decimal
		if err := rows.Scan(&class, &price); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		prices[types.AssetClass(class)] = price
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, ErrNoPrices
	}
	return prices, nil
}

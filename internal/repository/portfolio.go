package repository

import (
	"context"
	"fmt"
	"rebalancer/types"
	"time"

	"github.com/shopspring/decimal"
)

const (
	targetsQuery = `
		SELECT portfolio_id, asset_class, target_fraction
		FROM allocation_targets`

	lotsQuery = `
		SELECT portfolio_id, asset_class, purchase_date, purchase_price, quantity
		FROM tax_lots
		ORDER BY portfolio_id, asset_class, purchase_date`
)

// Flat row shapes, assembled into domain portfolios by buildPortfolios.
type targetRow struct {
	portfolioID string
	assetClass  string
	fraction    float64
}

type lotRow struct {
	portfolioID   string
	assetClass    string
	purchaseDate  time.Time
	purchasePrice decimal.Decimal
	quantity      decimal.Decimal
}

// FindAll loads every portfolio with its allocation targets and tax lots.
func (db *Database) FindAll(ctx context.Context) ([]types.Portfolio, error) {
	targets, err := db.queryTargets(ctx, targetsQuery)
	if err != nil {
		return nil, fmt.Errorf("query allocation targets: %w", err)
	}
	lots, err := db.queryLots(ctx, lotsQuery)
	if err != nil {
		return nil, fmt.Errorf("query tax lots: %w", err)
	}
	return buildPortfolios(targets, lots)
}

// FindByID loads one portfolio, or ErrPortfolioNotFound.
func (db *Database) FindByID(ctx context.Context, id string) (types.Portfolio, error) {
	targets, err := db.queryTargets(ctx, targetsQuery+` WHERE portfolio_id = $1`, id)
	if err != nil {
		return types.Portfolio{}, fmt.Errorf("query allocation targets: %w", err)
	}
	if len(targets) == 0 {
		return types.Portfolio{}, fmt.Errorf("portfolio %s %w", id, ErrPortfolioNotFound)
	}
	lots, err := db.queryLots(ctx, `
		SELECT portfolio_id, asset_class, purchase_date, purchase_price, quantity
		FROM tax_lots
		WHERE portfolio_id = $1
		ORDER BY asset_class, purchase_date`, id)
	if err != nil {
		return types.Portfolio{}, fmt.Errorf("query tax lots: %w", err)
	}
	portfolios, err := buildPortfolios(targets, lots)
	if err != nil {
		return types.Portfolio{}, err
	}
	return portfolios[0], nil
}

func (db *Database) queryTargets(ctx context.Context, query string, args ...any) ([]targetRow, error) {
	rows, err := db.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []targetRow
	for rows.Next() {
		var row targetRow
		if err := rows.Scan(&row.portfolioID, &row.assetClass, &row.fraction); err != nil {
			return nil, err
		}
		targets = append(targets, row)
	}
	return targets, rows.Err()
}

func (db *Database) queryLots(ctx context.Context, query string, args ...any) ([]lotRow, error) {
	rows, err := db.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lots []lotRow
	for rows.Next() {
		var row lotRow
		if err := rows.Scan(&row.portfolioID, &row.assetClass, &row.purchaseDate, &row.purchasePrice, &row.quantity); err != nil {
			return nil, err
		}
		lots = append(lots, row)
	}
	return lots, rows.Err()
}

// buildPortfolios groups flat target and lot rows into domain portfolios.
// Every portfolio needs at least one allocation target; lots for unknown
// portfolios are rejected rather than dropped.
func buildPortfolios(targets []targetRow, lots []lotRow) ([]types.Portfolio, error) {
	targetsByID := make(map[string]map[types.AssetClass]float64)
	var ids []string
	for _, row := range targets {
		if targetsByID[row.portfolioID] == nil {
			targetsByID[row.portfolioID] = make(map[types.AssetClass]float64)
			ids = append(ids, row.portfolioID)
		}
		targetsByID[row.portfolioID][types.AssetClass(row.assetClass)] = row.fraction
	}

	lotsByID := make(map[string]map[types.AssetClass][]types.TaxLot)
	for _, row := range lots {
		if targetsByID[row.portfolioID] == nil {
			return nil, fmt.Errorf("tax lot references portfolio %s with no allocation targets: %w", row.portfolioID, types.ErrInvalidInput)
		}
		lot, err := types.NewTaxLot(row.purchaseDate, row.purchasePrice, row.quantity)
		if err != nil {
			return nil, fmt.Errorf("portfolio %s: %w", row.portfolioID, err)
		}
		if lotsByID[row.portfolioID] == nil {
			lotsByID[row.portfolioID] = make(map[types.AssetClass][]types.TaxLot)
		}
		class := types.AssetClass(row.assetClass)
		lotsByID[row.portfolioID][class] = append(lotsByID[row.portfolioID][class], lot)
	}

	portfolios := make([]types.Portfolio, 0, len(ids))
	for _, id := range ids {
		positions := make(map[types.AssetClass]types.AssetPosition)
		for class, classLots := range lotsByID[id] {
			position, err := types.NewAssetPosition(class, classLots)
			if err != nil {
				return nil, fmt.Errorf("portfolio %s: %w", id, err)
			}
			positions[class] = position
		}
		portfolio, err := types.NewPortfolio(id, positions, targetsByID[id])
		if err != nil {
			return nil, err
		}
		portfolios = append(portfolios, portfolio)
	}
	return portfolios, nil
}

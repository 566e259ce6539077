package main

import (
	"rebalancer/internal/repository"
	"rebalancer/types"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// loadSampleData seeds the in-memory store the way a migration or ETL
// process would seed a database: one drifted portfolio, one within
// threshold, and one with tax-loss-harvesting opportunities.
func loadSampleData(repo *repository.Memory) {
	now := time.Now()

	// Portfolio 1: significantly drifted, requires rebalancing.
	repo.Save(mustPortfolio(
		map[types.AssetClass][]types.TaxLot{
			types.Stocks: {
				mustLot(now.AddDate(-2, 0, 0), "100.00", "350"),
				mustLot(now.AddDate(0, -6, 0), "150.00", "100"),
			},
			types.Bonds: {
				mustLot(now.AddDate(-3, 0, 0), "95.00", "300"),
			},
		},
		map[types.AssetClass]float64{types.Stocks: 0.60, types.Bonds: 0.40},
	))

	// Portfolio 2: minor drift, within threshold.
	repo.Save(mustPortfolio(
		map[types.AssetClass][]types.TaxLot{
			types.Stocks: {
				mustLot(now.AddDate(-1, -1, 0), "50.00", "1000"),
			},
			types.Bonds: {
				mustLot(now.AddDate(-1, 0, 0), "100.00", "480"),
			},
		},
		map[types.AssetClass]float64{types.Stocks: 0.50, types.Bonds: 0.50},
	))

	// Portfolio 3: tax-loss harvesting opportunities, one lot inside the
	// wash-sale window.
	repo.Save(mustPortfolio(
		map[types.AssetClass][]types.TaxLot{
			types.Stocks: {
				mustLot(now.AddDate(0, 0, -90), "220.00", "100"),
				mustLot(now.AddDate(0, 0, -20), "210.00", "50"),
				mustLot(now.AddDate(-2, 0, 0), "100.00", "300"),
			},
			types.Bonds: {
				mustLot(now.AddDate(-4, 0, 0), "98.00", "150"),
			},
		},
		map[types.AssetClass]float64{types.Stocks: 0.40, types.Bonds: 0.60},
	))
}

func samplePrices() types.PriceTable {
	return types.PriceTable{
		types.Stocks: decimal.RequireFromString("205.50"),
		types.Bonds:  decimal.RequireFromString("101.25"),
	}
}

func mustPortfolio(lots map[types.AssetClass][]types.TaxLot, targets map[types.AssetClass]float64) types.Portfolio {
	positions := make(map[types.AssetClass]types.AssetPosition, len(lots))
	for class, classLots := range lots {
		position, err := types.NewAssetPosition(class, classLots)
		if err != nil {
			panic(err)
		}
		positions[class] = position
	}
	portfolio, err := types.NewPortfolio(uuid.NewString(), positions, targets)
	if err != nil {
		panic(err)
	}
	return portfolio
}

func mustLot(purchased time.Time, price, quantity string) types.TaxLot {
	lot, err := types.NewTaxLot(purchased, decimal.RequireFromString(price), decimal.RequireFromString(quantity))
	if err != nil {
		panic(err)
	}
	return lot
}

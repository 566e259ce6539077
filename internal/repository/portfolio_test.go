package repository

import (
	"errors"
	"rebalancer/types"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var purchase = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

func TestBuildPortfolios(t *testing.T) {
	targets := []targetRow{
		{portfolioID: "p1", assetClass: "STOCKS", fraction: 0.6},
		{portfolioID: "p1", assetClass: "BONDS", fraction: 0.4},
		{portfolioID: "p2", assetClass: "BONDS", fraction: 1.0},
	}
	lots := []lotRow{
		{portfolioID: "p1", assetClass: "STOCKS", purchaseDate: purchase, purchasePrice: decimal.RequireFromString("100"), quantity: decimal.RequireFromString("350")},
		{portfolioID: "p1", assetClass: "STOCKS", purchaseDate: purchase.AddDate(1, 0, 0), purchasePrice: decimal.RequireFromString("150"), quantity: decimal.RequireFromString("100")},
		{portfolioID: "p1", assetClass: "BONDS", purchaseDate: purchase, purchasePrice: decimal.RequireFromString("95"), quantity: decimal.RequireFromString("300")},
	}

	portfolios, err := buildPortfolios(targets, lots)
	if err != nil {
		t.Fatalf("buildPortfolios() error = %v", err)
	}
	if len(portfolios) != 2 {
		t.Fatalf("buildPortfolios() returned %d portfolios, want 2", len(portfolios))
	}

	p1 := portfolios[0]
	if p1.ID() != "p1" {
		t.Fatalf("first portfolio id = %s, want p1", p1.ID())
	}
	stocks, ok := p1.Position(types.Stocks)
	if !ok {
		t.Fatal("p1 is missing its stocks position")
	}
	if got := stocks.TotalQuantity(); !got.Equal(decimal.RequireFromString("450")) {
		t.Errorf("p1 stocks quantity = %s, want 450", got)
	}
	if got := len(stocks.Lots()); got != 2 {
		t.Errorf("p1 stocks lots = %d, want 2", got)
	}
	if got := p1.TargetAllocation()[types.Bonds]; got != 0.4 {
		t.Errorf("p1 bonds target = %v, want 0.4", got)
	}

	// p2 has targets but holds nothing: valid, just empty.
	p2 := portfolios[1]
	if len(p2.Positions()) != 0 {
		t.Errorf("p2 positions = %d, want 0", len(p2.Positions()))
	}
}

func TestBuildPortfoliosRejectsOrphanLot(t *testing.T) {
	lots := []lotRow{
		{portfolioID: "ghost", assetClass: "STOCKS", purchaseDate: purchase, purchasePrice: decimal.RequireFromString("100"), quantity: decimal.RequireFromString("1")},
	}

	_, err := buildPortfolios(nil, lots)
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("buildPortfolios() error = %v, want ErrInvalidInput", err)
	}
}

func TestBuildPortfoliosRejectsNegativeLot(t *testing.T) {
	targets := []targetRow{{portfolioID: "p1", assetClass: "STOCKS", fraction: 1.0}}
	lots := []lotRow{
		{portfolioID: "p1", assetClass: "STOCKS", purchaseDate: purchase, purchasePrice: decimal.RequireFromString("-1"), quantity: decimal.RequireFromString("1")},
	}

	_, err := buildPortfolios(targets, lots)
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("buildPortfolios() error = %v, want ErrInvalidInput", err)
	}
}

package repository

import (
	"context"
	"errors"
	"fmt"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Global error declarations.
var (
	ErrPortfolioNotFound = errors.New("portfolio not found in datasource")
	ErrNoPrices          = errors.New("no prices found in datasource")
)

// Database is a Postgres-backed portfolio store and price source.
//
// Expected schema:
//
//	allocation_targets(portfolio_id, asset_class, target_fraction)
//	tax_lots(portfolio_id, asset_class, purchase_date, purchase_price, quantity)
//	prices(asset_class, price, quoted_at)
type Database struct {
	conn *pgxpool.Pool
}

// NewDatabase creates a new Database instance and verifies connectivity.
func NewDatabase(dbURL string) (Database, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return Database{}, fmt.Errorf("parse config: %w", err)
	}
	// Register shopspring decimal
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	conn, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return Database{}, err
	}
	// Ensure the connection is established.
	if err := conn.Ping(context.Background()); err != nil {
		return Database{}, err
	}

	return Database{conn: conn}, nil
}

func (db *Database) Close() {
	db.conn.Close()
}

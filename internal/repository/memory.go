package repository

import (
	"context"
	"fmt"
	"rebalancer/types"
	"sort"
	"sync"
)

// Memory is an in-memory portfolio store. It is a passive container: data is
// loaded into it by the caller, the way a database would be seeded upstream.
type Memory struct {
	mu         sync.RWMutex
	portfolios map[string]types.Portfolio
}

func NewMemory() *Memory {
	return &Memory{portfolios: make(map[string]types.Portfolio)}
}

// Save inserts or replaces a portfolio.
func (m *Memory) Save(portfolio types.Portfolio) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.portfolios[portfolio.ID()] = portfolio
}

// FindAll returns every stored portfolio, ordered by ID for determinism.
func (m *Memory) FindAll(_ context.Context) ([]types.Portfolio, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	portfolios := make([]types.Portfolio, 0, len(m.portfolios))
	for _, portfolio := range m.portfolios {
		portfolios = append(portfolios, portfolio)
	}
	sort.Slice(portfolios, func(i, j int) bool { return portfolios[i].ID() < portfolios[j].ID() })
	return portfolios, nil
}

// FindByID returns one portfolio, or ErrPortfolioNotFound.
func (m *Memory) FindByID(_ context.Context, id string) (types.Portfolio, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	portfolio, ok := m.portfolios[id]
	if !ok {
		return types.Portfolio{}, fmt.Errorf("portfolio %s %w", id, ErrPortfolioNotFound)
	}
	return portfolio, nil
}

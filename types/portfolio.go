package types

import "fmt"

// Portfolio is a read-only view of one investor's holdings and target
// allocation. Both maps are copied at construction so later mutation of the
// caller's maps cannot reach the portfolio.
type Portfolio struct {
	id               string
	positions        map[AssetClass]AssetPosition
	targetAllocation map[AssetClass]float64
}

func NewPortfolio(id string, positions map[AssetClass]AssetPosition, targetAllocation map[AssetClass]float64) (Portfolio, error) {
	if id == "" {
		return Portfolio{}, fmt.Errorf("portfolio needs an id: %w", ErrInvalidInput)
	}
	if positions == nil || targetAllocation == nil {
		return Portfolio{}, fmt.Errorf("portfolio %s needs positions and target allocation maps: %w", id, ErrInvalidInput)
	}
	posCopy := make(map[AssetClass]AssetPosition, len(positions))
	for class, pos := range positions {
		posCopy[class] = pos
	}
	targetCopy := make(map[AssetClass]float64, len(targetAllocation))
	for class, target := range targetAllocation {
		targetCopy[class] = target
	}
	return Portfolio{
		id:               id,
		positions:        posCopy,
		targetAllocation: targetCopy,
	}, nil
}

func (p Portfolio) ID() string {
	return p.id
}

// Position returns the holding for one asset class, if any.
func (p Portfolio) Position(class AssetClass) (AssetPosition, bool) {
	pos, ok := p.positions[class]
	return pos, ok
}

// Positions returns a copy of the position map.
func (p Portfolio) Positions() map[AssetClass]AssetPosition {
	positions := make(map[AssetClass]AssetPosition, len(p.positions))
	for class, pos := range p.positions {
		positions[class] = pos
	}
	return positions
}

// TargetAllocation returns a copy of the target fraction per asset class.
func (p Portfolio) TargetAllocation() map[AssetClass]float64 {
	targets := make(map[AssetClass]float64, len(p.targetAllocation))
	for class, target := range p.targetAllocation {
		targets[class] = target
	}
	return targets
}

// TargetClasses returns the asset classes with a target, in canonical order.
func (p Portfolio) TargetClasses() []AssetClass {
	classes := make([]AssetClass, 0, len(p.targetAllocation))
	for class := range p.targetAllocation {
		classes = append(classes, class)
	}
	return SortedAssetClasses(classes)
}

// HeldClasses returns the asset classes with a position, in canonical order.
func (p Portfolio) HeldClasses() []AssetClass {
	classes := make([]AssetClass, 0, len(p.positions))
	for class := range p.positions {
		classes = append(classes, class)
	}
	return SortedAssetClasses(classes)
}

package types

import "sort"

type AssetClass string

type OrderType string

const (
	Stocks AssetClass = "STOCKS"
	Bonds  AssetClass = "BONDS"
	Cash   AssetClass = "CASH"

	OrderTypeBuy  OrderType = "BUY"
	OrderTypeSell OrderType = "SELL"
)

// Allocation maps have no stable range order, so every pass over asset
// classes sorts them by this rank first.
var assetClassRank = map[AssetClass]int{
	Stocks: 0,
	Bonds:  1,
	Cash:   2,
}

// SortedAssetClasses returns the classes in canonical order. Classes outside
// the known set sort last, alphabetically.
func SortedAssetClasses(classes []AssetClass) []AssetClass {
	sorted := append([]AssetClass(nil), classes...)
	sort.Slice(sorted, func(i, j int) bool {
		ri, iKnown := assetClassRank[sorted[i]]
		rj, jKnown := assetClassRank[sorted[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return sorted[i] < sorted[j]
		}
	})
	return sorted
}

package main

import (
	"fmt"
	"rebalancer/types"
)

func printResult(result types.RebalancingResult) {
	fmt.Printf("===== Rebalancing Plan for Portfolio %s =====\n", result.PortfolioID)
	if len(result.Orders) == 0 {
		fmt.Println("No rebalancing needed. Portfolio is within target allocation thresholds.")
	} else {
		fmt.Println("Generated Trade Orders:")
		for _, order := range result.Orders {
			fmt.Printf("  - %s %s: %s units for a total market value of $%s\n",
				order.OrderType,
				order.AssetClass,
				order.Quantity.StringFixed(4),
				order.MarketValue.StringFixed(2))
		}
		fmt.Printf("Total Realized Gain/Loss for Tax Purposes: $%s\n",
			result.TotalRealizedGainLoss.StringFixed(2))
	}
	fmt.Println("----------------------------------------------------")
}

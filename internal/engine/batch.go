package engine

import (
	"context"
	"rebalancer/types"

	"github.com/schollz/progressbar/v3"
)

// ProcessBatch rebalances every portfolio concurrently, one goroutine per
// portfolio, and joins before returning. A failure inside one portfolio's
// computation is reported on the log side channel and downgraded to an empty
// plan for that portfolio; sibling computations are unaffected. The returned
// slice holds exactly one result per input portfolio, in input order.
//
// Cancelling the context stops scheduling further portfolios; tasks already
// in flight run to completion and unscheduled portfolios get empty plans.
func (r *Rebalancer) ProcessBatch(ctx context.Context, portfolios []types.Portfolio, prices types.PriceTable) []types.RebalancingResult {
	type batchItem struct {
		idx    int
		result types.RebalancingResult
	}
	items := make(chan batchItem, len(portfolios))

	scheduled := 0
	for i, portfolio := range portfolios {
		if ctx.Err() != nil {
			r.log.Warn().Int("skipped", len(portfolios)-scheduled).Msg("Batch cancelled, not scheduling remaining portfolios")
			break
		}
		scheduled++
		go func(idx int, p types.Portfolio) {
			items <- batchItem{idx: idx, result: r.rebalanceTask(p, prices)}
		}(i, portfolio)
	}

	results := make([]types.RebalancingResult, len(portfolios))
	for i := range results {
		results[i] = types.EmptyRebalancingResult(portfolios[i].ID())
	}

	var bar *progressbar.ProgressBar
	if r.cfg.showProgress {
		bar = initProgressBar(scheduled)
	}
	for done := 0; done < scheduled; done++ {
		item := <-items
		results[item.idx] = item.result
		if bar != nil {
			bar.Add(1)
		}
	}
	return results
}

// rebalanceTask is the per-portfolio failure boundary: any error or panic is
// logged and replaced by a zero-effect plan so the batch keeps going.
func (r *Rebalancer) rebalanceTask(portfolio types.Portfolio, prices types.PriceTable) (result types.RebalancingResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().
				Str("portfolio_id", portfolio.ID()).
				Interface("panic", rec).
				Msg("Rebalancing panicked")
			result = types.EmptyRebalancingResult(portfolio.ID())
		}
	}()

	plan, err := r.Rebalance(portfolio, prices)
	if err != nil {
		r.log.Error().
			Err(err).
			Str("portfolio_id", portfolio.ID()).
			Msg("Failed to rebalance portfolio")
		return types.EmptyRebalancingResult(portfolio.ID())
	}
	return plan
}

func initProgressBar(maxTicks int) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Rebalancing portfolios..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

package main

import (
	"context"
	"os"
	"os/signal"
	"rebalancer/internal/engine"
	"rebalancer/internal/pricing"
	"rebalancer/internal/repository"
	"rebalancer/pkg/logger"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

const (
	defaultDriftThreshold = "0.05"
	defaultTradeMinimum   = "100.00"
)

func main() {
	_ = godotenv.Load()

	log := logger.New(logger.Config{
		Level:  envOr("REBALANCER_LOG_LEVEL", "info"),
		Pretty: os.Getenv("REBALANCER_LOG_PRETTY") == "true",
	})

	driftThreshold, err := strconv.ParseFloat(envOr("REBALANCER_DRIFT_THRESHOLD", defaultDriftThreshold), 64)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid REBALANCER_DRIFT_THRESHOLD")
	}
	tradeMinimum, err := decimal.NewFromString(envOr("REBALANCER_TRADE_MINIMUM", defaultTradeMinimum))
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid REBALANCER_TRADE_MINIMUM")
	}
	cfg, err := engine.NewConfig(driftThreshold, tradeMinimum)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	rebalancer := engine.NewRebalancer(cfg.WithProgress(), log)

	var eng *engine.Engine
	if dbURL := os.Getenv("REBALANCER_DATABASE_URL"); dbURL != "" {
		db, err := repository.NewDatabase(dbURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()
		eng = engine.NewEngine(&db, &db, rebalancer)
	} else {
		log.Info().Msg("No database configured, running on built-in sample data")
		repo := repository.NewMemory()
		loadSampleData(repo)
		eng = engine.NewEngine(repo, pricing.NewStatic(samplePrices()), rebalancer)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runOnce := func() {
		results, err := eng.Run(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Rebalancing run failed")
			return
		}
		for _, result := range results {
			printResult(result)
		}
		if path := os.Getenv("REBALANCER_CSV_PATH"); path != "" {
			if err := engine.WriteResultsCSVFile(path, results); err != nil {
				log.Error().Err(err).Str("path", path).Msg("Failed to write CSV report")
			}
		}
	}

	if spec := os.Getenv("REBALANCER_CRON"); spec != "" {
		c := cron.New()
		if _, err := c.AddFunc(spec, runOnce); err != nil {
			log.Fatal().Err(err).Str("cron", spec).Msg("Invalid REBALANCER_CRON expression")
		}
		log.Info().Str("cron", spec).Msg("Running on a schedule, Ctrl-C to stop")
		c.Start()
		<-ctx.Done()
		<-c.Stop().Done()
		return
	}

	runOnce()
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

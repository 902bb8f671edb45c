package runner

import (
	"context"
	"fmt"

	"gttwatch/config"
	"gttwatch/internal/watch/engine"
	"gttwatch/internal/watch/feed"
	"gttwatch/internal/watch/monitor"
	"gttwatch/internal/watch/watchlist"
	"gttwatch/pkg/bybit"
	"gttwatch/pkg/storage/postgres"

	"go.uber.org/zap"
)

// StartWatcher wires the GTT watch pipeline: watchlist from Postgres into the
// engine, a REST ticker snapshot to seed prices, the WebSocket stream for
// live updates, and the monitor loop evaluating triggers.
func StartWatcher(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {

	// Initialize PostgreSQL Client
	postgresClient, err := postgres.InitializeAndMigrate(cfg.Postgres, cfg.Log.Environment, true)
	if err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}

	// Engine with the configured approach ratio
	eng := engine.New()
	if err := eng.SetThreshold(cfg.Engine.ApproachRatio); err != nil {
		return fmt.Errorf("invalid approach ratio %v: %w", cfg.Engine.ApproachRatio, err)
	}

	// Load the watchlist now and keep reloading in the background
	loader := &watchlist.Loader{
		Source:  postgresClient,
		Engine:  eng,
		Timeout: cfg.Bybit.REST.Timeout,
		Logger:  logger,
	}
	if err := loader.Reload(); err != nil {
		return fmt.Errorf("initial watchlist load failed: %w", err)
	}
	loader.StartReloader(cfg.Engine.ReloadInterval)

	// Seed last prices from a REST snapshot so triggers can evaluate before
	// the first stream update lands
	restClient := bybit.NewRESTClient(cfg.Bybit.REST.BaseURL, cfg.Bybit.REST.Timeout)

	seedCtx, cancel := context.WithTimeout(ctx, cfg.Bybit.REST.Timeout)
	tickers, err := restClient.GetLinearTickers(seedCtx)
	cancel()
	if err != nil {
		logger.Warn("failed to seed prices from REST, continuing with stream only", zap.Error(err))
	} else {
		symbols, prices := bybit.SplitTickerPrices(tickers)
		outcomes := eng.UpdatePriceBatch(symbols, prices)

		applied := 0
		for _, o := range outcomes {
			if o.Applied {
				applied++
			} else {
				logger.Debug("seed row skipped", zap.String("symbol", o.Symbol), zap.String("reason", o.Reason))
			}
		}
		logger.Info("seeded prices from REST snapshot",
			zap.Int("applied", applied), zap.Int("rows", len(outcomes)))
	}

	// Live price stream
	wsClient := bybit.NewWSClient(cfg.Bybit.WS.URL, loader.Topics, logger)
	wsClient.SetMessageHandler(feed.MakeMessageHandler(logger, eng))
	if err := wsClient.Connect(); err != nil {
		return fmt.Errorf("websocket connect failed: %w", err)
	}
	go wsClient.Listen()

	// Trigger monitoring loop
	mon := &monitor.Monitor{
		Engine:   eng,
		Recorder: postgresClient,
		Logger:   logger,
		Interval: cfg.Engine.PollInterval,
	}
	go mon.Run(ctx)

	return nil
}

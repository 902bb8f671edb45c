package main

import (
	"context"

	"gttwatch/config"
	"gttwatch/internal/watch/runner"
	"gttwatch/logger"

	"go.uber.org/zap"
)

func main() {
	// viper config
	cfg := config.Load()

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	// run watcher
	if err := runner.StartWatcher(context.Background(), cfg, log); err != nil {
		log.Fatal("watcher failed", zap.Error(err))
	}

	select {}
}

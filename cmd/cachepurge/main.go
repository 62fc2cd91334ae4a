package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/minseokoh/localscope/internal/config"
	"github.com/minseokoh/localscope/internal/logger"
	"github.com/minseokoh/localscope/internal/purge"
)

// cachepurge deletes resource rows already past their freshness window.
// Run it once (default) or on an interval with -every.
func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.GetLogger("main")

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	every := flag.Duration("every", 0, "rerun interval (0 runs once and exits)")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("Shutting down...")
		cancel()
	}()

	purger, err := purge.New(ctx, cfg)
	if err != nil {
		log.Errorf("Failed to connect: %v", err)
		os.Exit(1)
	}
	defer purger.Close()

	if err := purger.Run(ctx); err != nil {
		log.Errorf("Purge failed: %v", err)
		os.Exit(1)
	}

	if *every <= 0 {
		return
	}

	ticker := time.NewTicker(*every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := purger.Run(ctx); err != nil {
				log.Errorf("Purge failed: %v", err)
			}
		}
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Akshat0071/portfolio/internal/analytics"
	"github.com/Akshat0071/portfolio/internal/page"
	"github.com/Akshat0071/portfolio/internal/storage"
	"github.com/Akshat0071/portfolio/internal/web"
)

const (
	sweepInterval   = time.Minute
	cleanupInterval = 24 * time.Hour
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Visitor tracking is optional: without a database the site still serves.
	var tracker analytics.Tracker = analytics.Nop{}
	var sqlTracker *analytics.SQLiteTracker
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Warn("visitor tracking disabled", zap.String("db", cfg.DatabasePath), zap.Error(err))
	} else {
		defer db.Close()
		if sqlTracker, err = analytics.NewSQLiteTracker(db); err != nil {
			return err
		}
		tracker = sqlTracker
		log.Info("privacy-conscious visitor tracking enabled", zap.Duration("retention", cfg.Retention))
	}

	sessions := page.NewRegistry(cfg.SessionTTL, page.WithLogger(log))
	defer sessions.Close()

	srv, err := web.New(cfg, log, sessions, tracker)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Serve(gctx, cfg.Addr()) })
	g.Go(func() error { return sessions.Run(gctx, sweepInterval) })
	if sqlTracker != nil {
		g.Go(func() error { return cleanupLoop(gctx, log, sqlTracker, cfg.Retention) })
	}
	return g.Wait()
}

// cleanupLoop removes visitor data older than retention at startup and then
// once a day.
func cleanupLoop(ctx context.Context, log *zap.Logger, t *analytics.SQLiteTracker, retention time.Duration) error {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		n, err := t.Cleanup(ctx, retention)
		switch {
		case err != nil && ctx.Err() == nil:
			log.Warn("visitor data cleanup failed", zap.Error(err))
		case n > 0:
			log.Info("removed expired visitor data", zap.Int64("rows", n))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

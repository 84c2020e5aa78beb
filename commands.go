package main

import (
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Akshat0071/portfolio/internal/analytics"
	"github.com/Akshat0071/portfolio/internal/sitemap"
	"github.com/Akshat0071/portfolio/internal/storage"
)

var sitemapOut string

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Write sitemap.xml for static hosting",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if err := sitemap.WriteFile(sitemapOut, cfg.SiteURL, sitemap.Pages, time.Now()); err != nil {
			return err
		}
		log.Info("sitemap generated", zap.String("path", sitemapOut), zap.Int("urls", len(sitemap.Pages)))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print visitor statistics as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := storage.Open(cmd.Context(), cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		tracker, err := analytics.NewSQLiteTracker(db)
		if err != nil {
			return err
		}
		stats, err := tracker.Stats(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	},
}

func init() {
	sitemapCmd.Flags().StringVarP(&sitemapOut, "out", "o", "dist/sitemap.xml", "output path")
}

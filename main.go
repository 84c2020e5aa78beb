package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Akshat0071/portfolio/internal/config"
	"github.com/Akshat0071/portfolio/internal/logging"
)

var (
	portFlag  string
	dbFlag    string
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Personal portfolio site",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "HTTP port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "SQLite database path (overrides DATABASE_PATH)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, sitemapCmd, statsCmd)
}

// setup loads the configuration, applies flag overrides and builds the
// logger every command shares.
func setup(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = portFlag
	}
	if flags.Changed("db") {
		cfg.DatabasePath = dbFlag
	}
	if flags.Changed("debug") {
		cfg.Debug = debugFlag
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	log, err := logging.New(cfg.Debug)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "portfolio:", err)
		os.Exit(1)
	}
}

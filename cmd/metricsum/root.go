package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/connstats/internal/config"
	"github.com/gyeh/connstats/internal/exitcode"
)

var cfg config.Config
var configFile string

var rootCmd = &cobra.Command{
	Use:   "metricsum",
	Short: "CAD connector performance-metric summarizer",
	Long:  "Reads per-run performance-metric logs from CAD/BIM interoperability connectors and produces per-model summary tables: element counts by category, elapsed time, and throughput.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Optional YAML config file")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}

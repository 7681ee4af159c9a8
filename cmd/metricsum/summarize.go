package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/connstats/internal/batch"
	"github.com/gyeh/connstats/internal/exitcode"
	"github.com/gyeh/connstats/internal/export"
	"github.com/gyeh/connstats/internal/logging"
	"github.com/gyeh/connstats/internal/model"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [files...]",
	Short: "Summarize connector metric files into per-model tables",
	RunE:  runSummarize,
}

func init() {
	f := summarizeCmd.Flags()
	f.StringVar(&cfg.Connector, "connector", "", "Builtin connector name (tekla, rhino, navisworks, tekla-json)")
	f.StringVar(&cfg.ProfilePath, "profile", "", "Path to a YAML connector profile (overrides --connector)")
	f.StringVar(&cfg.InputDir, "dir", "", "Folder of metric files to process")
	f.StringVar(&cfg.OutputDir, "out", "", "Folder to write operation_summary_*.csv files into")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(args); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	profile, err := cfg.ResolveProfile()
	if err != nil {
		log.Error().Err(err).Msg("connector profile resolution failed")
		os.Exit(exitcode.ValidationError)
	}

	paths := append([]string(nil), args...)
	if cfg.InputDir != "" {
		dirPaths, err := batch.ExpandDir(cfg.InputDir, profile)
		if err != nil {
			log.Error().Err(err).Str("dir", cfg.InputDir).Msg("input folder listing failed")
			os.Exit(exitcode.ValidationError)
		}
		paths = append(paths, dirPaths...)
	}

	opts := batch.Options{
		OnProgress: func(msg string) { log.Info().Msg(msg) },
		OnStatus:   func(msg string) { log.Info().Str("status", msg).Msg("status") },
	}

	res, err := batch.Run(ctx, log, profile, paths, opts)
	if err != nil {
		log.Error().Err(err).Msg("batch interrupted")
		os.Exit(exitcode.ExtractError)
	}

	if res.NoData {
		fmt.Println(res.Message)
		os.Exit(exitcode.NoData)
	}

	for _, kind := range []model.TableKind{model.TableSingle, model.TableCreate, model.TableRead} {
		t, ok := res.Tables[kind]
		if !ok || len(t.Rows) == 0 {
			continue
		}
		fmt.Printf("\n=== %s ===\n", t.Kind)
		if err := export.WriteCSV(os.Stdout, t); err != nil {
			log.Error().Err(err).Msg("table print failed")
		}
	}

	if cfg.OutputDir != "" {
		written, err := export.WriteTables(cfg.OutputDir, res)
		if err != nil {
			log.Error().Err(err).Msg("summary export failed")
			os.Exit(exitcode.ExportError)
		}
		for _, p := range written {
			log.Info().Str("path", p).Msg("summary written")
		}
	}

	fmt.Printf("\nSummarize complete: %d files processed, %d rows, %d failed (%.1fs)\n",
		res.Summary.FilesProcessed, res.Summary.RowsEmitted, res.Summary.FilesFailed,
		res.Summary.DurationTotal.Seconds())

	if len(res.Errors) > 0 {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}

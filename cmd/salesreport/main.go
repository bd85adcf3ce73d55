package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vladislav25v/sales-bonus/internal/application/report"
	"github.com/vladislav25v/sales-bonus/internal/infrastructure/config"
	"github.com/vladislav25v/sales-bonus/internal/infrastructure/dataset"
	"github.com/vladislav25v/sales-bonus/internal/infrastructure/logger"
	"github.com/vladislav25v/sales-bonus/internal/infrastructure/strategy"
	"github.com/vladislav25v/sales-bonus/internal/infrastructure/strategy/bonus"
	"github.com/vladislav25v/sales-bonus/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("salesreport", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath  string
		logLevel    string
		revenueName string
		bonusName   string
		list        bool
	)
	fs.StringVar(&configPath, "config", "", "Path to config file (default: ./config.toml if present)")
	fs.StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	fs.StringVar(&revenueName, "revenue", "", "Revenue strategy name (default from config)")
	fs.StringVar(&bonusName, "bonus", "", "Bonus strategy name (default from config)")
	fs.BoolVar(&list, "list", false, "List available strategies and exit")
	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: logger.DefaultConfig().TimeFormat,
	}
	if logLevel != "" {
		logCfg.Level = logLevel
	}
	log, err := logger.New(logCfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync(log)
	}()
	log = log.With(zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Env))

	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Error("Failed to initialize telemetry", zap.Error(err))
		return 1
	}
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	registry, err := strategy.NewRegistryWithRates(rankRates(cfg.Report.Bonus), decimal.NewFromFloat(cfg.Report.Bonus.FlatRate))
	if err != nil {
		log.Error("Failed to register strategies", zap.Error(err))
		return 1
	}

	if list {
		fmt.Fprintf(stdout, "revenue: %s\n", strings.Join(registry.ListRevenueStrategies(), ", "))
		fmt.Fprintf(stdout, "bonus: %s\n", strings.Join(registry.ListBonusStrategies(), ", "))
		return 0
	}

	if fs.NArg() != 1 {
		printUsage(stderr, fs)
		return 2
	}
	path := fs.Arg(0)

	if revenueName == "" {
		revenueName = cfg.Report.RevenueStrategy
	}
	if bonusName == "" {
		bonusName = cfg.Report.BonusStrategy
	}
	opts, err := registry.Options(revenueName, bonusName)
	if err != nil {
		log.Error("Failed to resolve strategies", zap.Error(err))
		return 1
	}

	ctx, log := logger.WithDataset(context.Background(), log, path)

	data, err := dataset.Load(path)
	if err != nil {
		log.Error("Failed to load dataset", zap.Error(err))
		return 1
	}

	log.Info("Computing sales report",
		zap.String("revenue_strategy", revenueName),
		zap.String("bonus_strategy", bonusName),
	)

	svc := report.NewSellerPerformanceService(log)
	reports, err := svc.Analyze(ctx, data, opts)
	if err != nil {
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		log.Error("Failed to write report", zap.Error(err))
		return 1
	}
	return 0
}

func rankRates(c config.BonusConfig) bonus.Rates {
	return bonus.Rates{
		First:   decimal.NewFromFloat(c.FirstRate),
		Podium:  decimal.NewFromFloat(c.PodiumRate),
		Default: decimal.NewFromFloat(c.DefaultRate),
		Last:    decimal.NewFromFloat(c.LastRate),
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: salesreport [flags] <dataset.json|dataset.yaml>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Computes revenue, profit, ranking and bonus per seller and writes the report as JSON to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vladislav25v/sales-bonus/internal/domain/sales"
	"github.com/vladislav25v/sales-bonus/internal/infrastructure/dataset"
	"github.com/vladislav25v/sales-bonus/internal/infrastructure/logger"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run generates a fake dataset and writes it to stdout or -out
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("salesgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := dataset.DefaultGeneratorConfig()
	var (
		cfg      dataset.GeneratorConfig
		format   string
		out      string
		logLevel string
	)
	fs.Uint64Var(&cfg.Seed, "seed", defaults.Seed, "Random seed (0 for a random dataset)")
	fs.IntVar(&cfg.Sellers, "sellers", defaults.Sellers, "Number of sellers")
	fs.IntVar(&cfg.Products, "products", defaults.Products, "Number of products")
	fs.IntVar(&cfg.Records, "records", defaults.Records, "Number of purchase records")
	fs.IntVar(&cfg.MaxItems, "max-items", defaults.MaxItems, "Maximum items per purchase record")
	fs.StringVar(&format, "format", "", "Output format: json or yaml (default: from -out extension, else json)")
	fs.StringVar(&out, "out", "", "Output file (default: stdout)")
	fs.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = logLevel
	log, err := logger.New(logCfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	f := dataset.Format(format)
	if f == "" {
		f = dataset.FormatJSON
		if out != "" {
			if detected, err := dataset.FormatFromPath(out); err == nil {
				f = detected
			}
		}
	}

	if !f.IsValid() {
		log.Error("Unsupported output format", zap.String("format", string(f)))
		return 2
	}

	data, err := dataset.Generate(cfg)
	if err != nil {
		log.Error("Failed to generate dataset", zap.Error(err))
		return 1
	}

	if out == "" {
		if err := dataset.Write(stdout, data, f); err != nil {
			log.Error("Failed to write dataset", zap.Error(err))
			return 1
		}
	} else if err := writeFile(out, data, f); err != nil {
		log.Error("Failed to write dataset", zap.String("path", out), zap.Error(err))
		return 1
	}

	log.Info("Dataset generated",
		zap.Uint64("seed", cfg.Seed),
		zap.Int("sellers", len(data.Sellers)),
		zap.Int("products", len(data.Products)),
		zap.Int("purchase_records", len(data.PurchaseRecords)),
		zap.String("format", string(f)),
	)
	return 0
}

func writeFile(path string, data *sales.Dataset, format dataset.Format) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dataset.Write(file, data, format); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

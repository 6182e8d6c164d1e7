package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/evtools/cardata/internal/config"
	"github.com/evtools/cardata/internal/processor"
)

// version is injected at build time via ldflags
var version = "dev"

func main() {
	cfg, files := parseFlags()

	logger := setupLogger(cfg.Verbose)

	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}
	if len(files) == 0 {
		logger.Fatal("No input files given")
	}

	logger.WithFields(logrus.Fields{
		"version": version,
		"report":  cfg.Report,
		"csv":     cfg.CSVMode,
		"files":   len(files),
	}).Info("Starting cardata")

	proc := processor.Select(cfg, os.Stdout, logger)

	// A failure is fatal for its file only; remaining files still run.
	failed := 0
	for _, file := range files {
		logger.WithField("file", file).Info("Processing JSON file")
		if err := proc.Load(file); err != nil {
			logger.WithError(err).WithField("file", file).Error("Failed to load file")
			failed++
			continue
		}
		if err := proc.Process(); err != nil {
			logger.WithError(err).WithField("file", file).Error("Failed to process file")
			failed++
		}
	}

	if fin, ok := proc.(processor.Finalizer); ok {
		if err := fin.Finalize(); err != nil {
			logger.WithError(err).Fatal("Failed to write output")
		}
		if cfg.CSVMode {
			logger.WithField("output", cfg.Output).Info("CSV written")
		}
	}

	if failed > 0 {
		logger.WithField("failed", failed).Warn("Some files could not be processed")
		os.Exit(1)
	}
}

// -----------------------------------------------------------------------------
// Helpers & Flags
// -----------------------------------------------------------------------------

func parseFlags() (*config.Config, []string) {
	_ = godotenv.Load()

	cfg := config.GetDefaultConfig()

	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.StringVar(&cfg.Report, "report", getEnv(config.EnvPrefix+"REPORT", cfg.Report),
		"Report mode: charging, tyres or dump")
	flag.BoolVar(&cfg.CSVMode, "csv", getEnv(config.EnvPrefix+"CSV", "false") == "true",
		"Write a CSV file instead of the text report")
	flag.StringVar(&cfg.Output, "output", getEnv(config.EnvPrefix+"OUTPUT", cfg.Output),
		"CSV output path")
	flag.IntVar(&cfg.RecursionLimit, "limit", 0,
		"Limit recursion depth of the dump report (0 = unlimited)")
	flag.BoolVar(&cfg.Verbose, "verbose", getEnv(config.EnvPrefix+"VERBOSE", "false") == "true",
		"Verbose logging")

	flag.Parse()

	if *showVersion {
		fmt.Printf("cardata %s\n", version)
		os.Exit(0)
	}

	return cfg, flag.Args()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setupLogger(verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}

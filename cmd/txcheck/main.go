// Package main provides a CLI for verifying transaction numbers against the
// sales invoice API and collecting the ones the API does not know about.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/archon-research/txcheck/internal/adapters/outbound/csvfile"
	"github.com/archon-research/txcheck/internal/adapters/outbound/memory"
	"github.com/archon-research/txcheck/internal/adapters/outbound/salesinvoice"
	"github.com/archon-research/txcheck/internal/pkg/env"
	"github.com/archon-research/txcheck/internal/ports/outbound"
	"github.com/archon-research/txcheck/internal/services/checker"
)

// Build-time variables - can be set via ldflags, otherwise populated from Go's build info.
var (
	GitCommit string
	GitBranch string
	BuildTime string
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if GitCommit == "" {
					GitCommit = setting.Value
				}
			case "vcs.time":
				if BuildTime == "" {
					BuildTime = setting.Value
				}
			}
		}
	}
}

func main() {
	input := flag.String("input", "", "CSV file with a transaction number column")
	ids := flag.String("ids", "", "Comma-separated transaction numbers (overrides -input)")
	output := flag.String("output", "not_found_transactions.txt", "Output file for not-found transaction numbers")
	baseURL := flag.String("base-url", "", "Invoice API base URL (default: INVOICE_API_URL or the built-in endpoint)")
	timeout := flag.Duration("timeout", 10*time.Second, "Per-request HTTP timeout")
	interval := flag.Duration("interval", time.Second, "Minimum spacing between requests")
	format := flag.String("format", "text", "Report format: 'text' or 'json'")
	showVersion := flag.Bool("version", false, "Show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("txcheck\n")
		fmt.Printf("  Commit:     %s\n", GitCommit)
		fmt.Printf("  Branch:     %s\n", GitBranch)
		fmt.Printf("  Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: env.ParseLogLevel(slog.LevelInfo),
	}))
	slog.SetDefault(logger)

	logger.Info("starting txcheck",
		"commit", GitCommit,
		"input", *input,
		"interval", *interval,
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, logger, runConfig{
		input:    *input,
		ids:      *ids,
		output:   *output,
		baseURL:  *baseURL,
		timeout:  *timeout,
		interval: *interval,
		format:   *format,
	}); err != nil {
		logger.Error("failed", "error", err)
		os.Exit(1)
	}

	logger.Info("completed successfully")
}

type runConfig struct {
	input    string
	ids      string
	output   string
	baseURL  string
	timeout  time.Duration
	interval time.Duration
	format   string
}

func run(ctx context.Context, logger *slog.Logger, cfg runConfig) error {
	apiKey := os.Getenv("INVOICE_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("INVOICE_API_KEY environment variable is required")
	}

	source, err := createSource(cfg, logger)
	if err != nil {
		return err
	}

	baseURL := cfg.baseURL
	if baseURL == "" {
		baseURL = env.Get("INVOICE_API_URL", "")
	}

	client, err := salesinvoice.NewClient(salesinvoice.ClientConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Timeout: cfg.timeout,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("creating invoice client: %w", err)
	}

	service, err := checker.NewService(checker.ServiceConfig{
		Interval: cfg.interval,
		Logger:   logger,
	}, source, client)
	if err != nil {
		return fmt.Errorf("creating service: %w", err)
	}

	report, err := service.Run(ctx)
	if err != nil {
		return fmt.Errorf("running verification: %w", err)
	}

	written, err := report.WriteNotFoundFile(cfg.output)
	if err != nil {
		return err
	}
	if written {
		logger.Info("wrote not-found transactions",
			"path", cfg.output,
			"count", len(report.NotFound),
		)
	}

	return printReport(report, cfg.format)
}

func createSource(cfg runConfig, logger *slog.Logger) (outbound.TransactionSource, error) {
	switch {
	case cfg.ids != "":
		return memory.NewTransactionSource(splitIDs(cfg.ids)), nil
	case cfg.input != "":
		return csvfile.NewSource(cfg.input, logger), nil
	default:
		return nil, fmt.Errorf("either -input or -ids is required")
	}
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

func printReport(report *checker.Report, format string) error {
	switch format {
	case "json":
		jsonStr, err := report.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Println(jsonStr)
	case "text":
		fmt.Print(report.FormatText())
	default:
		return fmt.Errorf("unknown report format: %s (supported: text, json)", format)
	}
	return nil
}

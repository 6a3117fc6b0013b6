// Package checker provides the transaction verification run: it loads an
// ordered list of transaction identifiers, checks each one against the
// invoicing API exactly once, classifies the outcomes and accumulates them
// into a Report. Requests are strictly sequential and paced to at most one
// per configured interval.
package checker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/archon-research/txcheck/internal/domain/entity"
	"github.com/archon-research/txcheck/internal/ports/outbound"
)

// ServiceConfig holds configuration for the checker service.
type ServiceConfig struct {
	// Interval is the minimum spacing between consecutive API requests.
	Interval time.Duration

	// Logger is the structured logger.
	Logger *slog.Logger
}

// DefaultConfig returns the default service configuration.
func DefaultConfig() ServiceConfig {
	return ServiceConfig{
		Interval: time.Second,
		Logger:   slog.Default(),
	}
}

// Service runs the verification loop.
type Service struct {
	config  ServiceConfig
	source  outbound.TransactionSource
	checker outbound.InvoiceChecker
	logger  *slog.Logger
}

// NewService creates a new checker service.
func NewService(
	config ServiceConfig,
	source outbound.TransactionSource,
	checker outbound.InvoiceChecker,
) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("source is required")
	}
	if checker == nil {
		return nil, fmt.Errorf("checker is required")
	}

	if config.Interval <= 0 {
		config.Interval = time.Second
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &Service{
		config:  config,
		source:  source,
		checker: checker,
		logger:  config.Logger.With("component", "checker"),
	}, nil
}

// Run loads the transaction identifiers and checks each one in order.
// A failed check never aborts the run; only context cancellation does, in
// which case the loop stops before the next request is issued and no report
// is returned. The limiter is waited on after every request, so a run over
// N identifiers takes at least N intervals.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	transactionIDs, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	s.logger.Info("starting verification",
		"transactions", len(transactionIDs),
		"source", s.source.Name(),
		"checker", s.checker.Name(),
		"interval", s.config.Interval,
	)

	report := NewReport()

	limiter := rate.NewLimiter(rate.Every(s.config.Interval), 1)
	// Drain the initial token so every wait below spends a full interval.
	limiter.Allow()

	for _, transactionID := range transactionIDs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run interrupted: %w", err)
		}

		report.AddResult(s.checkOne(ctx, transactionID))

		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("run interrupted: %w", err)
		}
	}

	report.Finalize()

	s.logger.Info("verification complete",
		"success", report.Success,
		"not_found", len(report.NotFound),
		"errors", report.TransportErrors,
		"duration", report.Duration,
	)

	return report, nil
}

// checkOne checks a single transaction identifier and classifies the outcome.
func (s *Service) checkOne(ctx context.Context, transactionID string) entity.CheckResult {
	httpStatus, err := s.checker.CheckTransaction(ctx, transactionID)
	if err != nil {
		s.logger.Warn("check failed",
			"transaction_id", transactionID,
			"error", err,
		)
		return entity.NewTransportError(transactionID, err.Error())
	}

	result := entity.ClassifyHTTPStatus(transactionID, httpStatus)
	switch result.Status {
	case entity.StatusFound:
		s.logger.Info("transaction found", "transaction_id", transactionID)
	case entity.StatusNotFound:
		s.logger.Info("transaction not found", "transaction_id", transactionID)
	default:
		// Reported but not tallied in the summary counters.
		s.logger.Warn("unexpected status",
			"transaction_id", transactionID,
			"http_status", httpStatus,
		)
	}
	return result
}

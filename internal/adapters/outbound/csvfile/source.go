// Package csvfile implements the TransactionSource interface over a CSV file.
// The transaction number column is located by header match: the first column
// whose header contains both "nomor" and "transaksi", case-insensitive.
// Empty cells are skipped; row order is preserved.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/archon-research/txcheck/internal/ports/outbound"
)

// Compile-time check that Source implements outbound.TransactionSource.
var _ outbound.TransactionSource = (*Source)(nil)

// ErrColumnNotFound is returned when no header matches the transaction
// number column.
var ErrColumnNotFound = errors.New("transaction number column not found")

// Source loads transaction identifiers from a CSV file.
type Source struct {
	path   string
	logger *slog.Logger
}

// NewSource creates a CSV-backed transaction source for the given file path.
func NewSource(path string, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		path:   path,
		logger: logger.With("component", "csvfile-source"),
	}
}

// Name returns the source name.
func (s *Source) Name() string {
	return "csvfile"
}

// Load reads the file, locates the transaction number column and returns its
// non-empty values in row order. It fails before any value is returned if the
// file is unreadable or the column is missing.
func (s *Source) Load(ctx context.Context) ([]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.logger.Warn("failed to close input file", "path", s.path, "error", closeErr)
		}
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading %s: file is empty", s.path)
		}
		return nil, fmt.Errorf("reading header of %s: %w", s.path, err)
	}

	column := matchColumn(header)
	if column < 0 {
		return nil, fmt.Errorf("%w in %s (available columns: %s)",
			ErrColumnNotFound, s.path, strings.Join(header, ", "))
	}

	var transactionIDs []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.path, err)
		}
		if column >= len(record) {
			continue
		}
		id := strings.TrimSpace(record[column])
		if id == "" {
			continue
		}
		transactionIDs = append(transactionIDs, id)
	}

	s.logger.Info("loaded transactions",
		"path", s.path,
		"column", header[column],
		"count", len(transactionIDs),
	)

	return transactionIDs, nil
}

// matchColumn returns the index of the first header containing both "nomor"
// and "transaksi" (case-insensitive), or -1 if none matches.
func matchColumn(header []string) int {
	for i, name := range header {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "nomor") && strings.Contains(lower, "transaksi") {
			return i
		}
	}
	return -1
}

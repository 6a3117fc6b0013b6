// Package memory provides an in-memory implementation of TransactionSource
// for testing and ad-hoc runs where the identifiers arrive on the command line.
package memory

import (
	"context"

	"github.com/archon-research/txcheck/internal/ports/outbound"
)

// Compile-time check that TransactionSource implements outbound.TransactionSource
var _ outbound.TransactionSource = (*TransactionSource)(nil)

// TransactionSource serves a fixed list of transaction identifiers.
type TransactionSource struct {
	transactionIDs []string
}

// NewTransactionSource creates a source backed by the given identifiers.
// The slice is copied; input order is preserved.
func NewTransactionSource(transactionIDs []string) *TransactionSource {
	ids := make([]string, len(transactionIDs))
	copy(ids, transactionIDs)
	return &TransactionSource{transactionIDs: ids}
}

// Name returns the source name.
func (s *TransactionSource) Name() string {
	return "memory"
}

// Load returns the identifiers in their original order.
func (s *TransactionSource) Load(ctx context.Context) ([]string, error) {
	ids := make([]string, len(s.transactionIDs))
	copy(ids, s.transactionIDs)
	return ids, nil
}

package outbound

import "context"

// TransactionSource supplies the ordered list of transaction identifiers
// to verify.
type TransactionSource interface {
	// Name returns the source name (e.g., "csvfile").
	Name() string

	// Load returns the transaction identifiers in input order.
	// Identifiers are loaded once, before any API activity.
	Load(ctx context.Context) ([]string, error)
}

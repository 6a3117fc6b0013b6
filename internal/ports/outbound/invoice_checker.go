package outbound

import "context"

// InvoiceChecker looks up transaction identifiers against an authoritative
// invoicing API.
type InvoiceChecker interface {
	// Name returns the checker name (e.g., "salesinvoice").
	Name() string

	// CheckTransaction issues a single lookup for the given transaction
	// identifier and returns the HTTP status code the API responded with.
	// A non-nil error means the request never produced a status
	// (timeout, connection failure, DNS failure).
	CheckTransaction(ctx context.Context, transactionID string) (int, error)
}

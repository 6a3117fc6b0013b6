package entity

import "net/http"

// CheckStatus represents the classified outcome of a single transaction check
type CheckStatus string

const (
	// StatusFound means the API returned HTTP 200 for the transaction.
	StatusFound CheckStatus = "found"

	// StatusNotFound means the API returned HTTP 422 for the transaction.
	StatusNotFound CheckStatus = "not_found"

	// StatusHTTPError means the API returned a status other than 200 or 422.
	StatusHTTPError CheckStatus = "http_error"

	// StatusTransportError means the request never produced an HTTP status
	// (timeout, connection failure, DNS failure).
	StatusTransportError CheckStatus = "transport_error"
)

// validCheckStatuses contains all valid check statuses for quick lookup
var validCheckStatuses = map[CheckStatus]bool{
	StatusFound:          true,
	StatusNotFound:       true,
	StatusHTTPError:      true,
	StatusTransportError: true,
}

// IsValid returns true if the CheckStatus is a known valid status
func (s CheckStatus) IsValid() bool {
	return validCheckStatuses[s]
}

// String returns the string representation of the CheckStatus
func (s CheckStatus) String() string {
	return string(s)
}

// CheckResult records the outcome of checking one transaction identifier.
type CheckResult struct {
	// TransactionID is the identifier that was checked.
	TransactionID string `json:"transaction_id"`

	// Status is the classified outcome.
	Status CheckStatus `json:"status"`

	// HTTPStatus is the HTTP status code the API returned.
	// Zero for transport errors.
	HTTPStatus int `json:"http_status,omitempty"`

	// Message carries the transport error description (empty otherwise).
	Message string `json:"message,omitempty"`
}

// ClassifyHTTPStatus maps the HTTP status of an invoice lookup to a CheckResult.
// 200 is Found, 422 is NotFound, everything else is an HTTPError.
func ClassifyHTTPStatus(transactionID string, httpStatus int) CheckResult {
	status := StatusHTTPError
	switch httpStatus {
	case http.StatusOK:
		status = StatusFound
	case http.StatusUnprocessableEntity:
		status = StatusNotFound
	}
	return CheckResult{
		TransactionID: transactionID,
		Status:        status,
		HTTPStatus:    httpStatus,
	}
}

// NewTransportError builds a CheckResult for a request that produced no HTTP status.
func NewTransportError(transactionID, message string) CheckResult {
	return CheckResult{
		TransactionID: transactionID,
		Status:        StatusTransportError,
		Message:       message,
	}
}

package entity

import "testing"

func TestClassifyHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		httpStatus int
		want       CheckStatus
	}{
		{
			name:       "200 is found",
			httpStatus: 200,
			want:       StatusFound,
		},
		{
			name:       "422 is not found",
			httpStatus: 422,
			want:       StatusNotFound,
		},
		{
			name:       "500 is an http error",
			httpStatus: 500,
			want:       StatusHTTPError,
		},
		{
			name:       "404 is an http error",
			httpStatus: 404,
			want:       StatusHTTPError,
		},
		{
			name:       "429 is an http error",
			httpStatus: 429,
			want:       StatusHTTPError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyHTTPStatus("TX-001", tt.httpStatus)
			if result.Status != tt.want {
				t.Errorf("ClassifyHTTPStatus(%d).Status = %v, want %v", tt.httpStatus, result.Status, tt.want)
			}
			if result.TransactionID != "TX-001" {
				t.Errorf("TransactionID = %q, want TX-001", result.TransactionID)
			}
			if result.HTTPStatus != tt.httpStatus {
				t.Errorf("HTTPStatus = %d, want %d", result.HTTPStatus, tt.httpStatus)
			}
			if !result.Status.IsValid() {
				t.Errorf("Status %v should be valid", result.Status)
			}
		})
	}
}

func TestNewTransportError(t *testing.T) {
	result := NewTransportError("TX-002", "dial tcp: connection refused")

	if result.Status != StatusTransportError {
		t.Errorf("Status = %v, want %v", result.Status, StatusTransportError)
	}
	if result.HTTPStatus != 0 {
		t.Errorf("HTTPStatus = %d, want 0", result.HTTPStatus)
	}
	if result.Message != "dial tcp: connection refused" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestCheckStatus_IsValid(t *testing.T) {
	if CheckStatus("bogus").IsValid() {
		t.Error("unknown status should not be valid")
	}
	for status := range validCheckStatuses {
		if !status.IsValid() {
			t.Errorf("%v should be valid", status)
		}
	}
}

package salesinvoice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		config  ClientConfig
		wantErr bool
	}{
		{
			name: "valid config",
			config: ClientConfig{
				APIKey: "test-api-key",
			},
			wantErr: false,
		},
		{
			name:    "missing API key",
			config:  ClientConfig{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClient() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && client == nil {
				t.Error("NewClient() returned nil client")
			}
		})
	}
}

func TestClient_Name(t *testing.T) {
	client, _ := NewClient(ClientConfig{APIKey: "test"})
	if got := client.Name(); got != "salesinvoice" {
		t.Errorf("Name() = %v, want salesinvoice", got)
	}
}

func TestClient_CheckTransaction(t *testing.T) {
	tests := []struct {
		name         string
		serverStatus int
		wantStatus   int
	}{
		{
			name:         "found",
			serverStatus: http.StatusOK,
			wantStatus:   200,
		},
		{
			name:         "not found",
			serverStatus: http.StatusUnprocessableEntity,
			wantStatus:   422,
		},
		{
			name:         "server error",
			serverStatus: http.StatusInternalServerError,
			wantStatus:   500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.serverStatus)
			}))
			defer server.Close()

			client, err := NewClient(ClientConfig{
				APIKey:  "test-api-key",
				BaseURL: server.URL,
			})
			if err != nil {
				t.Fatalf("NewClient() error = %v", err)
			}

			status, err := client.CheckTransaction(context.Background(), "TX-001")
			if err != nil {
				t.Fatalf("CheckTransaction() error = %v", err)
			}
			if status != tt.wantStatus {
				t.Errorf("CheckTransaction() = %d, want %d", status, tt.wantStatus)
			}
		})
	}
}

func TestClient_CheckTransaction_Request(t *testing.T) {
	var gotPath, gotAPIKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAPIKey = r.Header.Get("apikey")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(ClientConfig{
		APIKey:  "secret-key",
		BaseURL: server.URL + "/core/api/v1/",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if _, err := client.CheckTransaction(context.Background(), "INV 2024/001"); err != nil {
		t.Fatalf("CheckTransaction() error = %v", err)
	}

	if gotPath != "/core/api/v1/sales_invoices/INV%202024%2F001" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAPIKey != "secret-key" {
		t.Errorf("apikey header = %q, want secret-key", gotAPIKey)
	}
}

func TestClient_CheckTransaction_TransportError(t *testing.T) {
	// Point at a closed server to force a connection error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewClient(ClientConfig{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	status, err := client.CheckTransaction(context.Background(), "TX-001")
	if err == nil {
		t.Fatal("CheckTransaction() expected transport error, got nil")
	}
	if status != 0 {
		t.Errorf("status = %d, want 0 on transport error", status)
	}
}

func TestClient_CheckTransaction_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(ClientConfig{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
		Timeout: 20 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if _, err := client.CheckTransaction(context.Background(), "TX-001"); err == nil {
		t.Fatal("CheckTransaction() expected timeout error, got nil")
	}
}

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rudrakos/finsms/parser/bank"
)

func newTestServer() *Server {
	return New(DefaultConfig(), bank.NewRegistry())
}

func TestNew(t *testing.T) {
	server := newTestServer()

	if server == nil {
		t.Fatal("Expected server to be created")
	}
	if server.mux == nil {
		t.Fatal("Expected mux to be initialized")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Port != ":8080" {
		t.Errorf("Expected port ':8080', got '%s'", cfg.Port)
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response["status"])
	}
}

func TestParseEndpoint_MethodNotAllowed(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/parse", nil)
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestParseEndpoint_MissingFields(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(`{"message":"hi"}`))
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestParseEndpoint_InvalidBody(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestParseEndpoint_UnknownSender(t *testing.T) {
	server := newTestServer()

	body, _ := json.Marshal(ParseRequest{
		Message: "Rs.100 debited from A/c XX1234",
		Sender:  "UNKNOWN-SENDER",
	})
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp ParseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Parsed {
		t.Error("Expected parsed=false for unknown sender")
	}
	if resp.Transaction != nil {
		t.Error("Expected no transaction for unknown sender")
	}
}

func TestParseEndpoint_Transaction(t *testing.T) {
	server := newTestServer()

	body, _ := json.Marshal(ParseRequest{
		Message:   "Sent Rs.250.00 From HDFC Bank A/C x1234 To Swiggy On 15/03/25 Ref 544123456789",
		Sender:    "VM-HDFCBK-S",
		Timestamp: 1742040000000,
	})
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ParseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Parsed {
		t.Fatalf("Expected parsed=true, body: %s", w.Body.String())
	}
	if resp.Bank != "HDFC Bank" {
		t.Errorf("Expected bank 'HDFC Bank', got '%s'", resp.Bank)
	}
	if resp.Transaction == nil {
		t.Fatal("Expected a transaction")
	}
	if resp.Transaction.TypeName != "EXPENSE" {
		t.Errorf("Expected type EXPENSE, got %s", resp.Transaction.TypeName)
	}
	if resp.Transaction.IdentityKey == "" {
		t.Error("Expected identity key to be set")
	}
}

func TestMandateEndpoint_NotDetected(t *testing.T) {
	server := newTestServer()

	body, _ := json.Marshal(ParseRequest{
		Message: "Sent Rs.250.00 From HDFC Bank A/C x1234 To Swiggy On 15/03/25 Ref 544123456789",
		Sender:  "VM-HDFCBK-S",
	})
	req := httptest.NewRequest(http.MethodPost, "/mandate", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp MandateResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Detected {
		t.Error("Expected detected=false for a plain transaction message")
	}
}

func TestBanksEndpoint(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/banks", nil)
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var banks []BankInfo
	if err := json.NewDecoder(w.Body).Decode(&banks); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(banks) != 49 {
		t.Errorf("Expected 49 institutions, got %d", len(banks))
	}
	if banks[0].Bank != "HDFC Bank" {
		t.Errorf("Expected HDFC Bank first, got '%s'", banks[0].Bank)
	}
}

func TestHandler(t *testing.T) {
	server := newTestServer()
	handler := server.Handler()

	if handler == nil {
		t.Fatal("Expected handler to be returned")
	}

	if handler != server.mux {
		t.Error("Expected handler to be the server's mux")
	}
}

// Package api exposes the notification parser over HTTP. This is a
// capability module that can be enabled via the CLI or used programmatically.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/rudrakos/finsms/parser"
)

// Config holds the API server configuration
type Config struct {
	Port      string
	LogPrefix string
}

// DefaultConfig returns the default API configuration
func DefaultConfig() Config {
	return Config{
		Port:      ":8080",
		LogPrefix: "API: ",
	}
}

// Server represents the HTTP API server
type Server struct {
	config   Config
	registry *parser.Registry
	mux      *http.ServeMux
}

// New creates a new API server over the given registry
func New(cfg Config, registry *parser.Registry) *Server {
	s := &Server{
		config:   cfg,
		registry: registry,
		mux:      http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// registerRoutes sets up the API endpoints
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/parse", s.handleParse)
	s.mux.HandleFunc("/mandate", s.handleMandate)
	s.mux.HandleFunc("/banks", s.handleBanks)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the http.Handler for the server.
// This allows the server to be used with custom http.Server configurations.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server (blocking)
func (s *Server) Start() error {
	log.Printf("%sStarting server on %s", s.config.LogPrefix, s.config.Port)
	return http.ListenAndServe(s.config.Port, s.mux)
}

// ParseRequest is the request body for /parse and /mandate.
type ParseRequest struct {
	Message string `json:"message"`
	Sender  string `json:"sender"`
	// Timestamp is delivery time in Unix milliseconds; defaults to now.
	Timestamp int64 `json:"timestamp,omitempty"`
}

// ParseResponse wraps a parse outcome. Parsed=false is a valid result: the
// sender is unknown or the message is not a transaction.
type ParseResponse struct {
	Parsed      bool                `json:"parsed"`
	Bank        string              `json:"bank,omitempty"`
	Transaction *parser.Transaction `json:"transaction,omitempty"`
}

// MandateResponse wraps a mandate detection outcome.
type MandateResponse struct {
	Detected bool                `json:"detected"`
	Bank     string              `json:"bank,omitempty"`
	Mandate  *parser.MandateInfo `json:"mandate,omitempty"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (*ParseRequest, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("%sError decoding request: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not decode request body: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if req.Message == "" || req.Sender == "" {
		http.Error(w, "Fields 'message' and 'sender' are required", http.StatusBadRequest)
		return nil, false
	}
	if req.Timestamp == 0 {
		req.Timestamp = time.Now().UnixMilli()
	}
	return &req, true
}

// handleParse parses one notification into a transaction
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	log.Printf("%sReceived request from %s", s.config.LogPrefix, r.RemoteAddr)

	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	resp := ParseResponse{}
	if rs, found := s.registry.Resolve(req.Sender); found {
		resp.Bank = rs.Bank
		if tx, parsed := rs.Parse(req.Message, req.Sender, req.Timestamp); parsed {
			resp.Parsed = true
			resp.Transaction = tx
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// handleMandate checks one notification for a mandate or future debit
func (s *Server) handleMandate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	resp := MandateResponse{}
	if rs, found := s.registry.Resolve(req.Sender); found {
		resp.Bank = rs.Bank
		if info, detected := rs.TryParseMandate(req.Message); detected {
			resp.Detected = true
			resp.Mandate = info
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// BankInfo describes one registered institution.
type BankInfo struct {
	Bank     string `json:"bank"`
	Currency string `json:"currency"`
}

// handleBanks lists registered institutions in dispatch order
func (s *Server) handleBanks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ruleSets := s.registry.RuleSets()
	banks := make([]BankInfo, 0, len(ruleSets))
	for _, rs := range ruleSets {
		banks = append(banks, BankInfo{Bank: rs.Bank, Currency: rs.Currency})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(banks)
}

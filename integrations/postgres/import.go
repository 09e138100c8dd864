package postgres

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rudrakos/finsms/parser"
)

// ImportOptions controls how raw notifications are parsed during an import.
type ImportOptions struct {
	Registry *parser.Registry
	Verbose  bool
}

// ImportResult summarizes an import run. Parsed counts rows inserted;
// Skipped counts lines that did not parse or were duplicates; Failed counts
// malformed lines and storage errors.
type ImportResult struct {
	Parsed  int
	Skipped int
	Failed  int
	Errors  []string
}

// rawMessage is one line of a JSONL export: the notification text, its
// sender id, and the delivery timestamp in Unix milliseconds.
type rawMessage struct {
	Message   string `json:"message"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp"`
}

// Import parses and stores the notifications found at path, which may be a
// single JSONL file or a directory of them.
func (db *DB) Import(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return db.ImportDirectory(ctx, path, opts)
	}
	return db.ImportFile(ctx, path, opts)
}

// ImportDirectory imports every .jsonl and .json file in dir, accumulating a
// single result across files.
func (db *DB) ImportDirectory(ctx context.Context, dir string, opts ImportOptions) (*ImportResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	total := &ImportResult{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".jsonl" && ext != ".json" {
			continue
		}
		result, err := db.ImportFile(ctx, filepath.Join(dir, entry.Name()), opts)
		if err != nil {
			return total, err
		}
		total.Parsed += result.Parsed
		total.Skipped += result.Skipped
		total.Failed += result.Failed
		total.Errors = append(total.Errors, result.Errors...)
	}
	return total, nil
}

// ImportFile reads one JSONL file, parses each line against the registry,
// and inserts the resulting transactions under a fresh import run.
func (db *DB) ImportFile(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	if opts.Registry == nil {
		return nil, fmt.Errorf("import requires a parser registry")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	runID, err := db.BeginRun(ctx, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	var txns []*parser.Transaction

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var raw rawMessage
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s:%d: invalid JSON: %v", filepath.Base(path), lineNo, err))
			continue
		}
		if raw.Message == "" || raw.Sender == "" {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s:%d: missing message or sender", filepath.Base(path), lineNo))
			continue
		}
		if raw.Timestamp == 0 {
			raw.Timestamp = time.Now().UnixMilli()
		}

		txn, ok := opts.Registry.Parse(raw.Message, raw.Sender, raw.Timestamp)
		if !ok {
			result.Skipped++
			if opts.Verbose {
				log.Printf("skipped %s:%d: no parse for sender %s", filepath.Base(path), lineNo, raw.Sender)
			}
			continue
		}
		txns = append(txns, txn)
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read %s: %w", path, err)
	}

	inserted, duplicates, err := db.InsertTransactions(ctx, runID, txns)
	if err != nil {
		result.Failed += len(txns) - inserted - duplicates
		result.Errors = append(result.Errors, err.Error())
	}
	result.Parsed += inserted
	result.Skipped += duplicates

	if finishErr := db.FinishRun(ctx, runID, result.Parsed, result.Skipped, result.Failed); finishErr != nil {
		result.Errors = append(result.Errors, finishErr.Error())
	}

	if opts.Verbose {
		log.Printf("imported %s: %d parsed, %d skipped, %d failed", filepath.Base(path), result.Parsed, result.Skipped, result.Failed)
	}
	return result, err
}

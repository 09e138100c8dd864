package postgres

import (
	"context"
	"fmt"
)

const ddl = `
-- Import runs: one row per invocation of 'finsms import'
CREATE TABLE IF NOT EXISTS import_runs (
    id UUID PRIMARY KEY,
    source VARCHAR(255) NOT NULL,
    started_at TIMESTAMPTZ DEFAULT NOW(),
    finished_at TIMESTAMPTZ,
    parsed INTEGER NOT NULL DEFAULT 0,
    skipped INTEGER NOT NULL DEFAULT 0,
    failed INTEGER NOT NULL DEFAULT 0
);

-- Parsed transactions, keyed on the parser's identity key so redelivered
-- notifications dedupe across runs
CREATE TABLE IF NOT EXISTS transactions (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    identity_key CHAR(32) NOT NULL,
    run_id UUID REFERENCES import_runs(id) ON DELETE SET NULL,
    bank VARCHAR(100) NOT NULL,
    sender VARCHAR(50) NOT NULL,
    type VARCHAR(20) NOT NULL,
    amount NUMERIC(18,2) NOT NULL,
    currency CHAR(3) NOT NULL,
    merchant VARCHAR(255) DEFAULT '',
    reference VARCHAR(255) DEFAULT '',
    account_last4 VARCHAR(10) DEFAULT '',
    balance NUMERIC(18,2),
    available_limit NUMERIC(18,2),
    is_from_card BOOLEAN NOT NULL DEFAULT false,
    message TEXT NOT NULL,
    delivered_at TIMESTAMPTZ NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW(),

    -- Natural key for deduplication
    UNIQUE(identity_key)
);

-- Indexes for common queries
CREATE INDEX IF NOT EXISTS idx_transactions_bank ON transactions(bank);
CREATE INDEX IF NOT EXISTS idx_transactions_delivered_at ON transactions(delivered_at);
CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type);
CREATE INDEX IF NOT EXISTS idx_transactions_merchant ON transactions(merchant) WHERE merchant != '';
`

// EnsureSchema creates tables if they don't exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

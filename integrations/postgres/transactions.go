package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rudrakos/finsms/parser"
)

const insertTransactionSQL = `
INSERT INTO transactions (
    identity_key, run_id, bank, sender, type, amount, currency,
    merchant, reference, account_last4, balance, available_limit,
    is_from_card, message, delivered_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (identity_key) DO NOTHING`

// InsertTransactions bulk-inserts parsed transactions using a pgx batch.
// Duplicates, identified by identity key, are silently skipped. Returns the
// number of rows actually inserted and the number skipped as duplicates.
func (db *DB) InsertTransactions(ctx context.Context, runID uuid.UUID, txns []*parser.Transaction) (inserted, skipped int, err error) {
	if len(txns) == 0 {
		return 0, 0, nil
	}

	batch := &pgx.Batch{}
	for _, t := range txns {
		batch.Queue(insertTransactionSQL,
			t.IdentityKey,
			runID,
			t.Bank,
			t.Sender,
			t.TypeName,
			t.Amount,
			t.Currency,
			t.Merchant,
			t.Reference,
			t.AccountLast4,
			t.Balance,
			t.AvailableLimit,
			t.IsFromCard,
			t.Message,
			time.UnixMilli(t.Timestamp).UTC(),
		)
	}

	results := db.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range txns {
		tag, execErr := results.Exec()
		if execErr != nil {
			return inserted, skipped, fmt.Errorf("failed to insert transaction: %w", execErr)
		}
		if tag.RowsAffected() > 0 {
			inserted++
		} else {
			skipped++
		}
	}

	return inserted, skipped, nil
}

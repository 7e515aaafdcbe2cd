// Package gateway contains the concrete adapters behind the usecase
// interfaces: sqlite-backed persistence and the SMS export file reader.
package gateway

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"sms-transaction-detector/internal/domain"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS processed_messages (
	content_hash   TEXT PRIMARY KEY,
	message_id     TEXT NOT NULL,
	transaction_id TEXT,
	processed_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	id                TEXT PRIMARY KEY,
	amount            REAL NOT NULL,
	direction         TEXT NOT NULL,
	merchant          TEXT NOT NULL,
	category          TEXT NOT NULL,
	occurred_on       TEXT NOT NULL,
	occurred_at       TEXT NOT NULL,
	reference         TEXT NOT NULL,
	account_fragment  TEXT NOT NULL,
	source_message_id TEXT NOT NULL,
	confidence        REAL NOT NULL,
	auto_detected     INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_day
	ON transactions(occurred_on, direction);
`

// SQLiteStore implements both the MessageLedger and TransactionStore
// interfaces over a single local sqlite database, durable across restarts.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for an ephemeral store in tests.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Exists reports whether a ledger entry with the given content hash exists.
func (s *SQLiteStore) Exists(ctx context.Context, contentHash string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM processed_messages WHERE content_hash = ?`, contentHash).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ledger lookup for hash %s: %w", contentHash, err)
	}
	return true, nil
}

// Append inserts a new ledger entry. The content-hash primary key enforces
// the ledger uniqueness invariant.
func (s *SQLiteStore) Append(ctx context.Context, record domain.ProcessedMessageRecord) error {
	txnID := sql.NullString{String: record.TransactionID, Valid: record.TransactionID != ""}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO processed_messages (content_hash, message_id, transaction_id, processed_at)
		 VALUES (?, ?, ?, ?)`,
		record.ContentHash, record.MessageID, txnID, record.ProcessedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("appending ledger record for message %s: %w", record.MessageID, err)
	}
	return nil
}

// Create persists a finalized transaction.
func (s *SQLiteStore) Create(ctx context.Context, tx domain.FinalizedTransaction) error {
	auto := 0
	if tx.AutoDetected {
		auto = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions
		 (id, amount, direction, merchant, category, occurred_on, occurred_at,
		  reference, account_fragment, source_message_id, confidence, auto_detected)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.Amount, string(tx.Direction), tx.Merchant, tx.Category,
		tx.OccurredOn.Format(time.DateOnly), tx.OccurredAt.UTC().Format(time.RFC3339Nano),
		tx.Reference, tx.AccountFragment, tx.SourceMessageID, tx.Confidence, auto)
	if err != nil {
		return fmt.Errorf("creating transaction %s: %w", tx.ID, err)
	}
	return nil
}

// QueryByDateAndDirection returns all transactions recorded for the given
// calendar date with the given direction.
func (s *SQLiteStore) QueryByDateAndDirection(ctx context.Context, day time.Time, direction domain.Direction) ([]domain.FinalizedTransaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, amount, direction, merchant, category, occurred_on, occurred_at,
		        reference, account_fragment, source_message_id, confidence, auto_detected
		 FROM transactions
		 WHERE occurred_on = ? AND direction = ?`,
		day.Format(time.DateOnly), string(direction))
	if err != nil {
		return nil, fmt.Errorf("querying transactions for %s: %w", day.Format(time.DateOnly), err)
	}
	defer rows.Close()

	var result []domain.FinalizedTransaction
	for rows.Next() {
		var tx domain.FinalizedTransaction
		var dir, occurredOn, occurredAt string
		var auto int
		if err := rows.Scan(&tx.ID, &tx.Amount, &dir, &tx.Merchant, &tx.Category,
			&occurredOn, &occurredAt, &tx.Reference, &tx.AccountFragment,
			&tx.SourceMessageID, &tx.Confidence, &auto); err != nil {
			return nil, fmt.Errorf("scanning transaction row: %w", err)
		}
		tx.Direction = domain.Direction(dir)
		tx.AutoDetected = auto != 0
		if tx.OccurredOn, err = time.Parse(time.DateOnly, occurredOn); err != nil {
			return nil, fmt.Errorf("parsing occurred_on %q: %w", occurredOn, err)
		}
		if tx.OccurredAt, err = time.Parse(time.RFC3339Nano, occurredAt); err != nil {
			return nil, fmt.Errorf("parsing occurred_at %q: %w", occurredAt, err)
		}
		result = append(result, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}
	return result, nil
}

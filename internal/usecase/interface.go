package usecase

import (
	"context"
	"time"

	"sms-transaction-detector/internal/domain"
)

// MessageLedger is the durable processed-message ledger. It is the memory
// that makes dedup-by-hash possible across app restarts.
// The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go MessageLedger,TransactionStore
type MessageLedger interface {
	// Exists reports whether a record with the given content hash was ever
	// appended.
	Exists(ctx context.Context, contentHash string) (bool, error)
	// Append adds a ledger entry. ContentHash is unique across the ledger.
	Append(ctx context.Context, record domain.ProcessedMessageRecord) error
}

// TransactionStore is the external store that owns finalized transactions
// once handed off.
type TransactionStore interface {
	// Create persists a new finalized transaction.
	Create(ctx context.Context, tx domain.FinalizedTransaction) error
	// QueryByDateAndDirection returns all transactions recorded for the given
	// calendar date with the given direction.
	QueryByDateAndDirection(ctx context.Context, day time.Time, direction domain.Direction) ([]domain.FinalizedTransaction, error)
}

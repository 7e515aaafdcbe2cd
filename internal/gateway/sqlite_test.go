package gateway

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sms-transaction-detector/internal/domain"
)

func memoryStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleTransaction(id string, day time.Time) domain.FinalizedTransaction {
	return domain.FinalizedTransaction{
		ID:              id,
		Amount:          500,
		Direction:       domain.DirectionOutgoing,
		Merchant:        "Swiggy",
		Category:        "Food",
		OccurredOn:      day,
		OccurredAt:      time.Date(2025, 11, 29, 14, 30, 5, 0, time.UTC),
		Reference:       "112233445566",
		AccountFragment: "XX4321",
		SourceMessageID: "msg-" + id,
		Confidence:      0.9,
		AutoDetected:    true,
	}
}

func TestSQLiteStore_Ledger(t *testing.T) {
	store := memoryStore(t)
	ctx := context.Background()

	seen, err := store.Exists(ctx, "deadbeef")
	require.NoError(t, err)
	assert.False(t, seen)

	record := domain.ProcessedMessageRecord{
		MessageID:     "msg-1",
		ContentHash:   "deadbeef",
		TransactionID: "tx-1",
		ProcessedAt:   time.Now(),
	}
	require.NoError(t, store.Append(ctx, record))

	seen, err = store.Exists(ctx, "deadbeef")
	require.NoError(t, err)
	assert.True(t, seen)

	// The content hash is the primary key; re-appending the same hash must
	// fail rather than silently duplicate.
	err = store.Append(ctx, record)
	assert.Error(t, err)
}

func TestSQLiteStore_Append_WithoutTransactionID(t *testing.T) {
	store := memoryStore(t)
	ctx := context.Background()

	err := store.Append(ctx, domain.ProcessedMessageRecord{
		MessageID:   "msg-dup",
		ContentHash: "cafebabe",
		ProcessedAt: time.Now(),
	})
	require.NoError(t, err)

	seen, err := store.Exists(ctx, "cafebabe")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestSQLiteStore_QueryByDateAndDirection(t *testing.T) {
	store := memoryStore(t)
	ctx := context.Background()

	day := time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)

	require.NoError(t, store.Create(ctx, sampleTransaction("tx-1", day)))
	require.NoError(t, store.Create(ctx, sampleTransaction("tx-2", otherDay)))

	incoming := sampleTransaction("tx-3", day)
	incoming.Direction = domain.DirectionIncoming
	require.NoError(t, store.Create(ctx, incoming))

	got, err := store.QueryByDateAndDirection(ctx, day, domain.DirectionOutgoing)
	require.NoError(t, err)
	require.Len(t, got, 1)

	tx := got[0]
	assert.Equal(t, "tx-1", tx.ID)
	assert.Equal(t, 500.0, tx.Amount)
	assert.Equal(t, domain.DirectionOutgoing, tx.Direction)
	assert.Equal(t, "Swiggy", tx.Merchant)
	assert.Equal(t, day, tx.OccurredOn)
	assert.Equal(t, "112233445566", tx.Reference)
	assert.True(t, tx.AutoDetected)

	got, err = store.QueryByDateAndDirection(ctx, day, domain.DirectionIncoming)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tx-3", got[0].ID)

	got, err = store.QueryByDateAndDirection(ctx, day.AddDate(0, 0, 7), domain.DirectionOutgoing)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// Data written through one handle must survive a close/reopen cycle.
func TestSQLiteStore_DurableAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detector.db")
	ctx := context.Background()
	day := time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC)

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(ctx, domain.ProcessedMessageRecord{
		MessageID:   "msg-1",
		ContentHash: "deadbeef",
		ProcessedAt: time.Now(),
	}))
	require.NoError(t, store.Create(ctx, sampleTransaction("tx-1", day)))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	seen, err := reopened.Exists(ctx, "deadbeef")
	require.NoError(t, err)
	assert.True(t, seen)

	got, err := reopened.QueryByDateAndDirection(ctx, day, domain.DirectionOutgoing)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tx-1", got[0].ID)
}

func BenchmarkSQLiteStore_Exists(b *testing.B) {
	store, err := OpenSQLite(":memory:")
	if err != nil {
		b.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Append(ctx, domain.ProcessedMessageRecord{
		MessageID:   "msg-1",
		ContentHash: "deadbeef",
		ProcessedAt: time.Now(),
	}); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := store.Exists(ctx, "deadbeef"); err != nil {
			b.Fatal(err)
		}
	}
}

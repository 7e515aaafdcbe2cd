package domain

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// RawMessage is an SMS as delivered by the external message source.
// Immutable; the pipeline consumes it idempotently.
type RawMessage struct {
	ID          string `json:"id"`
	Body        string `json:"body"`
	Sender      string `json:"sender"`
	TimestampMs int64  `json:"timestamp_ms"`
}

// ContentHash returns a stable 64-bit hash over (sender, body, timestamp),
// used as the processed-message ledger key. Fields are separated by a NUL
// byte so that boundary-shifted contents cannot collide.
func (m RawMessage) ContentHash() string {
	h := xxhash.New()
	_, _ = h.WriteString(m.Sender)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(m.Body)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(strconv.FormatInt(m.TimestampMs, 10))
	return strconv.FormatUint(h.Sum64(), 16)
}

// ReceivedAt converts the source timestamp to a time.Time.
func (m RawMessage) ReceivedAt() time.Time {
	return time.UnixMilli(m.TimestampMs)
}

// ProcessedMessageRecord is an append-only ledger entry, one per message ever
// accepted into the dedup gate, whether or not it produced a transaction.
// ContentHash is unique across the ledger.
type ProcessedMessageRecord struct {
	MessageID     string    `json:"message_id"`
	ContentHash   string    `json:"content_hash"`
	TransactionID string    `json:"transaction_id,omitempty"` // empty when the message was skipped
	ProcessedAt   time.Time `json:"processed_at"`
}

package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"sms-transaction-detector/internal/domain"
)

// dedupGate holds the two independent duplicate checks: the exact
// message-hash lookup against the ledger and the same-day near-duplicate
// match against recorded transactions.
type dedupGate struct {
	ledger  MessageLedger
	store   TransactionStore
	epsilon float64
	log     zerolog.Logger
}

// isDuplicateMessage looks the content hash up in the processed-message
// ledger. A hit means this exact message was already evaluated, regardless of
// outcome.
func (g *dedupGate) isDuplicateMessage(ctx context.Context, contentHash string) (bool, error) {
	return g.ledger.Exists(ctx, contentHash)
}

// isNearDuplicate reports whether a transaction recorded for the candidate's
// resolved calendar date plausibly represents the same real-world event:
// amounts within epsilon, same direction, and one merchant string containing
// the other case-insensitively. A lookup failure fails open (not a duplicate)
// so a storage hiccup cannot block processing.
func (g *dedupGate) isNearDuplicate(ctx context.Context, c domain.ExtractedCandidate, day time.Time) bool {
	existing, err := g.store.QueryByDateAndDirection(ctx, day, c.Direction)
	if err != nil {
		g.log.Warn().Err(err).Str("message_id", c.RawMessageID).
			Msg("near-duplicate lookup failed, treating as not duplicate")
		return false
	}
	for _, tx := range existing {
		if matchesExisting(tx, c, g.epsilon) {
			return true
		}
	}
	return false
}

func matchesExisting(tx domain.FinalizedTransaction, c domain.ExtractedCandidate, epsilon float64) bool {
	if tx.Direction != c.Direction {
		return false
	}
	if math.Abs(tx.Amount-c.Amount) >= epsilon {
		return false
	}
	return containsFold(tx.Merchant, c.Counterparty) || containsFold(c.Counterparty, tx.Merchant)
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"sms-transaction-detector/internal/categorize"
	"sms-transaction-detector/internal/domain"
	"sms-transaction-detector/internal/extract"
	"sms-transaction-detector/internal/score"
)

// Pipeline is the single entry point for turning raw SMS messages into
// finalized transactions. Per message it sequences extraction, scoring,
// validation and the two deduplication checks, committing side effects
// before the next message begins.
//
// The pipeline holds no mutable state of its own; all state lives in the
// injected ledger and store. Callers must not run two invocations
// concurrently.
type Pipeline struct {
	extractor   *extract.Extractor
	categorizer *categorize.Categorizer
	scorer      *score.Scorer
	gate        *dedupGate
	ledger      MessageLedger
	store       TransactionStore
	cfg         Config
	log         zerolog.Logger

	// injectable for tests
	now   func() time.Time
	newID func() string
}

// NewPipeline wires the pipeline against the given ledger and store.
func NewPipeline(ledger MessageLedger, store TransactionStore, cfg Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		extractor:   extract.New(),
		categorizer: categorize.New(),
		scorer:      score.New(),
		gate: &dedupGate{
			ledger:  ledger,
			store:   store,
			epsilon: cfg.AmountEpsilon,
			log:     log,
		},
		ledger: ledger,
		store:  store,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// FilterNew drops messages whose content hash is already in the ledger.
// The incremental-fetch path uses this before extraction so a re-scan over
// old messages is cheap.
func (p *Pipeline) FilterNew(ctx context.Context, messages []domain.RawMessage) ([]domain.RawMessage, error) {
	fresh := make([]domain.RawMessage, 0, len(messages))
	for _, msg := range messages {
		seen, err := p.ledger.Exists(ctx, msg.ContentHash())
		if err != nil {
			return nil, err
		}
		if !seen {
			fresh = append(fresh, msg)
		}
	}
	return fresh, nil
}

// ProcessOne runs a single message through the full pipeline and returns its
// terminal outcome. No retries happen within a pass; a rejected message may
// be re-supplied later and the hash check decides whether that is a no-op.
func (p *Pipeline) ProcessOne(ctx context.Context, msg domain.RawMessage) domain.Outcome {
	contentHash := msg.ContentHash()

	seen, err := p.gate.isDuplicateMessage(ctx, contentHash)
	if err != nil {
		p.log.Error().Err(err).Str("message_id", msg.ID).Msg("ledger lookup failed")
		return domain.Errored(domain.ReasonStorageError, "ledger lookup: "+err.Error())
	}
	if seen {
		return domain.Skipped(domain.ReasonDuplicateMessage, "message already evaluated")
	}

	res, ok := p.extractor.Extract(msg.Body)
	if !ok {
		// The common case for non-financial SMS; not an error.
		p.log.Debug().Str("message_id", msg.ID).Msg("no pattern matched")
		return domain.Skipped(domain.ReasonNoPatternMatch, "no bank template matched")
	}
	candidate := res.Candidate
	candidate.RawMessageID = msg.ID

	scored := domain.ScoredCandidate{
		ExtractedCandidate: candidate,
		Confidence:         p.scorer.Score(msg.Body, candidate, res.GroupCount),
	}

	if v := Validate(scored, p.cfg); !v.OK {
		p.log.Debug().Str("message_id", msg.ID).Str("reason", string(v.Reason)).
			Str("detail", v.Detail).Msg("candidate rejected")
		return domain.Skipped(v.Reason, v.Detail)
	}

	day := candidate.OccurredOn
	if day.IsZero() {
		// SMS date unresolved; fall back to the processing date for the
		// same-day duplicate window.
		day = dateOnly(p.now())
	}

	// Re-check the hash at finalization time to close the race window
	// between the pre-extraction filter and here. Best effort: a lookup
	// failure at this point does not block processing.
	if seen, err := p.gate.isDuplicateMessage(ctx, contentHash); err != nil {
		p.log.Warn().Err(err).Str("message_id", msg.ID).Msg("hash re-check failed, continuing")
	} else if seen {
		return domain.Skipped(domain.ReasonDuplicateMessage, "message already evaluated")
	}

	if p.gate.isNearDuplicate(ctx, candidate, day) {
		// The message itself is consumed: record it so it is never
		// re-evaluated, but link no transaction.
		record := domain.ProcessedMessageRecord{
			MessageID:   msg.ID,
			ContentHash: contentHash,
			ProcessedAt: p.now(),
		}
		if err := p.ledger.Append(ctx, record); err != nil {
			p.log.Error().Err(err).Str("message_id", msg.ID).Msg("ledger append failed")
			return domain.Errored(domain.ReasonStorageError, "ledger append: "+err.Error())
		}
		return domain.Skipped(domain.ReasonDuplicateTransaction,
			"matches an already-recorded transaction for "+day.Format(time.DateOnly))
	}

	tx := p.finalize(scored, day)
	if err := p.store.Create(ctx, tx); err != nil {
		// A valid, non-duplicate transaction risks going un-recorded; this is
		// the failure worth surfacing prominently.
		p.log.Error().Err(err).Str("message_id", msg.ID).Msg("transaction create failed")
		return domain.Errored(domain.ReasonStorageError, "transaction create: "+err.Error())
	}

	record := domain.ProcessedMessageRecord{
		MessageID:     msg.ID,
		ContentHash:   contentHash,
		TransactionID: tx.ID,
		ProcessedAt:   p.now(),
	}
	if err := p.ledger.Append(ctx, record); err != nil {
		// The transaction exists but the message is not marked processed; a
		// later re-scan is caught by the near-duplicate check.
		p.log.Error().Err(err).Str("message_id", msg.ID).Str("transaction_id", tx.ID).
			Msg("ledger append failed after create")
		return domain.Errored(domain.ReasonStorageError, "ledger append: "+err.Error())
	}

	p.log.Info().Str("message_id", msg.ID).Str("transaction_id", tx.ID).
		Float64("amount", tx.Amount).Str("category", tx.Category).
		Msg("transaction created")
	return domain.Created(&tx)
}

// ProcessBatch runs messages sequentially in the order given. Later messages
// may legitimately be deduplicated against earlier ones within the same
// batch, because each message's side effects are committed before the next
// begins.
func (p *Pipeline) ProcessBatch(ctx context.Context, messages []domain.RawMessage) domain.BatchSummary {
	summary := domain.BatchSummary{
		Results: make([]domain.MessageResult, 0, len(messages)),
	}
	for _, msg := range messages {
		outcome := p.ProcessOne(ctx, msg)
		summary.ProcessedCount++
		switch outcome.Status {
		case domain.StatusCreated:
			summary.CreatedCount++
		case domain.StatusSkipped:
			summary.SkippedCount++
		case domain.StatusErrored:
			summary.ErrorCount++
		}
		summary.Results = append(summary.Results, domain.MessageResult{
			MessageID: msg.ID,
			Outcome:   outcome,
		})
	}
	p.log.Info().Int("processed", summary.ProcessedCount).
		Int("created", summary.CreatedCount).
		Int("skipped", summary.SkippedCount).
		Int("errors", summary.ErrorCount).
		Msg("batch complete")
	return summary
}

// finalize builds the durable transaction from a validated candidate.
// OccurredAt is stamped with processing time; SMS bodies carry at best a
// date, never a reliable time.
func (p *Pipeline) finalize(c domain.ScoredCandidate, day time.Time) domain.FinalizedTransaction {
	handle := ""
	if strings.Contains(c.Counterparty, "@") {
		handle = c.Counterparty
	}
	return domain.FinalizedTransaction{
		ID:              p.newID(),
		Amount:          c.Amount,
		Direction:       c.Direction,
		Merchant:        c.Counterparty,
		Category:        p.categorizer.Categorize(c.Counterparty, handle),
		OccurredOn:      day,
		OccurredAt:      p.now(),
		Reference:       c.Reference,
		AccountFragment: c.AccountFragment,
		SourceMessageID: c.RawMessageID,
		Confidence:      c.Confidence,
		AutoDetected:    true,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

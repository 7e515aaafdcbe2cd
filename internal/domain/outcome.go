package domain

// Status is the terminal state of a message after one pipeline pass.
type Status string

const (
	StatusCreated Status = "CREATED"
	StatusSkipped Status = "SKIPPED"
	StatusErrored Status = "ERRORED"
)

// Reason classifies why a message was skipped or errored.
type Reason string

const (
	ReasonNoPatternMatch       Reason = "no_pattern_match"
	ReasonLowConfidence        Reason = "low_confidence"
	ReasonAmountOutOfRange     Reason = "amount_out_of_range"
	ReasonMissingCounterparty  Reason = "missing_counterparty"
	ReasonInvalidDirection     Reason = "invalid_direction"
	ReasonDuplicateMessage     Reason = "duplicate_message"
	ReasonDuplicateTransaction Reason = "duplicate_transaction"
	ReasonStorageError         Reason = "storage_error"
)

// Outcome is the closed result variant for a single processed message.
type Outcome struct {
	Status      Status                `json:"status"`
	Reason      Reason                `json:"reason,omitempty"`
	Detail      string                `json:"detail,omitempty"`
	Transaction *FinalizedTransaction `json:"transaction,omitempty"`
}

// Created builds the success outcome carrying the finalized transaction.
func Created(tx *FinalizedTransaction) Outcome {
	return Outcome{Status: StatusCreated, Transaction: tx}
}

// Skipped builds a terminal non-error outcome with a machine reason and a
// human-readable detail for logging.
func Skipped(reason Reason, detail string) Outcome {
	return Outcome{Status: StatusSkipped, Reason: reason, Detail: detail}
}

// Errored builds an outcome for a storage integration failure.
func Errored(reason Reason, detail string) Outcome {
	return Outcome{Status: StatusErrored, Reason: reason, Detail: detail}
}

// MessageResult pairs a message id with its outcome inside a batch summary.
type MessageResult struct {
	MessageID string  `json:"message_id"`
	Outcome   Outcome `json:"outcome"`
}

// BatchSummary aggregates the outcomes of one ordered batch pass.
type BatchSummary struct {
	ProcessedCount int             `json:"processed_count"`
	CreatedCount   int             `json:"created_count"`
	SkippedCount   int             `json:"skipped_count"`
	ErrorCount     int             `json:"error_count"`
	Results        []MessageResult `json:"per_message_results"`
}

package domain

import "time"

// Direction defines the flow of money in a detected transaction.
type Direction string

const (
	DirectionOutgoing Direction = "OUTGOING"
	DirectionIncoming Direction = "INCOMING"
)

// Valid reports whether the direction is one of the two known values.
func (d Direction) Valid() bool {
	return d == DirectionOutgoing || d == DirectionIncoming
}

// ReferenceUnavailable is stored when a bank template exposes no reference number.
const ReferenceUnavailable = "N/A"

// ExtractedCandidate is a structured extraction produced from one raw message.
// It is transient: it either becomes a FinalizedTransaction or is discarded.
type ExtractedCandidate struct {
	Direction       Direction
	Amount          float64
	Counterparty    string
	OccurredOn      time.Time // zero value means the SMS date could not be resolved
	Reference       string    // ReferenceUnavailable when the template has none
	AccountFragment string
	RawMessageID    string
}

// ScoredCandidate is an ExtractedCandidate with a confidence score attached.
type ScoredCandidate struct {
	ExtractedCandidate
	Confidence float64 // [0, 1]
}

// FinalizedTransaction is the durable output of the pipeline. Once handed to
// the transaction store it is never mutated.
type FinalizedTransaction struct {
	ID              string    `json:"id"`
	Amount          float64   `json:"amount"`
	Direction       Direction `json:"direction"`
	Merchant        string    `json:"merchant"`
	Category        string    `json:"category"`
	OccurredOn      time.Time `json:"occurred_on"`
	OccurredAt      time.Time `json:"occurred_at"` // processing time, not SMS time
	Reference       string    `json:"reference"`
	AccountFragment string    `json:"account_fragment"`
	SourceMessageID string    `json:"source_message_id"`
	Confidence      float64   `json:"confidence"`
	AutoDetected    bool      `json:"auto_detected"`
}

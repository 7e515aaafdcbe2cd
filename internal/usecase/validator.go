package usecase

import (
	"fmt"

	"sms-transaction-detector/internal/domain"
)

// Config holds the tunable thresholds of the pipeline.
type Config struct {
	// MinConfidence is the lowest score a candidate may carry and still be
	// finalized.
	MinConfidence float64
	// MinAmount and MaxAmount bound acceptable amounts, inclusive.
	MinAmount float64
	MaxAmount float64
	// AmountEpsilon is the tolerance used when comparing amounts in the
	// near-duplicate check.
	AmountEpsilon float64
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		MinConfidence: 0.6,
		MinAmount:     1,
		MaxAmount:     1_000_000,
		AmountEpsilon: 0.01,
	}
}

// Validation is the outcome of a sanity check on a scored candidate.
type Validation struct {
	OK     bool
	Reason domain.Reason
	Detail string
}

func rejected(reason domain.Reason, format string, args ...interface{}) Validation {
	return Validation{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// Validate rejects candidates failing sanity bounds. Pure and
// side-effect-free; the detail string is for logging, not control flow.
func Validate(c domain.ScoredCandidate, cfg Config) Validation {
	if c.Confidence < cfg.MinConfidence {
		return rejected(domain.ReasonLowConfidence,
			"confidence %.2f below threshold %.2f", c.Confidence, cfg.MinConfidence)
	}
	if c.Amount < cfg.MinAmount || c.Amount > cfg.MaxAmount {
		return rejected(domain.ReasonAmountOutOfRange,
			"amount %.2f outside [%.0f, %.0f]", c.Amount, cfg.MinAmount, cfg.MaxAmount)
	}
	if isBlank(c.Counterparty) {
		return rejected(domain.ReasonMissingCounterparty, "counterparty is empty")
	}
	if !c.Direction.Valid() {
		return rejected(domain.ReasonInvalidDirection, "unknown direction %q", c.Direction)
	}
	return Validation{OK: true}
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}

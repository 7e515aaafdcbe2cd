package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sms-transaction-detector/internal/domain"
)

func scoredCandidate(amount float64, confidence float64) domain.ScoredCandidate {
	return domain.ScoredCandidate{
		ExtractedCandidate: domain.ExtractedCandidate{
			Direction:    domain.DirectionOutgoing,
			Amount:       amount,
			Counterparty: "merchant@upi",
		},
		Confidence: confidence,
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		candidate  domain.ScoredCandidate
		wantOK     bool
		wantReason domain.Reason
	}{
		{
			name:      "valid candidate",
			candidate: scoredCandidate(500, 0.8),
			wantOK:    true,
		},
		{
			name:       "confidence below threshold",
			candidate:  scoredCandidate(500, 0.59),
			wantReason: domain.ReasonLowConfidence,
		},
		{
			name:      "confidence exactly at threshold passes",
			candidate: scoredCandidate(500, 0.6),
			wantOK:    true,
		},
		{
			name:       "amount below one rupee",
			candidate:  scoredCandidate(0.50, 0.9),
			wantReason: domain.ReasonAmountOutOfRange,
		},
		{
			name:      "amount exactly one rupee passes",
			candidate: scoredCandidate(1, 0.9),
			wantOK:    true,
		},
		{
			name:      "amount at upper bound passes",
			candidate: scoredCandidate(1_000_000, 0.9),
			wantOK:    true,
		},
		{
			name:       "amount above upper bound",
			candidate:  scoredCandidate(1_000_001, 0.9),
			wantReason: domain.ReasonAmountOutOfRange,
		},
		{
			name: "blank counterparty",
			candidate: domain.ScoredCandidate{
				ExtractedCandidate: domain.ExtractedCandidate{
					Direction:    domain.DirectionOutgoing,
					Amount:       500,
					Counterparty: "   ",
				},
				Confidence: 0.9,
			},
			wantReason: domain.ReasonMissingCounterparty,
		},
		{
			name: "unknown direction",
			candidate: domain.ScoredCandidate{
				ExtractedCandidate: domain.ExtractedCandidate{
					Direction:    domain.Direction("SIDEWAYS"),
					Amount:       500,
					Counterparty: "merchant@upi",
				},
				Confidence: 0.9,
			},
			wantReason: domain.ReasonInvalidDirection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.candidate, cfg)
			if tt.wantOK {
				assert.True(t, got.OK)
				assert.Empty(t, got.Reason)
			} else {
				assert.False(t, got.OK)
				assert.Equal(t, tt.wantReason, got.Reason)
				assert.NotEmpty(t, got.Detail)
			}
		})
	}
}

func TestValidate_CustomThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinConfidence = 0.8

	got := Validate(scoredCandidate(500, 0.7), cfg)
	assert.False(t, got.OK)
	assert.Equal(t, domain.ReasonLowConfidence, got.Reason)
}

// Package score computes a trust score for an extracted candidate from
// independent signals in the raw message.
package score

import (
	"regexp"
	"strings"

	"sms-transaction-detector/internal/domain"
)

const (
	baseScore = 0.5
	maxScore  = 1.0

	// richGroupCount is the group arity of a fully-structured bank template
	// (amount, account, counterparty, date and reference all present).
	richGroupCount = 5
)

// brandTokens are bank and PSP names whose presence in a body marks it as a
// genuine financial sender template rather than an accidental pattern hit.
var brandTokens = []string{
	"kotak", "hdfc", "icici", "sbi", "axis", "federal", "idfc", "indusind",
	"yes bank", "canara", "pnb", "bank of baroda",
	"paytm", "phonepe", "gpay", "google pay", "bhim", "amazon pay",
}

// referenceMarkerPattern matches an explicit reference marker adjacent to a
// numeric reference ("UPI Ref 2279...", "Ref No. 331...").
var referenceMarkerPattern = regexp.MustCompile(`(?i)\bref(?:erence)?(?:\s*no)?\.?\s*[:#]?\s*\d{4,}`)

// canonicalAmountPattern matches the canonical "Rs.<number>" amount shape.
var canonicalAmountPattern = regexp.MustCompile(`(?i)\brs\.\s?\d`)

// Scorer assigns confidence scores. Stateless and safe to share.
type Scorer struct{}

// New returns a Scorer.
func New() *Scorer {
	return &Scorer{}
}

// Score starts at 0.5 and adds a fixed increment per independently-satisfied
// signal, capped at 1.0. Increments are additive and order-independent; this
// component has no precedence logic.
func (s *Scorer) Score(rawBody string, _ domain.ExtractedCandidate, matchGroupCount int) float64 {
	score := baseScore
	body := strings.ToLower(rawBody)

	if matchGroupCount >= richGroupCount {
		score += 0.2
	}
	if containsBrandToken(body) {
		score += 0.2
	}
	if referenceMarkerPattern.MatchString(rawBody) {
		score += 0.1
	}
	if canonicalAmountPattern.MatchString(rawBody) {
		score += 0.1
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

func containsBrandToken(lowerBody string) bool {
	for _, token := range brandTokens {
		if strings.Contains(lowerBody, token) {
			return true
		}
	}
	return false
}

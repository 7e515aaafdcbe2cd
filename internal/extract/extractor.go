// Package extract turns raw bank/UPI SMS bodies into structured transaction
// candidates by applying an ordered table of per-bank message templates.
package extract

import (
	"strconv"
	"strings"
	"time"

	"sms-transaction-detector/internal/domain"
)

// Result carries a successful extraction plus the match metadata the
// confidence scorer needs.
type Result struct {
	Candidate    domain.ExtractedCandidate
	TemplateName string
	GroupCount   int // non-empty capture groups in the winning match
}

// Extractor applies the template table to message bodies. It is stateless and
// safe to share.
type Extractor struct {
	templates []template
}

// New returns an extractor over the default template table.
func New() *Extractor {
	return &Extractor{templates: defaultTemplates}
}

// Extract evaluates templates in table order and returns the first match
// whose amount parses as a positive decimal. A structural match with an
// unparseable amount is not a candidate: the extractor falls through and
// tries the remaining templates. Returns ok=false when nothing matches,
// which is the common case for non-financial SMS.
func (e *Extractor) Extract(body string) (Result, bool) {
	for _, t := range e.templates {
		m := t.re.FindStringSubmatch(body)
		if m == nil {
			continue
		}

		amount, err := parseAmount(group(m, t.amountGroup))
		if err != nil || amount <= 0 {
			// Field-parse failure; patterns are independent, keep trying.
			continue
		}

		candidate := domain.ExtractedCandidate{
			Direction:       t.direction,
			Amount:          amount,
			Counterparty:    cleanCounterparty(group(m, t.counterpartyGroup)),
			OccurredOn:      parseMessageDate(group(m, t.dateGroup)),
			Reference:       referenceOrUnavailable(group(m, t.referenceGroup)),
			AccountFragment: strings.ToUpper(group(m, t.accountGroup)),
		}

		return Result{
			Candidate:    candidate,
			TemplateName: t.name,
			GroupCount:   countNonEmptyGroups(m),
		}, true
	}
	return Result{}, false
}

func group(m []string, idx int) string {
	if idx <= 0 || idx >= len(m) {
		return ""
	}
	return m[idx]
}

func countNonEmptyGroups(m []string) int {
	n := 0
	for _, g := range m[1:] {
		if strings.TrimSpace(g) != "" {
			n++
		}
	}
	return n
}

// parseAmount converts an amount string like "1,234.50" to a float64,
// stripping thousands separators first.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(s, 64)
}

// messageDateLayouts covers the date shapes seen across bank templates:
// "29-11-25", "05-12-2025", "02/01/26" and the SBI "29Nov25" form.
var messageDateLayouts = []string{
	"02-01-06",
	"02-01-2006",
	"2-1-06",
	"02/01/06",
	"02/01/2006",
	"02Jan06",
	"02Jan2006",
	"2Jan06",
}

// parseMessageDate resolves an SMS date fragment to a calendar date.
// Returns the zero time when the fragment is missing or unrecognized;
// callers treat that as "date unknown".
func parseMessageDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	normalized := normalizeMonthCase(s)
	for _, layout := range messageDateLayouts {
		if d, err := time.Parse(layout, normalized); err == nil {
			return d
		}
	}
	return time.Time{}
}

// normalizeMonthCase rewrites "29nov25" / "29NOV25" to "29Nov25" so the
// fixed Go layouts match regardless of the bank's casing.
func normalizeMonthCase(s string) string {
	b := []byte(s)
	for i := range b {
		c := b[i]
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !isLetter {
			continue
		}
		prevIsLetter := i > 0 && ((b[i-1] >= 'a' && b[i-1] <= 'z') || (b[i-1] >= 'A' && b[i-1] <= 'Z'))
		if prevIsLetter {
			if c >= 'A' && c <= 'Z' {
				b[i] = c + 'a' - 'A'
			}
		} else {
			if c >= 'a' && c <= 'z' {
				b[i] = c - ('a' - 'A')
			}
		}
	}
	return string(b)
}

// cleanCounterparty trims stray punctuation and collapses runs of spaces left
// behind by the capture groups.
func cleanCounterparty(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ".,-")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}

func referenceOrUnavailable(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.ReferenceUnavailable
	}
	return s
}

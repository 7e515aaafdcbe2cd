package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"sms-transaction-detector/internal/domain"
)

// MessageFilter narrows which messages a fetch returns, mirroring the filter
// the platform message source accepts.
type MessageFilter struct {
	// MaxCount caps the number of returned messages; 0 means no cap.
	MaxCount int
	// SinceTimestampMs drops messages older than this; 0 means no lower bound.
	SinceTimestampMs int64
	// SenderAllowList keeps only messages whose sender contains one of these
	// tokens (case-insensitive); empty means all senders.
	SenderAllowList []string
}

// financialKeywords is the cheap prefilter that narrows candidates to
// probable financial messages before the pipeline sees them. It is a
// heuristic; the pattern extractor makes the real decision.
var financialKeywords = []string{
	"debited", "credited", "sent rs", "spent", "paid", "upi", "a/c", "txn",
	"withdrawn", "transferred",
}

// FileMessageSource reads SMS messages from a JSON export file
// (an array of {id, body, sender, timestamp_ms} objects).
type FileMessageSource struct{}

// NewFileMessageSource creates a new message source instance.
func NewFileMessageSource() *FileMessageSource {
	return &FileMessageSource{}
}

// GetMessages reads the export at path, applies the filter and the
// probable-financial prefilter, and returns messages in file order
// (callers export oldest-first).
func (r *FileMessageSource) GetMessages(ctx context.Context, path string, filter MessageFilter) ([]domain.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open message export %s: %w", path, err)
	}

	var all []domain.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("failed to parse message export %s: %w", path, err)
	}

	var messages []domain.RawMessage
	for _, msg := range all {
		if filter.SinceTimestampMs > 0 && msg.TimestampMs < filter.SinceTimestampMs {
			continue
		}
		if !senderAllowed(msg.Sender, filter.SenderAllowList) {
			continue
		}
		if !looksFinancial(msg.Body) {
			continue
		}
		messages = append(messages, msg)
		if filter.MaxCount > 0 && len(messages) >= filter.MaxCount {
			break
		}
	}
	return messages, nil
}

func senderAllowed(sender string, allowList []string) bool {
	if len(allowList) == 0 {
		return true
	}
	lower := strings.ToLower(sender)
	for _, token := range allowList {
		if strings.Contains(lower, strings.ToLower(token)) {
			return true
		}
	}
	return false
}

func looksFinancial(body string) bool {
	lower := strings.ToLower(body)
	for _, kw := range financialKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

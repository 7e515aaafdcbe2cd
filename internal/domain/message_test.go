package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRawMessage_ContentHash(t *testing.T) {
	base := RawMessage{
		ID:          "msg-1",
		Body:        "Rs.500.00 debited from A/c XX4321",
		Sender:      "VM-HDFCBK",
		TimestampMs: 1764400000000,
	}

	// Stable across calls and independent of the message ID.
	assert.Equal(t, base.ContentHash(), base.ContentHash())
	renamed := base
	renamed.ID = "msg-2"
	assert.Equal(t, base.ContentHash(), renamed.ContentHash())

	tests := []struct {
		name   string
		mutate func(m RawMessage) RawMessage
	}{
		{
			name: "body changes the hash",
			mutate: func(m RawMessage) RawMessage {
				m.Body = "Rs.500.00 debited from A/c XX4322"
				return m
			},
		},
		{
			name: "sender changes the hash",
			mutate: func(m RawMessage) RawMessage {
				m.Sender = "VM-ICICIB"
				return m
			},
		},
		{
			name: "timestamp changes the hash",
			mutate: func(m RawMessage) RawMessage {
				m.TimestampMs++
				return m
			},
		},
		{
			name: "field boundary shift changes the hash",
			mutate: func(m RawMessage) RawMessage {
				m.Sender = m.Sender + "R"
				m.Body = m.Body[1:]
				return m
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base.ContentHash(), tt.mutate(base).ContentHash())
		})
	}
}

func TestRawMessage_ReceivedAt(t *testing.T) {
	m := RawMessage{TimestampMs: 1764400000000}
	assert.Equal(t, time.UnixMilli(1764400000000), m.ReceivedAt())
}

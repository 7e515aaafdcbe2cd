package gateway

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportJSON = `[
	{"id": "msg-1", "body": "Sent Rs.29.00 from Kotak Bank AC X1583 to Q376099045@ybl on 29-11-25.UPI Ref 227911213761.", "sender": "AD-KOTAKB", "timestamp_ms": 1000},
	{"id": "msg-2", "body": "Your OTP for login is 443211. Do not share it with anyone.", "sender": "AX-LOGIN", "timestamp_ms": 2000},
	{"id": "msg-3", "body": "Rs.120.50 debited from A/c XX4321 on 05-12-25 to VPA swiggy.upi@icici. UPI Ref No 334455667788", "sender": "VM-HDFCBK", "timestamp_ms": 3000},
	{"id": "msg-4", "body": "FLAT 50% OFF on your next order! Hurry, offer ends tonight.", "sender": "DM-PROMOS", "timestamp_ms": 4000},
	{"id": "msg-5", "body": "Rs.2500.00 credited to A/c XX8821 on 12-01-26 by VPA rahul@okaxis. IMPS Ref No 900145223311", "sender": "VM-AXISBK", "timestamp_ms": 5000}
]`

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileMessageSource_GetMessages(t *testing.T) {
	path := writeExport(t, exportJSON)
	src := NewFileMessageSource()
	ctx := context.Background()

	t.Run("prefilter drops non-financial messages", func(t *testing.T) {
		got, err := src.GetMessages(ctx, path, MessageFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "msg-1", got[0].ID)
		assert.Equal(t, "msg-3", got[1].ID)
		assert.Equal(t, "msg-5", got[2].ID)
	})

	t.Run("since timestamp lower bound", func(t *testing.T) {
		got, err := src.GetMessages(ctx, path, MessageFilter{SinceTimestampMs: 3000})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "msg-3", got[0].ID)
	})

	t.Run("max count cap", func(t *testing.T) {
		got, err := src.GetMessages(ctx, path, MessageFilter{MaxCount: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "msg-1", got[0].ID)
	})

	t.Run("sender allow list", func(t *testing.T) {
		got, err := src.GetMessages(ctx, path, MessageFilter{SenderAllowList: []string{"hdfcbk"}})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "msg-3", got[0].ID)
	})
}

func TestFileMessageSource_Errors(t *testing.T) {
	src := NewFileMessageSource()
	ctx := context.Background()

	_, err := src.GetMessages(ctx, filepath.Join(t.TempDir(), "missing.json"), MessageFilter{})
	assert.Error(t, err)

	path := writeExport(t, `{"not": "an array"}`)
	_, err = src.GetMessages(ctx, path, MessageFilter{})
	assert.Error(t, err)
}

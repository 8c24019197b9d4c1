package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name   string
		entry  *LogEntry
		key    string
		value  interface{}
		verify func(*testing.T, *LogEntry)
	}{
		{
			name:  "initialises nil fields",
			entry: &LogEntry{},
			key:   "label_count",
			value: 3,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, 3, e.Fields["label_count"])
			},
		},
		{
			name: "keeps existing fields",
			entry: &LogEntry{
				Fields: map[string]interface{}{"strategy": "remainder_on_last"},
			},
			key:   "total_quantity",
			value: 100,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "remainder_on_last", e.Fields["strategy"])
				assert.Equal(t, 100, e.Fields["total_quantity"])
			},
		},
		{
			name: "overwrites a field",
			entry: &LogEntry{
				Fields: map[string]interface{}{"new_sum": 40},
			},
			key:   "new_sum",
			value: 55,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, 55, e.Fields["new_sum"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithField(tt.key, tt.value)
			assert.Same(t, tt.entry, result)
			tt.verify(t, result)
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	entry := &LogEntry{ActionType: ActionEditRejected}

	entry.WithFields(map[string]interface{}{
		"index":          0,
		"total_quantity": 50,
	}).WithFields(map[string]interface{}{
		"new_sum": 55,
	})

	assert.Len(t, entry.Fields, 3)
	assert.Equal(t, 55, entry.Fields["new_sum"])
	assert.Equal(t, ActionEditRejected, entry.ActionType)
}

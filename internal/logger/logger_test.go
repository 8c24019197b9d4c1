//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			Init(tt.level, false)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
	Init("info", false)
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestInitWithWriter_AddsServiceField(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", false, &buf)
	defer Init("info", false)

	l := Logger()
	l.Info().Msg("ready")

	line := decodeLine(t, &buf)
	assert.Equal(t, ServiceName, line["service"])
	assert.Equal(t, "ready", line["message"])
}

func TestInitWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", true, &buf)
	defer Init("info", false)

	l := Logger()
	l.Info().Msg("pretty line")
	assert.Contains(t, buf.String(), "pretty line")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("debug", false, &buf)
	defer Init("info", false)

	l := WithContext(map[string]interface{}{"request_id": "req-1", "labels": 3})
	l.Debug().Msg("ctx")

	line := decodeLine(t, &buf)
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, float64(3), line["labels"])
}

func TestForWorkflow(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", false, &buf)
	defer Init("info", false)

	l := ForWorkflow("wf-1", "GRN-1|RM-1")
	l.Info().Msg("generated")

	line := decodeLine(t, &buf)
	assert.Equal(t, "wf-1", line["workflow_id"])
	assert.Equal(t, "GRN-1|RM-1", line["context_key"])
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_RoleField verifies that every log entry contains the role.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", Options{Format: FormatJSON, Output: &buf})

	l.Info().Msg("hello")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("caller-role", Options{Format: FormatJSON, Output: &buf})
	l.Info().Msg("x")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	entry := decodeLine(t, &buf)
	assert.Contains(t, entry["func"], "TestNewLogger_CallerFieldName")
}

// TestNewLogger_LevelFiltering verifies that entries below the configured
// level are dropped.
func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("lvl", Options{Level: "warn", Format: FormatJSON, Output: &buf})

	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

// TestNewLogger_AutoFormatNonTTY verifies that auto format falls back to JSON
// when the output is not a terminal.
func TestNewLogger_AutoFormatNonTTY(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("auto", Options{Output: &buf})
	l.Info().Msg("json please")

	assert.True(t, strings.HasPrefix(buf.String(), "{"))
}

// TestNewLogger_TextFormat verifies that the text format is not JSON.
func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("text", Options{Format: FormatText, Output: &buf})
	l.Info().Msg("human line")

	assert.Contains(t, buf.String(), "human line")
	assert.False(t, strings.HasPrefix(buf.String(), "{"))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"console", FormatText},
		{"", FormatAuto},
		{"weird", FormatAuto},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFormat(tt.in))
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" ERROR "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

// TestNop_DiscardsOutput verifies that Nop never panics and is disabled.
func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Info().Msg("nothing")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// TestGetChildLogger_Independent verifies that fields added to the child do
// not leak into the parent.
func TestGetChildLogger_Independent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("p", Options{Format: FormatJSON, Output: &buf})
	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("extra", "1")
	})

	parent.Info().Msg("parent")
	entry := decodeLine(t, &buf)
	assert.NotContains(t, entry, "extra")
}

// TestWithTraceID_AttachesLogger verifies that the context carries a logger
// with a trace_id field.
func TestWithTraceID_AttachesLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("trace", Options{Format: FormatJSON, Output: &buf})

	ctx, _ := l.WithTraceID(context.Background())
	FromContext(ctx).Info().Msg("traced")

	entry := decodeLine(t, &buf)
	traceID, ok := entry["trace_id"].(string)
	require.True(t, ok)
	assert.Len(t, traceID, 36)
}

// TestFromContext_NoLogger verifies that FromContext never returns nil.
func TestFromContext_NoLogger(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	l.Info().Msg("should not panic")
}

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"TRACE", zerolog.TraceLevel},
		{" info ", zerolog.InfoLevel},
		{"error", zerolog.ErrorLevel},
		{"", DefaultLevel},
		{"loud", DefaultLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", true)

	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestComponentAndCommand(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(&buf, "debug", true), "runtime")

	LogCommand(logger, "git", []string{"init"}, "/tmp/x")

	out := buf.String()
	assert.Contains(t, out, "component=runtime")
	assert.Contains(t, out, "Executing command")
	assert.Contains(t, out, "git")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	done := LogOperationStart(New(&buf, "debug", true), "copy")
	done()

	assert.Contains(t, buf.String(), "Operation started")
	assert.Contains(t, buf.String(), "Operation completed")
}

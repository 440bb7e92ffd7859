package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/n0rdy/palindromes/types/loglevels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConsoleLogger_RespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLoggerTo(buf, loglevels.INFO)

	logger.Trace("trace message")
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message", errors.New("boom"))
	logger.Error("error message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], " [INFO] info message")
	assert.Contains(t, lines[1], " [WARN] warn message: boom")
	assert.Contains(t, lines[2], " [ERROR] error message")
	assert.NoError(t, logger.Close())
}

func TestConsoleLogger_SkipsNilErrors(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLoggerTo(buf, loglevels.TRACE)

	logger.Error("failed", nil, errors.New("a"), errors.New("b"))

	assert.Contains(t, buf.String(), " [ERROR] failed: a; b")
}

func TestZapLogger_MapsLevelsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLoggerFrom(zap.New(core))

	logger.Trace("trace message")
	logger.Info("info message")
	logger.Warn("warn message", errors.New("boom"))
	logger.Error("error message", errors.New("a"), errors.New("b"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, true, entries[0].ContextMap()["trace"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Contains(t, entries[3].ContextMap(), "errors")
}

func TestNewZapLogger_Builds(t *testing.T) {
	logger, err := NewZapLogger(loglevels.DEBUG, true)
	require.NoError(t, err)
	logger.Debug("hello")
}

func TestOrNoOps(t *testing.T) {
	assert.IsType(t, &NoOpsLogger{}, OrNoOps(nil))

	console := NewConsoleLogger(loglevels.ERROR)
	assert.Same(t, console, OrNoOps(console))
}

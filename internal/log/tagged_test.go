package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFormat(t *testing.T) {
	line := Format("", Name("chest"), "opened", 3)
	assert.Equal(t, "[\x1b[94mchest\x1b[0m]: opened; 3", line)

	line = Format(prefixError, nil, "boom")
	assert.Equal(t, "\x1b[31m<!>\x1b[0m[\x1b[94mNullObject\x1b[0m]: boom", line)
}

func TestTaggedLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := context.WithValue(context.Background(), loggerContextKey, zap.New(core))

	obj := Name("player")
	Log(ctx, obj, "a")
	LogError(ctx, obj, "b")
	LogWarning(ctx, obj, "c")
	LogSuccess(ctx, obj, "d")

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 4) {
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
		assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
		assert.Equal(t, zapcore.InfoLevel, entries[3].Level)
		assert.Contains(t, entries[3].Message, "<O>")
	}
}

func TestInto(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := context.WithValue(context.Background(), loggerContextKey, zap.New(core))

	ctx = Into(ctx, "tables")
	ctx = With(ctx, zap.String("table", "chest"))
	Info(ctx, "loaded")

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "tables", entries[0].LoggerName)
		assert.Equal(t, "chest", entries[0].ContextMap()["table"])
	}
}

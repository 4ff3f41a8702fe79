package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestEncodeEntryContainsMessageAndFields(t *testing.T) {
	enc := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2026, 3, 1, 13, 4, 35, 0, time.UTC),
		LoggerName: "pipeline",
		Message:    "dataset extracted",
	}
	fields := []zapcore.Field{
		zap.String("root", "results/data"),
		zap.Int("points", 24),
	}

	buf, err := enc.EncodeEntry(entry, fields)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "13:04:35")
	assert.Contains(t, out, "dataset extracted")
	assert.Contains(t, out, "root=results/data")
	assert.Contains(t, out, "points=24")
	assert.NotContains(t, out, "INFO", "info level marker should be suppressed")
}

func TestEncodeEntryShowsWarnLevel(t *testing.T) {
	enc := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:   zapcore.WarnLevel,
		Time:    time.Now(),
		Message: "documents dropped",
	}

	buf, err := enc.EncodeEntry(entry, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "WARN")
}

func TestAbbreviateName(t *testing.T) {
	assert.Equal(t, "pipeline", abbreviateName("pipeline"))
	assert.Equal(t, "c.locate", abbreviateName("criterion.locate"))
}

func TestFieldValueFloat(t *testing.T) {
	v := fieldValue(zap.Float64("time_ns", 26412.5))
	assert.Equal(t, "26412.5", v)
}

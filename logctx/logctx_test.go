package logctx

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogEntryRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	le := NewLogEntry(&buf, logrus.DebugLevel).WithField("run-id", "abc")
	ctx := WithLogEntry(context.Background(), le)

	got := GetLogEntry(ctx)
	require.Equal(t, le, got)

	got.Debug("hello")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "run-id=abc")
}

func TestGetLogEntryDefault(t *testing.T) {
	le := GetLogEntry(context.Background())
	require.NotNil(t, le)
	require.Equal(t, logrus.WarnLevel, le.Logger.GetLevel())
}

package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)})

	ctx := WithTraceID(context.Background(), "trace-123")
	l.InfoContext(ctx, "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "trace-123", rec[TraceIDKey])
	assert.Equal(t, "hello", rec["msg"])
}

func TestRemoteFilterHandlerDropsUntracedRecords(t *testing.T) {
	var local, remote bytes.Buffer
	h := &ContextHandler{NewTeeHandler(
		log.NewJSONHandler(&local, nil),
		&RemoteFilterHandler{next: log.NewJSONHandler(&remote, nil)},
	)}
	l := log.New(h)

	l.Info("startup")
	assert.NotEmpty(t, local.String())
	assert.Empty(t, remote.String())

	local.Reset()
	l.InfoContext(WithTraceID(context.Background(), "abc"), "request")
	assert.Contains(t, local.String(), `"trace_id":"abc"`)
	assert.Contains(t, remote.String(), `"trace_id":"abc"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, log.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, log.LevelError, ParseLevel("error"))
	assert.Equal(t, log.LevelInfo, ParseLevel("bogus"))
}

func TestSQLOperation(t *testing.T) {
	assert.Equal(t, "SELECT", sqlOperation("select * from users"))
	assert.Equal(t, "UPDATE", sqlOperation("  UPDATE posts SET likes = likes + 1"))
	assert.Equal(t, "Query", sqlOperation(""))
}

package mylog

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/storecli/lib/mycontext"
)

func TestLogger(t *testing.T) {

	t.Run("Standard", func(t *testing.T) {
		// given
		buf := &bytes.Buffer{}
		logger := NewStandardLogger("checkout", buf)

		// when
		logger.Log(context.TODO(), "7", SeverityInfo, "Order %d stored", 7)

		// then
		assert.Equal(t, "checkout - 7 - INFO - Order 7 stored\n", buf.String())
	})

	t.Run("Structured", func(t *testing.T) {
		// given
		buf := &bytes.Buffer{}
		logger := NewStructuredLogger("checkout", buf)
		c := context.WithValue(context.TODO(), mycontext.CtxTraceContext{}, "session-1")

		// when
		logger.Log(c, "7", SeverityWarn, "Could not write log: %s", "disk full")

		// then
		got := entry{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "checkout", got.Component)
		assert.Equal(t, "7", got.Labels["aggregate"])
		assert.Equal(t, "session-1", got.Session)
		assert.Equal(t, "WARN", got.Severity)
		assert.Equal(t, "checkout:Could not write log: disk full", got.Message)
	})

	t.Run("Structured without session", func(t *testing.T) {
		buf := &bytes.Buffer{}
		NewStructuredLogger("cart", buf).Log(context.TODO(), "", SeverityDebug, "empty")
		assert.Contains(t, buf.String(), `"message":"cart:empty"`)
		assert.NotContains(t, buf.String(), `"session"`)
	})
}

func TestFilteredLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := WithMinimumSeverity(NewStandardLogger("checkout", buf), SeverityWarn)

	logger.Log(context.TODO(), "", SeverityDebug, "debug")
	logger.Log(context.TODO(), "", SeverityInfo, "info")
	logger.Log(context.TODO(), "", SeverityWarn, "warn")
	logger.Log(context.TODO(), "", SeverityError, "error")

	assert.Equal(t, "checkout -  - WARN - warn\ncheckout -  - ERROR - error\n", buf.String())
}

func TestParseSeverity(t *testing.T) {
	severity, ok := ParseSeverity("debug")
	assert.True(t, ok)
	assert.Equal(t, SeverityDebug, severity)

	_, ok = ParseSeverity("verbose")
	assert.False(t, ok)
}

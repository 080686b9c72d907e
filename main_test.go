package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/storecli/checkout"
	"github.com/MarcGrol/storecli/lib/mylog"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		ordersFile: filepath.Join(dir, "orders.txt"),
		logFile:    filepath.Join(dir, "logs.txt"),
		mode:       checkout.ModeLenient,
		logLevel:   mylog.SeverityError,
	}

	t.Run("first session checks out order 1", func(t *testing.T) {
		// given
		out := &bytes.Buffer{}

		// when
		err := run(context.TODO(), cfg, strings.NewReader("1 ABC 3 n 2 y 1 4"), out)

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Order 1 saved successfully!")

		orders, err := os.ReadFile(cfg.ordersFile)
		require.NoError(t, err)
		assert.Equal(t, "Order ID: 1\nTotal Amount: 60\nPayment Method: Cash\nOrder Details:\nABC Paper 20 3\n---------------------------\n", string(orders))

		logs, err := os.ReadFile(cfg.logFile)
		require.NoError(t, err)
		assert.Equal(t, "[LOG] Order ID: 1 successfully checked out using Cash.\n", string(logs))
	})

	t.Run("restart continues with order 2", func(t *testing.T) {
		// given
		out := &bytes.Buffer{}

		// when
		err := run(context.TODO(), cfg, strings.NewReader("1 POI 1 n 2 y 3 3 4"), out)

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Order 2 saved successfully!")
		assert.Contains(t, out.String(), "Order ID: 1")
		assert.Contains(t, out.String(), "Payment Method: GCash")
	})

	t.Run("corrupt order file stops startup", func(t *testing.T) {
		// given
		corrupt := cfg
		corrupt.ordersFile = filepath.Join(dir, "corrupt.txt")
		require.NoError(t, os.WriteFile(corrupt.ordersFile, []byte("Order ID: abc\n"), 0644))

		// when
		err := run(context.TODO(), corrupt, strings.NewReader("4"), &bytes.Buffer{})

		// then
		assert.ErrorContains(t, err, "error creating checkout service")
	})
}

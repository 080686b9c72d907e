package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/storecli/checkout"
	"github.com/MarcGrol/storecli/lib/mylog"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// when
		cfg, err := loadConfig([]string{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "orders.txt", cfg.ordersFile)
		assert.Equal(t, "logs.txt", cfg.logFile)
		assert.Equal(t, checkout.ModeLenient, cfg.mode)
		assert.Equal(t, "", cfg.adminAddr)
		assert.Equal(t, mylog.SeverityWarn, cfg.logLevel)
	})

	t.Run("environment", func(t *testing.T) {
		// given
		t.Setenv("STORE_ORDERS_FILE", "/tmp/o.txt")
		t.Setenv("STORE_CHECKOUT_MODE", "strict")
		t.Setenv("STORE_ADMIN_ADDR", ":9090")

		// when
		cfg, err := loadConfig([]string{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "/tmp/o.txt", cfg.ordersFile)
		assert.Equal(t, checkout.ModeStrict, cfg.mode)
		assert.Equal(t, ":9090", cfg.adminAddr)
	})

	t.Run("flags override environment", func(t *testing.T) {
		// given
		t.Setenv("STORE_LOG_FILE", "/tmp/env-log.txt")

		// when
		cfg, err := loadConfig([]string{"-log", "/tmp/flag-log.txt", "-log-level", "debug"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-log.txt", cfg.logFile)
		assert.Equal(t, mylog.SeverityDebug, cfg.logLevel)
	})

	t.Run("unknown mode", func(t *testing.T) {
		// when
		_, err := loadConfig([]string{"-mode", "eager"})

		// then
		assert.EqualError(t, err, `unknown checkout mode "eager"`)
	})

	t.Run("unknown log level", func(t *testing.T) {
		// when
		_, err := loadConfig([]string{"-log-level", "loud"})

		// then
		assert.EqualError(t, err, `unknown log level "loud"`)
	})

	t.Run("empty orders file", func(t *testing.T) {
		// when
		_, err := loadConfig([]string{"-orders", ""})

		// then
		assert.Error(t, err)
	})
}

package initializer

import (
	"bytes"
	"context"
	"testing"

	"github.com/mibanco/fintech/pkg/config"
	"github.com/mibanco/fintech/pkg/domain/events"
	"github.com/mibanco/fintech/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&config.Log{Format: "logfmt", Prefix: "[test]"}, &buf)

	logger.Info("hello", "account_number", "SAV-1")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "SAV-1")
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&config.Log{Level: 8, Format: "text"}, &buf)

	logger.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestAuditEventsLogsRecord(t *testing.T) {
	var buf bytes.Buffer
	handler := auditEvents(NewLogger(&config.Log{Format: "logfmt"}, &buf))

	handler(context.Background(), events.Deposited{
		Base:    events.NewBase(events.WithAccountNumber("SAV-1")),
		Amount:  money.NewFromInt(5),
		Balance: money.NewFromInt(105),
	})
	assert.Contains(t, buf.String(), "deposit of 5.00 to SAV-1 completed")
}

func TestInitializeDependencies(t *testing.T) {
	_, err := InitializeDependencies(nil)
	require.Error(t, err)

	cfg := &config.App{Env: "test", Log: &config.Log{Level: 8}}
	deps, err := InitializeDependencies(cfg)
	require.NoError(t, err)
	assert.NotNil(t, deps.Registry)
	assert.NotNil(t, deps.EventBus)
	assert.NotNil(t, deps.Logger)
	assert.Same(t, cfg, deps.Config)
}

package mapreduce

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunConfig_AppliesAllOptions(t *testing.T) {
	id := uuid.New()
	arg, err := ValueOf(map[string]int{"n": 1})
	require.NoError(t, err)

	cfg, err := NewRunConfig(
		WithAccountID(id),
		WithScript("return 1", "main.lua"),
		WithArg(arg),
	)
	require.NoError(t, err)

	assert.Equal(t, id, cfg.AccountID)
	assert.Equal(t, "return 1", cfg.ScriptSource)
	assert.Equal(t, "main.lua", cfg.ScriptPath)
	assert.Equal(t, arg, cfg.Arg)
}

func TestNewRunConfig_NilOptionPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = NewRunConfig(WithScript("return 1", "main.lua"), nil)
	})
}

func TestNewRunConfig_PropagatesValidationError(t *testing.T) {
	_, err := NewRunConfig(WithScript("return 1", "main.lua"), WithWorkerPoolSize(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWithReceiveTimeoutAndReporterPeriod(t *testing.T) {
	cfg, err := NewRunConfig(
		WithScript("return 1", "main.lua"),
		WithReceiveTimeout(5*time.Millisecond),
		WithReporterPeriod(10*time.Millisecond),
	)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Millisecond, cfg.ReceiveTimeout)
	assert.Equal(t, 10*time.Millisecond, cfg.ReporterPeriod)
}

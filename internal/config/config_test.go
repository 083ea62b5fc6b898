package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, Config{
		TemporalHost:      "localhost:7233",
		TemporalNamespace: "default",
		TaskQueue:         "solid-payroll",
		LogMode:           "development",
	}, cfg)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"SOLID_TEMPORAL_HOST": "temporal:7233",
		"SOLID_TASK_QUEUE":    "payroll-eu",
		"SOLID_LOG_MODE":      "production",
	})
	require.NoError(t, err)

	assert.Equal(t, "temporal:7233", cfg.TemporalHost)
	assert.Equal(t, "default", cfg.TemporalNamespace)
	assert.Equal(t, "payroll-eu", cfg.TaskQueue)
	assert.Equal(t, "production", cfg.LogMode)
}

func TestLoad(t *testing.T) {
	t.Setenv("SOLID_TASK_QUEUE", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.TaskQueue)
}

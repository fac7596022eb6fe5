package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ratessvc "service-rates/internal/service/rates"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATES_POLICY", "")
	t.Setenv("RATES_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ratessvc.PolicyLenient, cfg.Policy)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RATES_POLICY", "strict")
	t.Setenv("RATES_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ratessvc.PolicyStrict, cfg.Policy)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_BadPolicy(t *testing.T) {
	t.Setenv("RATES_POLICY", "forgiving")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATES_POLICY")
}

func TestLoadConfig_BadTimeout(t *testing.T) {
	t.Setenv("RATES_POLICY", "")
	t.Setenv("RATES_TIMEOUT", "-5s")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATES_TIMEOUT")
}

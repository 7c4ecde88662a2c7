package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/efoerster/texlab/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesPresentFields(t *testing.T) {
	cfg, err := config.Load(map[string]any{
		"completionLimit": 10,
		"fetchMetadata":   false,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.CompletionLimit)
	assert.False(t, cfg.FetchMetadata)
	assert.Equal(t, "https://ctan.org", cfg.CtanURL)
}

func TestLoadRejectsWrongTypes(t *testing.T) {
	_, err := config.Load(map[string]any{"completionLimit": "many"})
	assert.Error(t, err)
}

func TestLoadFromJSON(t *testing.T) {
	cfg, err := config.LoadFromJSON(strings.NewReader(`{"componentDatabase": "/tmp/c.db", "requestTimeout": 0}`))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.db", cfg.ComponentDatabase)
	assert.Equal(t, time.Duration(0), cfg.Timeout())

	_, err = config.LoadFromJSON(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestTimeout(t *testing.T) {
	assert.Equal(t, 2*time.Second, config.Default().Timeout())
}

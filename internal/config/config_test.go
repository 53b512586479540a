package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BROWSER_HEADLESS", "true")
	t.Setenv("EXTRACT_STRICT_IDS", "true")

	conf, err := GetConfig()

	require.NoError(t, err)
	assert.Equal(t, "debug", conf.AppConfig.LogLevel)
	assert.True(t, conf.BrowserConfig.Headless)
	assert.True(t, conf.ExtractConfig.StrictIDs)
}

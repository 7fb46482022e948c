package config_test

import (
	"path/filepath"
	"testing"

	"github.com/getdeskhelp/deskhelp-cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	origDir, origPath := config.DefaultConfigDir, config.DefaultConfigFilePath
	config.DefaultConfigDir = filepath.Join(t.TempDir(), "deskhelp")
	config.DefaultConfigFilePath = filepath.Join(config.DefaultConfigDir, config.DefaultConfigFileName)
	t.Cleanup(func() {
		config.DefaultConfigDir, config.DefaultConfigFilePath = origDir, origPath
	})

	t.Run("APIHostFallsBackWithoutConfigFile", func(t *testing.T) {
		assert.Equal(t, config.DefaultAPIHost, config.APIHost())
	})

	t.Run("SaveThenLoadRoundTrip", func(t *testing.T) {
		cfg := &config.Config{APIHost: "http://helpdesk.internal:8000"}
		require.NoError(t, cfg.Save())

		loaded, err := config.LoadFromFile()
		require.NoError(t, err)
		assert.Equal(t, "http://helpdesk.internal:8000", loaded.APIHost)
		assert.Equal(t, "http://helpdesk.internal:8000", config.APIHost())
	})

	t.Run("APIHostFallsBackWhenUnset", func(t *testing.T) {
		require.NoError(t, (&config.Config{}).Save())
		assert.Equal(t, config.DefaultAPIHost, config.APIHost())
	})
}

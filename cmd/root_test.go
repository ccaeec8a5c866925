package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/mailharvest/internal/config"
)

// resetConfig clears the shared viper state between tests and restores the
// flag bindings that init() established on the previous instance.
func resetConfig(t *testing.T) {
	t.Helper()

	reset := func() {
		viper.Reset()
		bindFlags(viper.GetViper())
		cfgFile = ""
	}
	reset()
	t.Cleanup(reset)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigFlagRead(t *testing.T) {
	resetConfig(t)

	path := writeConfigFile(t, "harvest:\n  timeout: -1s\n")

	require.NoError(t, rootCmd.ParseFlags([]string{"--config", path}))
	require.NoError(t, initConfig())

	_, err := config.Load(viper.GetViper())
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "timeout must be positive")
}

func TestConfigFlagMissingFile(t *testing.T) {
	resetConfig(t)

	path := filepath.Join(t.TempDir(), "nope.yaml")

	require.NoError(t, rootCmd.ParseFlags([]string{"--config", path}))
	require.Error(t, initConfig())
}

func TestConfigPrecedence(t *testing.T) {
	resetConfig(t)

	path := writeConfigFile(t, "harvest:\n  user_agent: agent-from-file\n")

	require.NoError(t, rootCmd.ParseFlags([]string{"--config", path}))
	require.NoError(t, initConfig())

	cfg, err := config.Load(viper.GetViper())
	require.NoError(t, err)
	assert.Equal(t, "agent-from-file", cfg.Harvest.UserAgent,
		"config file overrides default")
	assert.Equal(t, config.DefaultTimeout, cfg.Harvest.Timeout,
		"unset keys keep their defaults")

	t.Setenv("MAILHARVEST_HARVEST_USER_AGENT", "agent-from-env")

	cfg, err = config.Load(viper.GetViper())
	require.NoError(t, err)
	assert.Equal(t, "agent-from-env", cfg.Harvest.UserAgent,
		"environment overrides config file")

	require.NoError(t, rootCmd.ParseFlags([]string{"--user-agent", "agent-from-flag"}))

	cfg, err = config.Load(viper.GetViper())
	require.NoError(t, err)
	assert.Equal(t, "agent-from-flag", cfg.Harvest.UserAgent,
		"flag overrides environment")
}

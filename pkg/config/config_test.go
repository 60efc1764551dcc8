package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwclarke/rijndael/pkg/crypto/hashattack"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, 16, cfg.Defaults.AttackBits)
	assert.Equal(t, hashattack.DefaultTrials, cfg.Defaults.AttackTrials)
	assert.Equal(t, 4096, cfg.Defaults.DeriveIterations)
	assert.Equal(t, 16, cfg.Defaults.DeriveKeySize)
	assert.True(t, cfg.UI.UseColor)
	assert.Equal(t, "normal", cfg.UI.Verbosity)
}

func TestManagerCreatesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("RIJNDAEL_CONFIG", path)

	cm, err := NewConfigManager()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cm.GetConfig())

	// First use persists the defaults.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestManagerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("RIJNDAEL_CONFIG", path)

	cm, err := NewConfigManager()
	require.NoError(t, err)

	cfg := cm.GetConfig()
	cfg.Defaults.AttackBits = 20
	cfg.UI.UseColor = false
	require.NoError(t, cm.SaveConfig())

	reloaded, err := NewConfigManager()
	require.NoError(t, err)
	assert.Equal(t, 20, reloaded.GetConfig().Defaults.AttackBits)
	assert.False(t, reloaded.GetConfig().UI.UseColor)
}

func TestManagerResetsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("RIJNDAEL_CONFIG", path)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	cm, err := NewConfigManager()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cm.GetConfig())
}

func TestApplyDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("RIJNDAEL_CONFIG", path)

	cm, err := NewConfigManager()
	require.NoError(t, err)

	unset := hashattack.Config{}
	cm.ApplyDefaults(&unset)
	assert.Equal(t, 16, unset.Bits)
	assert.Equal(t, hashattack.DefaultTrials, unset.Trials)
	assert.Equal(t, hashattack.DefaultMessageLen, unset.MessageLen)

	explicit := hashattack.Config{Bits: 8, Trials: 5, MessageLen: 10}
	cm.ApplyDefaults(&explicit)
	assert.Equal(t, 8, explicit.Bits)
	assert.Equal(t, 5, explicit.Trials)
	assert.Equal(t, 10, explicit.MessageLen)
}

func TestConfigPathDiscovery(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("RIJNDAEL_CONFIG", "/tmp/custom/rijndael.json")

		path, err := getConfigPath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom/rijndael.json", path)
	})

	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv("RIJNDAEL_CONFIG", "")
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdgtest")

		path, err := getConfigPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/tmp/xdgtest", "rijndael", "config.json"), path)
	})
}

package core

import (
	"path/filepath"
	"testing"

	"github.com/julien-sobczak/emotion-dashboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigFromDirectory(t *testing.T) {

	t.Run("Config missing", func(t *testing.T) {
		dir := t.TempDir()

		config, err := ReadConfigFromDirectory(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, config.HomeDirectory)
		assert.Equal(t, "12h", config.ConfigFile.Display.Clock)
		assert.True(t, config.ConfigFile.Display.AltScreen)
		assert.True(t, config.ConfigFile.Navigation.Home)
		assert.False(t, config.Uses24hClock())
		require.NoError(t, config.Check())
	})

	t.Run("Config present", func(t *testing.T) {
		path := testutil.SetUpFromFileContent(t, ConfigFileName, `
[display]
clock = "24h"

[navigation]
home = false
`)

		config, err := ReadConfigFromDirectory(filepath.Dir(path))
		require.NoError(t, err)
		assert.True(t, config.Uses24hClock())
		assert.True(t, config.ConfigFile.Display.AltScreen) // default kept
		assert.False(t, config.ConfigFile.Navigation.Home)
		require.NoError(t, config.Check())
	})

	t.Run("Config invalid", func(t *testing.T) {
		path := testutil.SetUpFromFileContent(t, ConfigFileName, `
[display]
clock = "36h"
`)

		config, err := ReadConfigFromDirectory(filepath.Dir(path))
		require.NoError(t, err)
		err = config.Check()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid display.clock "36h"`)
	})

	t.Run("Config broken", func(t *testing.T) {
		path := testutil.SetUpFromFileContent(t, ConfigFileName, `[display`)

		_, err := ReadConfigFromDirectory(filepath.Dir(path))
		require.Error(t, err)
	})
}

func TestCurrentConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EMOTION_DASHBOARD_HOME", dir)
	ResetConfig()
	defer ResetConfig()

	config := CurrentConfig()
	assert.Equal(t, dir, config.HomeDirectory)
	assert.Same(t, config, CurrentConfig())
}

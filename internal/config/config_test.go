package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load(LoadOptions{ProjectDir: t.TempDir(), SkipUser: true})
	require.NoError(t, err)

	assert.Equal(t, ".opencode", settings.RootDir)
	assert.True(t, settings.ShowProgress)
	assert.Equal(t, "warn", settings.LogLevel)
	assert.False(t, settings.NoColor)
}

func TestLoad_ProjectConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".notekit"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".notekit", "config.yml"),
		[]byte("root_dir: .commands-root\nlog_level: debug\n"), 0o644))

	settings, err := Load(LoadOptions{ProjectDir: dir, SkipUser: true})
	require.NoError(t, err)

	assert.Equal(t, ".commands-root", settings.RootDir)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.True(t, settings.ShowProgress, "untouched keys keep defaults")
}

func TestLoad_LegacyJSONConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".notekit"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".notekit", "config.json"),
		[]byte(`{"root_dir": ".legacy", "no_color": true}`), 0o644))

	settings, err := Load(LoadOptions{ProjectDir: dir, SkipUser: true})
	require.NoError(t, err)

	assert.Equal(t, ".legacy", settings.RootDir)
	assert.True(t, settings.NoColor)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".notekit"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".notekit", "config.yml"),
		[]byte("root_dir: .from-file\n"), 0o644))

	t.Setenv("NOTEKIT_ROOT_DIR", ".from-env")

	settings, err := Load(LoadOptions{ProjectDir: dir, SkipUser: true})
	require.NoError(t, err)
	assert.Equal(t, ".from-env", settings.RootDir)
}

func TestLoad_MalformedConfigErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".notekit"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".notekit", "config.yml"),
		[]byte(":\n  - not valid yaml: ["), 0o644))

	_, err := Load(LoadOptions{ProjectDir: dir, SkipUser: true})
	assert.Error(t, err)
}

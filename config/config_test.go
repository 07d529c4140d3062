package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.Empty(t, cfg.History)
	assert.False(t, cfg.Debug)
}

func TestParse(t *testing.T) {
	{
		cfg, err := Parse([]byte("prompt: \"mal> \"\nhistory: /tmp/mal_history\ndebug: true\n"))
		require.NoError(t, err)
		assert.Equal(t, "mal> ", cfg.Prompt)
		assert.Equal(t, "/tmp/mal_history", cfg.History)
		assert.True(t, cfg.Debug)
	}

	{
		cfg, err := Parse([]byte("debug: true\n"))
		require.NoError(t, err)
		assert.Equal(t, DefaultPrompt, cfg.Prompt)
	}

	{
		cfg, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	}

	{
		cfg, err := Parse([]byte("# nothing set\n"))
		require.NoError(t, err)
		assert.Equal(t, DefaultPrompt, cfg.Prompt)
	}

	{
		_, err := Parse([]byte("colour: blue\n"))
		assert.Error(t, err)
	}

	{
		_, err := Parse([]byte("debug: [\n"))
		assert.Error(t, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"> \"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, path, cfg.Path)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load("")
	assert.Error(t, err)
}

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1000, cfg.HistorySize)
	assert.Equal(t, "$ ", cfg.PromptSuffix)
	assert.False(t, cfg.Debug)
}

func TestLoadEnvDefaultsHistFile(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("HISTFILE", "")
	t.Setenv("PATH", "/usr/bin")
	t.Setenv("NU_DEBUG", "")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "/home/tester", env.Home)
	assert.Equal(t, "/home/tester/.nu_history", env.HistFile)
	assert.Equal(t, "/usr/bin", env.Path)
	assert.False(t, env.DebugFlag)
}

func TestLoadEnvRespectsExplicitHistFile(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("HISTFILE", "/custom/histfile")
	t.Setenv("NU_DEBUG", "true")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "/custom/histfile", env.HistFile)
	assert.True(t, env.DebugFlag)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	_ = os.RemoveAll(dir + "/.nu-shell")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfg := &Config{HistorySize: 42, PromptSuffix: "nu> ", Debug: true}
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

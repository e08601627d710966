package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/bikeshare/internal/model"
	"github.com/rcliao/bikeshare/internal/testutil"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		dataDir, configPath, logLevel = "", "", ""
	})
	t.Setenv("BIKESHARE_CONFIG", "")
	t.Setenv("BIKESHARE_DATA_DIR", "")
	t.Setenv("HOME", t.TempDir())
}

func TestLoadConfig_Precedence(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	configPath = testutil.WriteFile(t, dir, "config.ini", "[data]\ndir = /from/config\n[log]\nlevel = error\n")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/from/config", cfg.DataDir)
	assert.Equal(t, "error", cfg.LogLevel)

	t.Setenv("BIKESHARE_DATA_DIR", "/from/env")
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.DataDir)

	dataDir, logLevel = "/from/flag", "debug"
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_NoFile(t *testing.T) {
	resetFlags(t)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.DataDir)
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	resetFlags(t)
	configPath = filepath.Join(t.TempDir(), "missing.ini")

	_, err := loadConfig()
	require.Error(t, err)
}

func TestOpenTrips(t *testing.T) {
	resetFlags(t)
	dataDir = testutil.DataDir(t)

	cfg, err := loadConfig()
	require.NoError(t, err)
	logger, err := newLogger(cfg)
	require.NoError(t, err)

	f, err := model.ParseFilter("chicago", "march", "all")
	require.NoError(t, err)
	s, err := openTrips(context.Background(), cfg, logger, f)
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestOpenTrips_MissingFile(t *testing.T) {
	resetFlags(t)
	dataDir = t.TempDir()

	cfg, err := loadConfig()
	require.NoError(t, err)
	logger, err := newLogger(cfg)
	require.NoError(t, err)

	_, err = openTrips(context.Background(), cfg, logger, model.Filter{City: "washington", Month: "all", Day: "all"})
	require.Error(t, err)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"report", "sample", "cities", "export"} {
		assert.True(t, names[want], want)
	}
}

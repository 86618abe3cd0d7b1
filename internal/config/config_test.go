package config_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/citymap/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "citymap.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Map.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[map]
file = "maps/west.hcl"
parallel_roads = true

[log]
level = "DEBUG"
format = "json"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "maps/west.hcl", cfg.Map.File)
	assert.True(t, cfg.Map.ParallelRoads)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// Unset keys keep their defaults.
	assert.Equal(t, 10, cfg.Log.MaxSize)
	assert.Equal(t, 7, cfg.Log.MaxAge)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"bad level":    "[log]\nlevel = \"loud\"\n",
		"bad format":   "[log]\nformat = \"xml\"\n",
		"negative age": "[log]\nmax_age = -1\n",
		"unknown key":  "[map]\nfile = \"x.hcl\"\ncolour = \"red\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(writeConfig(t, "[log\n"))
	assert.Error(t, err)
	_, err = config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger_Fallback(t *testing.T) {
	var buf bytes.Buffer
	lc := config.Default().Log
	lc.Format = "json"
	lc.Level = "warn"

	logger, closer := lc.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "query_id", "q1")
	require.NoError(t, closer.Close())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "q1", rec["query_id"])
}

func TestNewLogger_File(t *testing.T) {
	var buf bytes.Buffer
	lc := config.Default().Log
	lc.File = filepath.Join(t.TempDir(), "logs", "citymap.log")

	logger, closer := lc.NewLogger(&buf)
	logger.Info("to file")
	require.NoError(t, closer.Close())

	assert.Zero(t, buf.Len())
	data, err := os.ReadFile(lc.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"to file\"")
}

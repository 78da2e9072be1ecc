package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"MATHQUEST_DB", "MATHQUEST_LOG_LEVEL", "MATHQUEST_LOG_FILE", "MATHQUEST_ADDR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DBPath)
}

func TestLoad_EnvFileAndOverride(t *testing.T) {
	t.Setenv("MATHQUEST_ADDR", "127.0.0.1:9000")
	for _, k := range []string{"MATHQUEST_LOG_LEVEL", "MATHQUEST_DB"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "MATHQUEST_DB=/tmp/q.db\nMATHQUEST_LOG_LEVEL=debug\nMATHQUEST_ADDR=0.0.0.0:1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/q.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr, "process env wins over .env")
}

func TestLoad_BadLevel(t *testing.T) {
	t.Setenv("MATHQUEST_LOG_LEVEL", "loud")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, slog.LevelWarn, true).Info("hidden")
	assert.Empty(t, buf.String())

	NewLogger(&buf, slog.LevelInfo, true).Info("shown", "k", 1)
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestOpenLogFile_DefaultsNextToDB(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenLogFile("", filepath.Join(dir, "data", "mathquest.db"))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, filepath.Join(dir, "data", "mathquest.log"), f.Name())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "tribunal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
db_path: /var/lib/tribunal
log_level: debug
log_type: json
contract_address: juno1contract
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		DBPath:          "/var/lib/tribunal",
		LogLevel:        "debug",
		LogType:         "json",
		ContractAddress: "juno1contract",
	}, cfg)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "db_path: /from/file\nlog_level: warn\n")
	t.Setenv("TRIBUNAL_DB_PATH", "/from/env")
	t.Setenv("TRIBUNAL_LOG_TYPE", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogType)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed_yaml", "db_path: [unterminated"},
		{"empty_address", "contract_address: \"\"\nin_memory: true\n"},
		{"no_db_path", "db_path: \"\"\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

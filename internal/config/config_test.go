package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "env: production\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, defaultPort, cfg.Port)
	require.False(t, cfg.IsDev())
	require.Contains(t, cfg.ResolveDSN(), "globetrotter")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "prot: 8080\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	path := writeConfig(t, "port: 99999\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestExplicitDSNWins(t *testing.T) {
	path := writeConfig(t, "dsn: user:pw@tcp(db:3306)/trips?parseTime=True\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "user:pw@tcp(db:3306)/trips?parseTime=True", cfg.ResolveDSN())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

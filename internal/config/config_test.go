package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "sqlite", cfg.Databases.Test5.Provider)
	assert.Equal(t, "blog.sqlite", cfg.Databases.Blog.DSN)
	assert.False(t, cfg.Databases.JiraKiller.Verbose)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
  gin_mode: release
databases:
  jirakiller:
    provider: postgres
    dsn: host=localhost dbname=jira
    verbose: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "postgres", cfg.Databases.JiraKiller.Provider)
	assert.Equal(t, "host=localhost dbname=jira", cfg.Databases.JiraKiller.DSN)
	assert.True(t, cfg.Databases.JiraKiller.Verbose)
	// Untouched sections keep their defaults
	assert.Equal(t, "test5.sqlite", cfg.Databases.Test5.DSN)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DEMODB_SERVER_PORT", "7070")
	t.Setenv("DEMODB_DATABASES_BLOG_DSN", "file:blog.db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "file:blog.db", cfg.Databases.Blog.DSN)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

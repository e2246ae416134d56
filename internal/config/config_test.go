package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, ":8000", c.Addr())
	assert.Equal(t, "aoa", c.Database.Name)
	assert.Equal(t, 5, c.Database.MaxOpenConns)
	assert.Contains(t, c.Server.AllowOrigins, "http://localhost:3000")
	assert.Empty(t, c.Server.IdentitySecret)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
database:
  host: db.internal
  name: aoa_prod
`), 0o644))

	t.Setenv("PORT", "9100")
	t.Setenv("DB_USER", "aoa_rw")

	c := Load(path)
	assert.Equal(t, ":9100", c.Addr())
	assert.Equal(t, "db.internal", c.Database.Host)
	assert.Equal(t, "aoa_prod", c.Database.Name)
	assert.Equal(t, "aoa_rw", c.Database.User)
}

package omnisettings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverride(t *testing.T) {
	t.Run("TOML", func(t *testing.T) {
		path := writeFile(t, "settings.toml", `
"db.host" = "override"

[cache]
ttl = 120
`)
		working := map[string]string{"db.host": "original", "db.port": "5432"}
		require.NoError(t, loadOverride(path, working))

		assert.Equal(t, map[string]string{
			"db.host":   "override",
			"db.port":   "5432",
			"cache.ttl": "120",
		}, working)
	})

	t.Run("JSON", func(t *testing.T) {
		path := writeFile(t, "settings.json", `{"db": {"host": "json-host", "port": 6543}, "flag": true}`)
		working := make(map[string]string)
		require.NoError(t, loadOverride(path, working))

		assert.Equal(t, "json-host", working["db.host"])
		assert.Equal(t, "6543", working["db.port"]) // json.Number keeps the literal
		assert.Equal(t, "true", working["flag"])
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeFile(t, "settings.yaml", "db:\n  host: yaml-host\n  port: 7654\n")
		working := make(map[string]string)
		require.NoError(t, loadOverride(path, working))

		assert.Equal(t, "yaml-host", working["db.host"])
		assert.Equal(t, "7654", working["db.port"])
	})

	t.Run("ExtensionlessFileDetectedFromContent", func(t *testing.T) {
		path := writeFile(t, "settings", `{"detected": "json"}`)
		working := make(map[string]string)
		require.NoError(t, loadOverride(path, working))
		assert.Equal(t, "json", working["detected"])
	})

	t.Run("MissingFileIsFatal", func(t *testing.T) {
		err := loadOverride(filepath.Join(t.TempDir(), "absent.toml"), map[string]string{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOverrideUnreadable)
	})

	t.Run("MalformedFileIsFatal", func(t *testing.T) {
		path := writeFile(t, "settings.toml", "not [valid toml")
		err := loadOverride(path, map[string]string{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOverrideUnreadable)
	})
}

func TestDetectFileFormat(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"settings.toml", "toml"},
		{"settings.tml", "toml"},
		{"settings.json", "json"},
		{"settings.yaml", "yaml"},
		{"settings.YML", "yaml"},
		{"settings.conf", ""},
		{"settings", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, detectFileFormat(tt.path))
		})
	}
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "plain", stringify("plain"))
	assert.Equal(t, "true", stringify(true))
	assert.Equal(t, "42", stringify(int64(42)))
	assert.Equal(t, "42", stringify(42))
	assert.Equal(t, "2.5", stringify(2.5))
}

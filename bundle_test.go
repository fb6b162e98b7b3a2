package omnisettings

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundleFS(content string) fstest.MapFS {
	return fstest.MapFS{
		"application-settings.toml": &fstest.MapFile{Data: []byte(content)},
	}
}

func TestLoadBundle(t *testing.T) {
	t.Run("NestedTablesFlattenToDottedKeys", func(t *testing.T) {
		fsys := bundleFS(`
[dev]
"top.level" = "direct"

[dev.db]
host = "localhost"
port = 5432

[dev.db.pool]
size = 10
`)
		working := make(map[string]string)
		require.NoError(t, loadBundle(fsys, "application-settings.toml", "dev", working))

		assert.Equal(t, map[string]string{
			"top.level":    "direct",
			"db.host":      "localhost",
			"db.port":      "5432",
			"db.pool.size": "10",
		}, working)
	})

	t.Run("NonScalarValuesAreStringified", func(t *testing.T) {
		fsys := bundleFS(`
[dev]
ratio = 0.25
enabled = true
`)
		working := make(map[string]string)
		require.NoError(t, loadBundle(fsys, "application-settings.toml", "dev", working))

		assert.Equal(t, "0.25", working["ratio"])
		assert.Equal(t, "true", working["enabled"])
	})

	t.Run("StageWithoutTableContributesNothing", func(t *testing.T) {
		fsys := bundleFS(`
[dev]
key = "value"
`)
		working := map[string]string{"pre": "existing"}
		require.NoError(t, loadBundle(fsys, "application-settings.toml", "prod", working))

		assert.Equal(t, map[string]string{"pre": "existing"}, working)
	})

	t.Run("MissingFileContributesNothing", func(t *testing.T) {
		working := make(map[string]string)
		require.NoError(t, loadBundle(fstest.MapFS{}, "application-settings.toml", "dev", working))
		assert.Empty(t, working)
	})

	t.Run("MalformedFileIsFatal", func(t *testing.T) {
		working := make(map[string]string)
		err := loadBundle(bundleFS("[broken"), "application-settings.toml", "dev", working)
		require.Error(t, err)
	})

	t.Run("BundleEntriesOverwriteExistingKeys", func(t *testing.T) {
		fsys := bundleFS(`
[dev]
key = "new"
`)
		working := map[string]string{"key": "old"}
		require.NoError(t, loadBundle(fsys, "application-settings.toml", "dev", working))
		assert.Equal(t, "new", working["key"])
	})
}

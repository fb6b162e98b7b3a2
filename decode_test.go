package omnisettings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	settings := frozen(map[string]string{
		"db.host":      "localhost",
		"db.port":      "5432",
		"db.timeout":   "30s",
		"db.replicas":  "r1,r2,r3",
		"db.pool.size": "10",
		"cache.ttl":    "60",
	})

	type pool struct {
		Size int `settings:"size"`
	}

	type dbConfig struct {
		Host     string        `settings:"host"`
		Port     int           `settings:"port"`
		Timeout  time.Duration `settings:"timeout"`
		Replicas []string      `settings:"replicas"`
		Pool     pool          `settings:"pool"`
	}

	t.Run("PrefixDecodesIntoStruct", func(t *testing.T) {
		var db dbConfig
		require.NoError(t, settings.Decode("db.", &db))

		assert.Equal(t, "localhost", db.Host)
		assert.Equal(t, 5432, db.Port)
		assert.Equal(t, 30*time.Second, db.Timeout)
		assert.Equal(t, []string{"r1", "r2", "r3"}, db.Replicas)
		assert.Equal(t, 10, db.Pool.Size)
	})

	t.Run("UnmatchedPrefixLeavesTargetZero", func(t *testing.T) {
		var db dbConfig
		require.NoError(t, settings.Decode("queue.", &db))
		assert.Equal(t, dbConfig{}, db)
	})

	t.Run("NonPointerTargetFails", func(t *testing.T) {
		var db dbConfig
		err := settings.Decode("db.", db)
		require.Error(t, err)
	})

	t.Run("MalformedNumberFails", func(t *testing.T) {
		bad := frozen(map[string]string{"db.port": "lots"})
		var db dbConfig
		err := bad.Decode("db.", &db)
		require.Error(t, err)
	})
}

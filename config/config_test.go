package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gridview/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.PageSize)
		assert.Equal(t, []int{5, 10, 20, 50, 100}, cfg.PageSizeOptions)
		assert.Equal(t, []string{"id", "_id"}, cfg.IdKeys)
		assert.Equal(t, 0.4, cfg.Threshold)
		assert.Equal(t, 0.8, cfg.ShortThreshold)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("file and env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gridview.yaml")
		content := `page_size: 20
id_keys: [uuid]
search:
  threshold: 0.3
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		t.Setenv("GRIDVIEW_LOG_LEVEL", "debug")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.PageSize)
		assert.Equal(t, []string{"uuid"}, cfg.IdKeys)
		assert.Equal(t, 0.3, cfg.Threshold)
		assert.Equal(t, "debug", cfg.LogLevel)

		opts := cfg.TableOptions()
		assert.Equal(t, 20, opts.PageSize)
		assert.Equal(t, 0.3, opts.Search.Threshold)
		assert.Equal(t, 0.8, opts.Search.ShortThreshold)
	})

	t.Run("invalid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gridview.yaml")
		require.NoError(t, os.WriteFile(path, []byte("page_size: 0\n"), 0o644))
		_, err := config.Load(path)
		assert.Error(t, err)

		_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

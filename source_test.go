package gridview_test

import (
	"os"
	"path/filepath"
	"testing"

	"gridview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSource(t *testing.T) {
	t.Run("array document", func(t *testing.T) {
		src := &gridview.JSONSource{Data: []byte(`[{"id":1,"name":"a"},{"id":2,"tags":["x"]}]`)}
		records, err := src.Fetch(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "a", records[0]["name"])
		assert.Equal(t, float64(2), records[1]["id"])
	})

	t.Run("nested root from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sites.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"data":{"sites":[{"name":"Ntinda"}]}}`), 0o644))
		src := &gridview.JSONSource{Path: path, Root: "data.sites"}
		records, err := src.Fetch(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Ntinda", records[0]["name"])
	})

	t.Run("errors", func(t *testing.T) {
		_, err := (&gridview.JSONSource{Data: []byte(`{"a":1}`)}).Fetch(ctx)
		assert.Error(t, err)
		_, err = (&gridview.JSONSource{Data: []byte(`[1,2]`)}).Fetch(ctx)
		assert.Error(t, err)
		_, err = (&gridview.JSONSource{Data: []byte(`[`)}).Fetch(ctx)
		assert.Error(t, err)
		_, err = (&gridview.JSONSource{Path: filepath.Join(t.TempDir(), "missing.json")}).Fetch(ctx)
		assert.Error(t, err)
	})
}

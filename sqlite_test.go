package gridview_test

import (
	"path/filepath"
	"testing"

	"gridview"
	"gridview/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSource(t *testing.T, table string) *gridview.SqliteSource {
	src, err := gridview.NewSqliteSource(table, nil)
	require.NoError(t, err)
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, src.Open(ctx, dbPath))
	t.Cleanup(func() {
		if err := src.Close(); err != nil {
			t.Logf("Failed to close database connection: %v", err)
		}
	})
	return src
}

func TestSqliteSource(t *testing.T) {
	t.Run("invalid table name", func(t *testing.T) {
		_, err := gridview.NewSqliteSource("sites; drop table x", nil)
		assert.Error(t, err)
	})

	t.Run("store and fetch", func(t *testing.T) {
		src := openSource(t, "sites")
		records := []common.Record{
			{"id": "s1", "name": "Ntinda", "status": "active"},
			{"id": "s2", "name": "Jinja", "status": "inactive"},
			{"name": "Entebbe"},
		}
		require.NoError(t, src.Store(ctx, records))

		got, err := src.Fetch(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "s1", got[0]["id"])
		assert.Equal(t, "Jinja", got[1]["name"])
		assert.NotEmpty(t, got[2]["_id"])
		_, hasId := got[0]["_id"]
		assert.False(t, hasId)
	})

	t.Run("same identity is replaced", func(t *testing.T) {
		src := openSource(t, "sites")
		require.NoError(t, src.Store(ctx, []common.Record{{"id": "s1", "name": "old"}}))
		require.NoError(t, src.Store(ctx, []common.Record{{"id": "s1", "name": "new"}}))

		got, err := src.Fetch(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "new", got[0]["name"])
	})

	t.Run("feeds a table", func(t *testing.T) {
		src := openSource(t, "sites")
		require.NoError(t, src.Store(ctx, []common.Record{
			{"id": "s1", "name": "Ntinda Road"},
			{"id": "s2", "name": "Jinja"},
		}))
		records, err := src.Fetch(ctx)
		require.NoError(t, err)

		table := gridview.NewTable(gridview.Options{Columns: []common.Column{{Key: "name"}}})
		table.SetData(records)
		require.NoError(t, table.SetSearch("ntinda"))
		v := table.View()
		require.Len(t, v.Live, 1)
		assert.Equal(t, "s1", v.Live[0]["id"])
	})
}

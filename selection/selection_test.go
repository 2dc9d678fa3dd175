package selection_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gridview/common"
	"gridview/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecords(n int) []common.Record {
	ret := make([]common.Record, n)
	for i := range ret {
		ret[i] = common.Record{"id": i, "name": fmt.Sprintf("row %d", i)}
	}
	return ret
}

func ids(records []common.Record) []interface{} {
	ret := make([]interface{}, len(records))
	for i, rec := range records {
		ret[i] = rec["id"]
	}
	return ret
}

func TestTracker(t *testing.T) {
	records := makeRecords(20)

	t.Run("toggle and header", func(t *testing.T) {
		tr := selection.New(selection.Options{})
		tr.Reconcile(records)
		page := records[:10]
		assert.Equal(t, selection.Unchecked, tr.Header(page))

		tr.Toggle(page[3], true)
		assert.True(t, tr.IsSelected(page[3]))
		assert.Equal(t, selection.Indeterminate, tr.Header(page))
		assert.Equal(t, selection.Selecting, tr.Phase())

		tr.ToggleAll(page, true)
		assert.Equal(t, selection.Checked, tr.Header(page))
		assert.Equal(t, 10, tr.Count())
		assert.Equal(t, selection.Unchecked, tr.Header(records[10:]))

		tr.ToggleAll(page, false)
		assert.Equal(t, 0, tr.Count())
		assert.Equal(t, selection.Idle, tr.Phase())
	})

	t.Run("empty page is unchecked", func(t *testing.T) {
		tr := selection.New(selection.Options{})
		assert.Equal(t, selection.Unchecked, tr.Header(nil))
	})

	t.Run("reconcile keeps the intersection", func(t *testing.T) {
		changes := 0
		tr := selection.New(selection.Options{OnChange: func([]common.Record) { changes++ }})
		tr.Reconcile(records)
		tr.ToggleAll(records[:10], true)
		assert.Equal(t, 1, changes)

		tr.Reconcile(records[5:15])
		assert.Equal(t, []interface{}{5, 6, 7, 8, 9}, ids(tr.Selected()))
		assert.Equal(t, 2, changes)

		tr.Reconcile(records)
		assert.Equal(t, 5, tr.Count())
		assert.Equal(t, 2, changes)
	})

	t.Run("selection follows refreshed instances", func(t *testing.T) {
		tr := selection.New(selection.Options{})
		tr.Reconcile(records)
		tr.Toggle(records[2], true)

		refreshed := makeRecords(20)
		refreshed[2]["name"] = "renamed"
		tr.Reconcile(refreshed)
		selected := tr.Selected()
		require.Len(t, selected, 1)
		assert.Equal(t, "renamed", selected[0]["name"])
	})

	t.Run("records outside the live set are ignored", func(t *testing.T) {
		tr := selection.New(selection.Options{})
		tr.Reconcile(records[:5])
		tr.Toggle(records[10], true)
		assert.Equal(t, 0, tr.Count())
	})

	t.Run("records without id use content identity", func(t *testing.T) {
		tr := selection.New(selection.Options{})
		a := common.Record{"name": "a"}
		b := common.Record{"name": "b"}
		tr.Reconcile([]common.Record{a, b})
		tr.Toggle(common.Record{"name": "b"}, true)
		assert.True(t, tr.IsSelected(b))
		assert.False(t, tr.IsSelected(a))
	})

	t.Run("selectable predicate", func(t *testing.T) {
		tr := selection.New(selection.Options{Selectable: func(rec common.Record) bool {
			return rec["id"].(int)%2 == 0
		}})
		page := records[:4]
		tr.Reconcile(records)
		tr.Toggle(page[1], true)
		assert.Equal(t, 0, tr.Count())
		tr.ToggleAll(page, true)
		assert.Equal(t, []interface{}{0, 2}, ids(tr.Selected()))
		assert.Equal(t, selection.Checked, tr.Header(page))
	})

	t.Run("clear", func(t *testing.T) {
		var last []common.Record
		tr := selection.New(selection.Options{OnChange: func(s []common.Record) { last = s }})
		tr.Reconcile(records)
		tr.Toggle(records[0], true)
		require.Len(t, last, 1)
		tr.Clear()
		assert.Empty(t, last)
		assert.Equal(t, selection.Idle, tr.Phase())
	})
}

func TestDispatch(t *testing.T) {
	records := makeRecords(5)
	ctx := context.Background()

	var got []common.Record
	errFailed := errors.New("failed")
	var tr *selection.Tracker
	actions := []common.Action{
		{Label: "Export", Value: "export", Handler: func(_ context.Context, s []common.Record) error {
			got = s
			return nil
		}},
		{Label: "Fail", Value: "fail", Handler: func(context.Context, []common.Record) error {
			return errFailed
		}},
		{Label: "Again", Value: "again", Handler: func(ctx context.Context, _ []common.Record) error {
			assert.Equal(t, selection.ActionPending, tr.Phase())
			return tr.Dispatch(ctx, nil, "export")
		}},
		{Label: "Nothing", Value: "nothing"},
	}

	tr = selection.New(selection.Options{})
	tr.Reconcile(records)

	t.Run("nothing selected is a no-op", func(t *testing.T) {
		assert.NoError(t, tr.Dispatch(ctx, actions, "export"))
		assert.Nil(t, got)
	})

	tr.Toggle(records[1], true)
	tr.Toggle(records[3], true)

	t.Run("no action chosen", func(t *testing.T) {
		assert.NoError(t, tr.Dispatch(ctx, actions, ""))
		assert.NoError(t, tr.Dispatch(ctx, actions, "unknown"))
		assert.NoError(t, tr.Dispatch(ctx, actions, "nothing"))
		assert.Nil(t, got)
	})

	t.Run("handler receives full records", func(t *testing.T) {
		assert.NoError(t, tr.Dispatch(ctx, actions, "export"))
		assert.Equal(t, []interface{}{1, 3}, ids(got))
		assert.Equal(t, selection.Selecting, tr.Phase())
	})

	t.Run("handler error is returned", func(t *testing.T) {
		assert.ErrorIs(t, tr.Dispatch(ctx, actions, "fail"), errFailed)
		assert.Equal(t, selection.Selecting, tr.Phase())
	})

	t.Run("reentrant dispatch is rejected", func(t *testing.T) {
		assert.ErrorIs(t, tr.Dispatch(ctx, actions, "again"), common.ErrActionPending)
		assert.Equal(t, selection.Selecting, tr.Phase())
	})
}

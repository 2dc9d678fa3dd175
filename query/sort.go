package query

import (
	"slices"
	"strings"

	"gridview/attribute"
	"gridview/common"
)

type sortEntry struct {
	rec     common.Record
	key     string
	present bool
}

// Sort 按字段的小写文本稳定排序，返回新的切片。
// 缺失或者nil的值无论升降序都排在最后
func Sort(records []common.Record, state common.SortState) []common.Record {
	if !state.Active() {
		return records
	}
	entries := make([]sortEntry, len(records))
	for i, rec := range records {
		v, _ := rec.Get(state.Key)
		key, ok := attribute.SortKey(v)
		entries[i] = sortEntry{rec: rec, key: key, present: ok}
	}
	desc := state.Direction == common.Desc
	slices.SortStableFunc(entries, func(a, b sortEntry) int {
		switch {
		case !a.present && !b.present:
			return 0
		case !a.present:
			return 1
		case !b.present:
			return -1
		}
		c := strings.Compare(a.key, b.key)
		if desc {
			return -c
		}
		return c
	})
	ret := make([]common.Record, len(entries))
	for i, e := range entries {
		ret[i] = e.rec
	}
	return ret
}

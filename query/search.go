package query

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"gridview/common"
	"gridview/utils"
)

const (
	DefaultThreshold      = 0.4
	DefaultShortThreshold = 0.8
)

type SearchOptions struct {
	// Threshold 最大可接受的归一化编辑距离
	Threshold float64
	// ShortThreshold 用于只有一个字符的查询
	ShortThreshold float64
	OnError        ErrorFunc
}

func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Threshold:      DefaultThreshold,
		ShortThreshold: DefaultShortThreshold,
	}
}

// SearchKeys 决定参与搜索的字段：显式指定的字段优先，
// 否则取在数据中至少有一个非空值的列，都没有时取全部列
func SearchKeys(records []common.Record, columns []common.Column, explicit []string) []string {
	if len(explicit) > 0 {
		return explicit
	}
	keys := []string{}
	for _, col := range columns {
		for _, rec := range records {
			if v, ok := rec.Get(col.Key); ok && !utils.IsBlank(v) {
				keys = append(keys, col.Key)
				break
			}
		}
	}
	if len(keys) == 0 {
		return common.ColumnKeys(columns)
	}
	return keys
}

type scored struct {
	rec   common.Record
	score float64
}

// Search 对记录做模糊搜索，结果按匹配程度从好到差排序，同分保持原有顺序。
// 查询为空或者全是空白时原样返回
func Search(records []common.Record, columns []common.Column, keys []string, term string, opts SearchOptions) []common.Record {
	term = strings.TrimSpace(term)
	if term == "" {
		return records
	}
	threshold := opts.Threshold
	if utf8.RuneCountInString(term) == 1 {
		threshold = opts.ShortThreshold
	}
	fold := cases.Fold()
	pattern := []rune(fold.String(term))

	hits := make([]scored, 0, len(records))
	for _, rec := range records {
		best, matched := 1.0, false
		for _, key := range keys {
			text := fieldText(columns, key, rec, opts.OnError)
			if text == "" {
				continue
			}
			score := approxScore(pattern, []rune(fold.String(text)))
			if score <= threshold && (!matched || score < best) {
				best, matched = score, true
			}
			if matched && best == 0 {
				break
			}
		}
		if matched {
			hits = append(hits, scored{rec: rec, score: best})
		}
	}
	slices.SortStableFunc(hits, func(a, b scored) int {
		switch {
		case a.score < b.score:
			return -1
		case a.score > b.score:
			return 1
		}
		return 0
	})
	ret := make([]common.Record, len(hits))
	for i, hit := range hits {
		ret[i] = hit.rec
	}
	return ret
}

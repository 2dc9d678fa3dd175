package gridview

import (
	"context"

	"gridview/common"
	"gridview/query"
)

// versions 记录流水线各个输入的版本，每次修改对应的输入时递增
type versions struct {
	data   uint64
	filter uint64
	search uint64
	sort   uint64
}

type memo struct {
	key versions
	ok  bool
	out []common.Record
}

func (m *memo) get(key versions) ([]common.Record, bool) {
	if m.ok && m.key == key {
		return m.out, true
	}
	return nil, false
}

func (m *memo) set(key versions, out []common.Record) {
	m.key, m.out, m.ok = key, out, true
}

// pipeline 缓存每个阶段的输出，只有阶段自己的输入变化时才重新计算
type pipeline struct {
	opts    Options
	log     *Logger
	search  query.SearchOptions
	keys    memo
	keyList []string

	filtered memo
	searched memo
	sorted   memo
}

func newPipeline(opts Options, log *Logger) *pipeline {
	p := &pipeline{opts: opts, log: log, search: opts.Search}
	if p.search.OnError == nil {
		p.search.OnError = func(key string, err error) {
			log.LogFallback(context.Background(), key, err)
		}
	}
	return p
}

// run 不带缓存执行一次完整的流水线
func (p *pipeline) run(ctx context.Context, state common.ViewState, records []common.Record) []common.Record {
	return p.cached(ctx, state, records, versions{})
}

func (p *pipeline) cached(ctx context.Context, state common.ViewState, records []common.Record, ver versions) []common.Record {
	filterKey := versions{data: ver.data, filter: ver.filter}
	filtered, ok := p.filtered.get(filterKey)
	if !ok {
		filtered = records
		if !p.opts.NoFilter {
			filtered = query.Filter(records, state.Filters)
		}
		p.filtered.set(filterKey, filtered)
		p.log.LogStage(ctx, "filter", len(records), len(filtered))
	}

	searchKey := versions{data: ver.data, filter: ver.filter, search: ver.search}
	searched, ok := p.searched.get(searchKey)
	if !ok {
		searched = filtered
		if !p.opts.NoSearch {
			keys := p.searchKeys(filtered, filterKey)
			searched = query.Search(filtered, p.opts.Columns, keys, state.SearchTerm, p.search)
		}
		p.searched.set(searchKey, searched)
		p.log.LogStage(ctx, "search", len(filtered), len(searched))
	}

	sorted, ok := p.sorted.get(ver)
	if !ok {
		sorted = searched
		if !p.opts.NoSort {
			sorted = query.Sort(searched, state.Sort)
		}
		p.sorted.set(ver, sorted)
		p.log.LogStage(ctx, "sort", len(searched), len(sorted))
	}
	return sorted
}

// searchKeys 在筛选后的记录上选择搜索字段，随数据和筛选一起缓存
func (p *pipeline) searchKeys(records []common.Record, key versions) []string {
	if _, ok := p.keys.get(key); ok {
		return p.keyList
	}
	p.keyList = query.SearchKeys(records, p.opts.Columns, p.opts.SearchKeys)
	p.keys.set(key, nil)
	return p.keyList
}

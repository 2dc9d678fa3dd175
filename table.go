package gridview

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"gridview/common"
	"gridview/query"
	"gridview/selection"
)

// Table 持有一个表格实例的状态：配置、ViewState、带缓存的流水线和选择集合。
// Table不是并发安全的，所有方法应当由同一个调用方使用
type Table struct {
	id      common.ViewId
	opts    Options
	log     *Logger
	state   common.ViewState
	data    []common.Record
	ver     versions
	pipe    *pipeline
	tracker *selection.Tracker

	// reconciled 是上一次同步到选择集合的流水线版本
	reconciled versions
	everSynced bool
}

var _ Grid = (*Table)(nil)

func NewTable(opts Options) *Table {
	opts = opts.withDefaults()
	id := common.NewViewId()
	log := opts.Logger.WithView(id)
	t := &Table{
		id:    id,
		opts:  opts,
		log:   log,
		state: common.NewViewState(opts.Filters, opts.PageSize),
		pipe:  newPipeline(opts, log),
	}
	t.tracker = selection.New(selection.Options{
		IdKeys:     opts.IdKeys,
		Selectable: opts.Selectable,
		OnChange:   opts.OnSelectionChange,
	})
	return t
}

func (t *Table) Id() common.ViewId {
	return t.id
}

func (t *Table) Options() Options {
	return t.opts
}

func (t *Table) State() common.ViewState {
	return t.state.Clone()
}

// SetState 整体替换ViewState，例如从Marshal的结果恢复。
// 筛选中出现未声明的key时返回ErrUnknownFilter，状态不变
func (t *Table) SetState(state common.ViewState) error {
	if state.PageSize <= 0 {
		return common.ErrInvalidPageSize
	}
	state = state.Clone()
	for key := range state.Filters {
		if _, ok := common.FindFilter(t.opts.Filters, key); !ok {
			return fmt.Errorf("%w: %s", common.ErrUnknownFilter, key)
		}
	}
	for _, spec := range t.opts.Filters {
		if _, ok := state.Filters[spec.Key]; !ok {
			state.Filters[spec.Key] = spec.Neutral()
		}
	}
	if state.Page < 1 {
		state.Page = 1
	}
	t.state = state
	t.ver.filter++
	t.ver.search++
	t.ver.sort++
	return nil
}

// SetData 替换数据，选择集合会在下一次派生时与新结果取交集
func (t *Table) SetData(records []common.Record) {
	t.data = records
	t.ver.data++
}

func (t *Table) Data() []common.Record {
	return t.data
}

func (t *Table) SetSearch(term string) error {
	if t.opts.NoSearch {
		return common.ErrFeatureDisabled
	}
	if term == t.state.SearchTerm {
		return nil
	}
	t.state.SearchTerm = term
	t.state.Page = 1
	t.ver.search++
	return nil
}

func (t *Table) ClearSearch() error {
	return t.SetSearch("")
}

// SetFilter 设置一个筛选的值，中性值表示不筛选
func (t *Table) SetFilter(key string, value interface{}) error {
	if t.opts.NoFilter {
		return common.ErrFeatureDisabled
	}
	if _, ok := common.FindFilter(t.opts.Filters, key); !ok {
		return fmt.Errorf("%w: %s", common.ErrUnknownFilter, key)
	}
	t.state.Filters[key] = value
	t.state.Page = 1
	t.ver.filter++
	return nil
}

// ToggleFilterOption 在多选筛选中加入或者移除一个选项
func (t *Table) ToggleFilterOption(key string, option interface{}) error {
	spec, ok := common.FindFilter(t.opts.Filters, key)
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrUnknownFilter, key)
	}
	return t.SetFilter(key, spec.Toggle(t.state.Filters[key], option))
}

// ResetFilters 把所有筛选恢复为中性值
func (t *Table) ResetFilters() {
	for _, spec := range t.opts.Filters {
		t.state.Filters[spec.Key] = spec.Neutral()
	}
	t.state.Page = 1
	t.ver.filter++
}

// ToggleSort 点击表头：同一列切换方向，新的列从升序开始
func (t *Table) ToggleSort(key string) error {
	if t.opts.NoSort {
		return common.ErrNotSortable
	}
	col, ok := common.FindColumn(t.opts.Columns, key)
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrUnknownColumn, key)
	}
	if !col.Sortable() {
		return fmt.Errorf("%w: %s", common.ErrNotSortable, key)
	}
	t.state.Sort = t.state.Sort.Toggle(key)
	t.ver.sort++
	return nil
}

func (t *Table) SetPage(page int) {
	total := query.TotalPages(len(t.live()), t.state.PageSize)
	t.state.Page = query.ClampPage(page, total)
}

func (t *Table) NextPage() {
	t.SetPage(t.state.Page + 1)
}

func (t *Table) PrevPage() {
	t.SetPage(t.state.Page - 1)
}

func (t *Table) SetPageSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", common.ErrInvalidPageSize, size)
	}
	t.state.PageSize = size
	t.state.Page = 1
	return nil
}

// PageSizeOptions 返回可选的每页条数，当前值不在列表中时会被加入
func (t *Table) PageSizeOptions() []int {
	ret := slices.Clone(t.opts.PageSizeOptions)
	if !slices.Contains(ret, t.state.PageSize) {
		ret = append(ret, t.state.PageSize)
		slices.Sort(ret)
	}
	return ret
}

func (t *Table) Toggle(rec common.Record, included bool) error {
	if t.opts.NoSelect {
		return common.ErrFeatureDisabled
	}
	t.live()
	t.tracker.Toggle(rec, included)
	return nil
}

// ToggleAllOnPage 只影响当前页的行
func (t *Table) ToggleAllOnPage(included bool) error {
	if t.opts.NoSelect {
		return common.ErrFeatureDisabled
	}
	v := t.View()
	t.tracker.ToggleAll(v.Page.Items, included)
	return nil
}

func (t *Table) ClearSelection() {
	t.tracker.Clear()
}

func (t *Table) IsSelected(rec common.Record) bool {
	t.live()
	return t.tracker.IsSelected(rec)
}

// Selected 按当前结果的顺序返回选中的完整记录
func (t *Table) Selected() []common.Record {
	t.live()
	return t.tracker.Selected()
}

func (t *Table) Phase() selection.Phase {
	t.live()
	return t.tracker.Phase()
}

// Dispatch 对选中的记录执行批量操作
func (t *Table) Dispatch(ctx context.Context, action string) error {
	if t.opts.NoSelect {
		return common.ErrFeatureDisabled
	}
	t.live()
	selected := t.tracker.Count()
	err := t.tracker.Dispatch(ctx, t.opts.Actions, action)
	if selected > 0 && action != "" {
		t.log.LogDispatch(ctx, action, selected, err)
	}
	return err
}

// View 返回当前派生的结果，必要时同步选择集合
func (t *Table) View() View {
	live := t.live()
	v := newView(t.state.Clone(), t.data, live, t.opts.PageSize)
	t.state.Page = v.State.Page
	v.Header = t.tracker.Header(v.Page.Items)
	v.Selected = t.tracker.Count()
	return v
}

// Describe 返回当前视图的一行文字描述
func (t *Table) Describe() string {
	v := t.View()
	parts := []string{v.Summary()}
	if t.state.Searching() {
		parts = append(parts, fmt.Sprintf("search %q", strings.TrimSpace(t.state.SearchTerm)))
	}
	if t.state.Sort.Active() {
		parts = append(parts, fmt.Sprintf("sorted by %s %s", t.state.Sort.Key, t.state.Sort.Direction))
	}
	if v.Selected > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", v.Selected))
	}
	return strings.Join(parts, ", ")
}

func (t *Table) live() []common.Record {
	live := t.pipe.cached(context.Background(), t.state, t.data, t.ver)
	if !t.everSynced || t.reconciled != t.ver {
		t.tracker.Reconcile(live)
		t.reconciled = t.ver
		t.everSynced = true
	}
	return live
}

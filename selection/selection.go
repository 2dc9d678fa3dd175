package selection

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"

	"gridview/common"
)

// HeaderState 是当前页全选框的状态
type HeaderState int

const (
	Unchecked HeaderState = iota
	Indeterminate
	Checked
)

func (h HeaderState) String() string {
	switch h {
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	}
	return "unchecked"
}

type Phase int

const (
	Idle Phase = iota
	Selecting
	ActionPending
)

func (p Phase) String() string {
	switch p {
	case Selecting:
		return "selecting"
	case ActionPending:
		return "action_pending"
	}
	return "idle"
}

type Options struct {
	// IdKeys 用于确定记录身份的字段，默认为id和_id
	IdKeys []string
	// Selectable 返回false的记录不能被选中
	Selectable func(common.Record) bool
	// OnChange 在选择集合变化后被调用，参数是当前选中的完整记录
	OnChange func(selected []common.Record)
}

// Tracker 按记录身份维护选择集合，数据重新派生后选择集合始终是当前结果的子集。
// Tracker不是并发安全的
type Tracker struct {
	ids        *interner
	selectable func(common.Record) bool
	onChange   func([]common.Record)

	selected *roaring.Bitmap
	live     *roaring.Bitmap
	order    []uint32
	// liveKnown 在第一次Reconcile之前为false，此时不限制可选范围
	liveKnown bool
	pending   bool
}

func New(opts Options) *Tracker {
	return &Tracker{
		ids:        newInterner(opts.IdKeys),
		selectable: opts.Selectable,
		onChange:   opts.OnChange,
		selected:   roaring.New(),
		live:       roaring.New(),
	}
}

func (t *Tracker) Key(rec common.Record) common.RecordKey {
	return t.ids.key(rec)
}

func (t *Tracker) canSelect(rec common.Record) bool {
	return t.selectable == nil || t.selectable(rec)
}

func (t *Tracker) IsSelected(rec common.Record) bool {
	slot, ok := t.ids.lookup(rec)
	return ok && t.selected.Contains(slot)
}

// toggle 返回选择集合是否发生了变化
func (t *Tracker) toggle(rec common.Record, included bool) bool {
	if !t.canSelect(rec) {
		return false
	}
	if t.liveKnown {
		slot, ok := t.ids.lookup(rec)
		if !ok || !t.live.Contains(slot) {
			return false
		}
		t.ids.records[slot] = rec
		if included {
			return t.selected.CheckedAdd(slot)
		}
		return t.selected.CheckedRemove(slot)
	}
	slot := t.ids.intern(rec)
	if included {
		return t.selected.CheckedAdd(slot)
	}
	return t.selected.CheckedRemove(slot)
}

// Toggle 选中或者取消一条记录。不可选或者不在当前结果中的记录被忽略
func (t *Tracker) Toggle(rec common.Record, included bool) {
	if t.toggle(rec, included) {
		t.notify()
	}
}

// ToggleAll 对一页中所有可选的记录执行Toggle，其它页的选择不受影响
func (t *Tracker) ToggleAll(page []common.Record, included bool) {
	changed := false
	for _, rec := range page {
		if t.toggle(rec, included) {
			changed = true
		}
	}
	if changed {
		t.notify()
	}
}

func (t *Tracker) Clear() {
	if t.selected.IsEmpty() {
		return
	}
	t.selected.Clear()
	t.notify()
}

// Reconcile 用新的结果集合更新可选范围，并移除不在结果中的选择。
// 结果中的记录实例会替换之前保存的实例
func (t *Tracker) Reconcile(live []common.Record) {
	next := roaring.New()
	order := make([]uint32, 0, len(live))
	for _, rec := range live {
		slot := t.ids.intern(rec)
		if next.CheckedAdd(slot) {
			order = append(order, slot)
		}
	}
	before := t.selected.GetCardinality()
	t.selected.And(next)

	for slot := range t.ids.keys {
		if !next.Contains(slot) {
			t.ids.forget(slot)
		}
	}
	t.live = next
	t.order = order
	t.liveKnown = true

	if t.selected.GetCardinality() != before {
		t.notify()
	}
}

func (t *Tracker) Count() int {
	return int(t.selected.GetCardinality())
}

// Selected 按当前结果的顺序返回选中的记录
func (t *Tracker) Selected() []common.Record {
	ret := make([]common.Record, 0, t.selected.GetCardinality())
	if t.liveKnown {
		for _, slot := range t.order {
			if t.selected.Contains(slot) {
				ret = append(ret, t.ids.records[slot])
			}
		}
		return ret
	}
	it := t.selected.Iterator()
	for it.HasNext() {
		ret = append(ret, t.ids.records[it.Next()])
	}
	return ret
}

// Header 计算一页的全选框状态，不可选的记录不参与计算
func (t *Tracker) Header(page []common.Record) HeaderState {
	total, selected := 0, 0
	for _, rec := range page {
		if !t.canSelect(rec) {
			continue
		}
		total++
		if t.IsSelected(rec) {
			selected++
		}
	}
	switch {
	case total == 0 || selected == 0:
		return Unchecked
	case selected == total:
		return Checked
	}
	return Indeterminate
}

func (t *Tracker) Phase() Phase {
	switch {
	case t.pending:
		return ActionPending
	case t.selected.IsEmpty():
		return Idle
	}
	return Selecting
}

// Dispatch 把选中的记录交给value对应的批量操作。没有选择、没有选择操作、
// 或者操作不存在时什么也不做。处理函数的错误原样返回，不会重试
func (t *Tracker) Dispatch(ctx context.Context, actions []common.Action, value string) error {
	if t.pending {
		return common.ErrActionPending
	}
	if value == "" || t.selected.IsEmpty() {
		return nil
	}
	action, ok := common.FindAction(actions, value)
	if !ok || action.Handler == nil {
		return nil
	}
	t.pending = true
	defer func() { t.pending = false }()
	return action.Handler(ctx, t.Selected())
}

func (t *Tracker) notify() {
	if t.onChange != nil {
		t.onChange(t.Selected())
	}
}

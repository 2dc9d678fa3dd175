package selection

import "gridview/common"

// interner 把记录身份映射为连续的uint32槽位，同时保存每个槽位最新的记录
type interner struct {
	idKeys  []string
	next    uint32
	slots   map[common.RecordKey]uint32
	keys    map[uint32]common.RecordKey
	records map[uint32]common.Record
}

func newInterner(idKeys []string) *interner {
	if len(idKeys) == 0 {
		idKeys = common.DefaultIdKeys
	}
	return &interner{
		idKeys:  idKeys,
		slots:   map[common.RecordKey]uint32{},
		keys:    map[uint32]common.RecordKey{},
		records: map[uint32]common.Record{},
	}
}

func (in *interner) key(rec common.Record) common.RecordKey {
	return common.Identity(rec, in.idKeys)
}

// lookup 只查找不分配
func (in *interner) lookup(rec common.Record) (slot uint32, ok bool) {
	slot, ok = in.slots[in.key(rec)]
	return
}

// intern 返回记录的槽位，并记住这个记录实例
func (in *interner) intern(rec common.Record) uint32 {
	key := in.key(rec)
	slot, ok := in.slots[key]
	if !ok {
		slot = in.next
		in.next++
		in.slots[key] = slot
		in.keys[slot] = key
	}
	in.records[slot] = rec
	return slot
}

func (in *interner) forget(slot uint32) {
	if key, ok := in.keys[slot]; ok {
		delete(in.slots, key)
	}
	delete(in.keys, slot)
	delete(in.records, slot)
}

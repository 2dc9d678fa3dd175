package query

import (
	"strings"

	"gridview/common"
	"gridview/utils"
)

// Filter 返回满足所有非中性筛选的记录，保持原有顺序
func Filter(records []common.Record, state map[string]interface{}) []common.Record {
	active := map[string]interface{}{}
	for key, value := range state {
		if !common.IsNeutral(value) {
			active[key] = value
		}
	}
	if len(active) == 0 {
		return records
	}
	ret := make([]common.Record, 0, len(records))
	for _, rec := range records {
		if matchAll(rec, active) {
			ret = append(ret, rec)
		}
	}
	return ret
}

func matchAll(rec common.Record, active map[string]interface{}) bool {
	for key, want := range active {
		if !Match(rec, key, want) {
			return false
		}
	}
	return true
}

// Match 判断记录的一个字段是否满足筛选值。
// 集合表示包含关系，布尔值按文本比较，其余按值相等
func Match(rec common.Record, key string, want interface{}) bool {
	got, _ := rec.Get(key)
	if list, ok := utils.List(want); ok {
		for _, item := range list {
			if matchValue(got, item) {
				return true
			}
		}
		return false
	}
	return matchValue(got, want)
}

func matchValue(got, want interface{}) bool {
	if isBoolish(want) {
		return strings.EqualFold(utils.String(got), utils.String(want))
	}
	return utils.Equal(got, want)
}

func isBoolish(v interface{}) bool {
	switch value := v.(type) {
	case bool:
		return true
	case string:
		return value == "true" || value == "false"
	}
	return false
}

package common

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"gridview/utils"
)

// Record 是一行异构数据，引擎从不修改它
type Record map[string]interface{}

// RecordKey 是记录的逻辑身份，数据刷新后同一条记录的RecordKey不变
type RecordKey string

// 默认的身份字段
var DefaultIdKeys = []string{"id", "_id"}

// Get 按key取值。key不存在且包含'.'时按路径逐级查找，
// 路径经过数组时对每个元素分别查找并去掉空值
func (r Record) Get(key string) (v interface{}, ok bool) {
	if v, ok = r[key]; ok {
		return v, v != nil
	}
	if !strings.Contains(key, ".") {
		return
	}
	v = walkPath(map[string]interface{}(r), strings.Split(key, "."))
	return v, v != nil
}

func walkPath(current interface{}, parts []string) interface{} {
	if current == nil {
		return nil
	}
	if len(parts) == 0 {
		return current
	}
	switch value := current.(type) {
	case Record:
		return walkPath(value[parts[0]], parts[1:])
	case map[string]interface{}:
		return walkPath(value[parts[0]], parts[1:])
	}
	if list, ok := utils.List(current); ok {
		ret := []interface{}{}
		for _, item := range list {
			found := walkPath(item, parts)
			if found == nil {
				continue
			}
			if s, ok := found.(string); ok && s == "" {
				continue
			}
			ret = append(ret, found)
		}
		return ret
	}
	return nil
}

// Identity 返回记录的身份：优先取第一个非空的身份字段，
// 没有身份字段时使用内容的稳定哈希
func Identity(rec Record, idKeys []string) RecordKey {
	for _, key := range idKeys {
		v, ok := rec.Get(key)
		if !ok {
			continue
		}
		if s := utils.String(v); s != "" {
			return RecordKey("id:" + s)
		}
	}
	sum := xxhash.Sum64(utils.CanonicalJSON(map[string]interface{}(rec)))
	return RecordKey(fmt.Sprintf("hash:%016x", sum))
}

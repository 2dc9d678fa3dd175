package utils

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type JSONMap map[string]interface{}

// 实现 sql.Scanner 接口
func (jm *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*jm = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal JSON: value is not a byte slice or string")
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	return decoder.Decode(jm)
}

// 实现 driver.Valuer 接口
func (jm JSONMap) Value() (driver.Value, error) {
	if jm == nil {
		return nil, nil
	}
	v, err := json.Marshal(jm)
	return string(v), err
}

// CanonicalJSON 生成稳定的JSON表示，map按key排序
func CanonicalJSON(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		// 含有无法序列化的值时退回到fmt，fmt同样会对map的key排序
		return []byte(fmt.Sprintf("%#v", v))
	}
	return data
}

package utils

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// 对象类型的值优先使用这些字段作为显示文本
var displayFields = []string{"name", "long_name", "label"}

// String 返回值的文本表示，nil为空串
func String(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case json.Number:
		return value.String()
	case time.Time:
		return value.Format(time.RFC3339)
	case []byte:
		return string(value)
	case fmt.Stringer:
		return value.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
		return String(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if s := String(rv.Index(i).Interface()); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			for _, field := range displayFields {
				item := rv.MapIndex(reflect.ValueOf(field).Convert(rv.Type().Key()))
				if !item.IsValid() {
					continue
				}
				if s, ok := item.Interface().(string); ok {
					return s
				}
			}
		}
		return string(CanonicalJSON(v))
	case reflect.Struct:
		return string(CanonicalJSON(v))
	}
	return fmt.Sprint(v)
}

// Surface 返回用于搜索的文本。与String不同，对象按结构序列化为JSON，
// 对象中的每个字段都可以被搜索到
func Surface(v interface{}) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		if _, ok := v.(time.Time); ok {
			break
		}
		return string(CanonicalJSON(v))
	case reflect.Slice, reflect.Array:
		if _, ok := v.([]byte); ok {
			break
		}
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if s := Surface(rv.Index(i).Interface()); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	}
	return String(v)
}

// IsBlank 值为nil或者文本表示全为空白
func IsBlank(v interface{}) bool {
	return strings.TrimSpace(String(v)) == ""
}

// Number 尝试把值转换为float64
func Number(v interface{}) (f float64, ok bool) {
	switch value := v.(type) {
	case json.Number:
		var err error
		f, err = value.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return
}

// Equal 判断两个值是否相等，数字类型统一按float64比较
func Equal(a, b interface{}) bool {
	if fa, ok := Number(a); ok {
		if fb, ok := Number(b); ok {
			return fa == fb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

// List 把切片类型的值展开，非切片返回false
func List(v interface{}) (list []interface{}, ok bool) {
	switch value := v.(type) {
	case []interface{}:
		return value, true
	case string, []byte, nil:
		return
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return
	}
	list = make([]interface{}, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}
	return list, true
}

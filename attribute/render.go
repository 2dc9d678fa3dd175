package attribute

import "gridview/common"

// Func 把函数包装为Extractor
type Func func(value interface{}, rec common.Record) (string, error)

func (f Func) Text(value interface{}, rec common.Record) (string, error) {
	return f(value, rec)
}

// Plain 包装不会返回错误的渲染函数
type Plain func(value interface{}, rec common.Record) string

func (f Plain) Text(value interface{}, rec common.Record) (string, error) {
	return f(value, rec), nil
}

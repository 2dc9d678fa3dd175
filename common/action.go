package common

import "context"

// ActionHandler 接收当前选中的完整记录
type ActionHandler func(ctx context.Context, selected []Record) error

// Action 是多选后可执行的批量操作
type Action struct {
	Label   string
	Value   string
	Handler ActionHandler
}

func FindAction(actions []Action, value string) (action Action, ok bool) {
	for _, a := range actions {
		if a.Value == value {
			return a, true
		}
	}
	return
}

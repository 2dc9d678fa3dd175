package common

import "fmt"

var (
	ErrInvalidPageSize    = fmt.Errorf("page size must be positive")
	ErrNotSortable        = fmt.Errorf("column is not sortable")
	ErrUnknownColumn      = fmt.Errorf("unknown column")
	ErrUnknownFilter      = fmt.Errorf("unknown filter")
	ErrFeatureDisabled    = fmt.Errorf("feature disabled for this table")
	ErrActionPending      = fmt.Errorf("another action is still running")
	ErrInvalidFilterState = fmt.Errorf("invalid filter state")
	ErrInvalidViewState   = fmt.Errorf("invalid view state")
	ErrRenderPanic        = fmt.Errorf("column render panicked")
)

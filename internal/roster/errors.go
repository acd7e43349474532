package roster

import "errors"

var (
	// ErrEmptyCounterparts 表示批量请求中没有选择任何排班对象
	ErrEmptyCounterparts = errors.New("请至少选择一个排班对象")
	// ErrInvalidRecurrence 表示重复规则没有选择星期，或结束日期早于开始日期
	ErrInvalidRecurrence = errors.New("重复规则无效：请选择重复的星期，且结束日期不能早于开始日期")
	// ErrInvalidPivot 表示视角既不是员工也不是班次
	ErrInvalidPivot = errors.New("无效的排班视角")
	// ErrWindowNotLoaded 表示还没有加载过任何周窗口
	ErrWindowNotLoaded = errors.New("尚未加载周窗口")
)

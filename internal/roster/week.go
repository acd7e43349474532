package roster

import (
	"fmt"
	"time"
)

// Calendar 决定一周从哪一天开始（1 表示周一，……，7 表示周日）
// 默认配置下一周从周一开始
type Calendar struct {
	weekStart int32
}

func NewCalendar(weekStart int32) (Calendar, error) {
	if weekStart < 1 || weekStart > 7 {
		return Calendar{}, fmt.Errorf("每周起始日 %d 非法，必须在 1 到 7 之间", weekStart)
	}
	return Calendar{weekStart: weekStart}, nil
}

// Window 是当前展示的一周，Days 中的 7 个日期严格按天递增
// Window 只由锚点日期推导出来，不会单独持久化
type Window struct {
	Days [7]time.Time
}

func (w Window) Start() time.Time {
	return w.Days[0]
}

func (w Window) End() time.Time {
	return w.Days[6]
}

func (w Window) Contains(d time.Time) bool {
	day := DateOf(d)
	return !day.Before(w.Days[0]) && !day.After(w.Days[6])
}

// DateOf 丢弃时间部分，只保留日期（统一放到 UTC，避免不同时区的同一天比较不相等）
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekdayOf 返回 1（周一）到 7（周日）的星期编号
// Go 的 time.Weekday 以周日为 0，这里统一换算
func WeekdayOf(t time.Time) int32 {
	return int32((int(t.Weekday())+6)%7) + 1
}

// WindowFor 返回包含 anchor 的那一周
// 对窗口内的任意一天再次调用 WindowFor 会得到同一个窗口
func (c Calendar) WindowFor(anchor time.Time) Window {
	day := DateOf(anchor)

	// 回退到本周的第一天
	back := (WeekdayOf(day) - c.weekStart + 7) % 7
	first := day.AddDate(0, 0, -int(back))

	var w Window
	for i := range w.Days {
		w.Days[i] = first.AddDate(0, 0, i)
	}
	return w
}

// Shift 把窗口整体前移或后移若干周，用于上一周/下一周的翻页
func (c Calendar) Shift(w Window, weeks int) Window {
	return c.WindowFor(w.Days[0].AddDate(0, 0, 7*weeks))
}

package roster

import "time"

// ExpandRecurrence 枚举 [start, until] 中星期属于 weekdays 的全部日期，两端都包含在内
// weekdays 为空、含非法编号或 until 早于 start 时，整个重复规则视为无效
func ExpandRecurrence(start time.Time, weekdays []int32, until time.Time) ([]time.Time, error) {
	startDay := DateOf(start)
	untilDay := DateOf(until)

	if len(weekdays) == 0 || untilDay.Before(startDay) {
		return nil, ErrInvalidRecurrence
	}

	wanted := make(map[int32]bool, len(weekdays))
	for _, wd := range weekdays {
		if wd < 1 || wd > 7 {
			return nil, ErrInvalidRecurrence
		}
		wanted[wd] = true
	}

	dates := make([]time.Time, 0)
	for d := startDay; !d.After(untilDay); d = d.AddDate(0, 0, 1) {
		if wanted[WeekdayOf(d)] {
			dates = append(dates, d)
		}
	}

	return dates, nil
}

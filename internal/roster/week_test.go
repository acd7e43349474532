package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewCalendar(t *testing.T) {
	for _, ws := range []int32{0, 8, -1} {
		_, err := NewCalendar(ws)
		require.Error(t, err)
	}
	for ws := int32(1); ws <= 7; ws++ {
		_, err := NewCalendar(ws)
		require.NoError(t, err)
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2024-06-03 是周一
	require.Equal(t, int32(1), WeekdayOf(date(2024, 6, 3)))
	require.Equal(t, int32(3), WeekdayOf(date(2024, 6, 5)))
	require.Equal(t, int32(6), WeekdayOf(date(2024, 6, 8)))
	require.Equal(t, int32(7), WeekdayOf(date(2024, 6, 9)))
}

func TestWindowForMondayStart(t *testing.T) {
	cal, err := NewCalendar(1)
	require.NoError(t, err)

	w := cal.WindowFor(date(2024, 6, 5))
	require.Equal(t, date(2024, 6, 3), w.Start())
	require.Equal(t, date(2024, 6, 9), w.End())

	// 窗口内 7 天严格按天递增
	for i := 0; i < 7; i++ {
		require.Equal(t, w.Start().AddDate(0, 0, i), w.Days[i])
	}
}

func TestWindowForIsIdempotentWithinWindow(t *testing.T) {
	cal, err := NewCalendar(1)
	require.NoError(t, err)

	w := cal.WindowFor(date(2024, 6, 5))
	for _, day := range w.Days {
		require.Equal(t, w, cal.WindowFor(day))
	}
}

func TestWindowForSundayStart(t *testing.T) {
	cal, err := NewCalendar(7)
	require.NoError(t, err)

	// 周日为每周第一天时，周一落在前一天开始的窗口里
	w := cal.WindowFor(date(2024, 6, 3))
	require.Equal(t, date(2024, 6, 2), w.Start())
	require.Equal(t, date(2024, 6, 8), w.End())

	// 锚点正好是每周第一天
	require.Equal(t, w, cal.WindowFor(date(2024, 6, 2)))
}

func TestWindowForDropsTimeOfDay(t *testing.T) {
	cal, err := NewCalendar(1)
	require.NoError(t, err)

	anchor := time.Date(2024, 6, 5, 23, 59, 59, 0, time.UTC)
	require.Equal(t, cal.WindowFor(date(2024, 6, 5)), cal.WindowFor(anchor))
}

func TestShift(t *testing.T) {
	cal, err := NewCalendar(1)
	require.NoError(t, err)

	w := cal.WindowFor(date(2024, 6, 5))

	next := cal.Shift(w, 1)
	require.Equal(t, date(2024, 6, 10), next.Start())

	prev := cal.Shift(w, -1)
	require.Equal(t, date(2024, 5, 27), prev.Start())

	// 相邻窗口无缝衔接
	require.Equal(t, w.End().AddDate(0, 0, 1), next.Start())
	require.Equal(t, prev.End().AddDate(0, 0, 1), w.Start())

	require.Equal(t, w, cal.Shift(cal.Shift(w, 3), -3))
	require.Equal(t, w, cal.Shift(w, 0))
}

func TestWindowContains(t *testing.T) {
	cal, err := NewCalendar(1)
	require.NoError(t, err)

	w := cal.WindowFor(date(2024, 6, 3))
	require.True(t, w.Contains(date(2024, 6, 3)))
	require.True(t, w.Contains(date(2024, 6, 9)))
	require.True(t, w.Contains(time.Date(2024, 6, 9, 18, 0, 0, 0, time.UTC)))
	require.False(t, w.Contains(date(2024, 6, 2)))
	require.False(t, w.Contains(date(2024, 6, 10)))
}

func TestWindowForAcrossMonthBoundary(t *testing.T) {
	cal, err := NewCalendar(1)
	require.NoError(t, err)

	// 2024-05-31 是周五，窗口跨越 5 月和 6 月
	w := cal.WindowFor(date(2024, 5, 31))
	require.Equal(t, date(2024, 5, 27), w.Start())
	require.Equal(t, date(2024, 6, 2), w.End())
}

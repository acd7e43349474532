package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExpandRecurrence(t *testing.T) {
	// 2024-06-03 是周一
	start := date(2024, 6, 3)

	tests := []struct {
		name     string
		weekdays []int32
		until    time.Time
		want     []time.Time
	}{
		{
			name:     "每周一和周三",
			weekdays: []int32{1, 3},
			until:    date(2024, 6, 17),
			want: []time.Time{
				date(2024, 6, 3),
				date(2024, 6, 5),
				date(2024, 6, 10),
				date(2024, 6, 12),
				date(2024, 6, 17),
			},
		},
		{
			name:     "截止日期本身也包含在内",
			weekdays: []int32{7},
			until:    date(2024, 6, 9),
			want:     []time.Time{date(2024, 6, 9)},
		},
		{
			name:     "起始日期的星期不在集合中",
			weekdays: []int32{5},
			until:    date(2024, 6, 9),
			want:     []time.Time{date(2024, 6, 7)},
		},
		{
			name:     "截止等于起始",
			weekdays: []int32{1, 2, 3, 4, 5, 6, 7},
			until:    start,
			want:     []time.Time{start},
		},
		{
			name:     "区间内没有匹配的日期",
			weekdays: []int32{7},
			until:    date(2024, 6, 5),
			want:     []time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandRecurrence(start, tt.weekdays, tt.until)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestExpandRecurrenceInvalid(t *testing.T) {
	start := date(2024, 6, 3)

	tests := []struct {
		name     string
		weekdays []int32
		until    time.Time
	}{
		{name: "星期集合为空", weekdays: []int32{}, until: date(2024, 6, 10)},
		{name: "星期编号为 0", weekdays: []int32{0}, until: date(2024, 6, 10)},
		{name: "星期编号超过 7", weekdays: []int32{1, 8}, until: date(2024, 6, 10)},
		{name: "截止早于起始", weekdays: []int32{1}, until: date(2024, 6, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExpandRecurrence(start, tt.weekdays, tt.until)
			require.ErrorIs(t, err, ErrInvalidRecurrence)
		})
	}
}

func TestExpandRecurrenceIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 6, 3, 15, 30, 0, 0, time.UTC)
	until := time.Date(2024, 6, 4, 0, 0, 1, 0, time.UTC)

	got, err := ExpandRecurrence(start, []int32{1, 2}, until)
	require.NoError(t, err)
	require.Equal(t, []time.Time{date(2024, 6, 3), date(2024, 6, 4)}, got)
}

func TestExpandRecurrenceDuplicateWeekdays(t *testing.T) {
	// 重复的星期编号不会产生重复的日期
	got, err := ExpandRecurrence(date(2024, 6, 3), []int32{1, 1, 1}, date(2024, 6, 10))
	require.NoError(t, err)
	require.Equal(t, []time.Time{date(2024, 6, 3), date(2024, 6, 10)}, got)
}

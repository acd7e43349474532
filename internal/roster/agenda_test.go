package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/domain"
)

func TestBuildAgenda(t *testing.T) {
	shifts := []*domain.Shift{
		{ID: 11, Name: "早班", StartTime: "07:00:00", EndTime: "15:00:00", IsActive: true},
		{ID: 12, Name: "夜班", StartTime: "23:00:00", EndTime: "07:00:00", IsActive: true},
		{ID: 13, Name: "旧班次", StartTime: "09:00:00", EndTime: "17:00:00", IsActive: false},
	}
	cal, err := NewCalendar(1)
	require.NoError(t, err)
	window := cal.WindowFor(date(2024, 6, 3))

	store := NewStore([]*domain.Assignment{
		asg(103, 1, 12, date(2024, 6, 5)),
		asg(101, 1, 11, date(2024, 6, 3)),
		asg(102, 2, 11, date(2024, 6, 3)), // 其他员工
		asg(104, 1, 13, date(2024, 6, 3)), // 已停用班次
		asg(105, 1, 11, date(2024, 6, 12)), // 下一周，不在窗口内
	})

	agenda := BuildAgenda(1, shifts, window, store)
	require.Len(t, agenda, 3)

	// 按日期排列，同一天内按班次开始时刻
	require.Equal(t, int64(101), agenda[0].AssignmentID)
	require.Equal(t, "2024-06-03", agenda[0].WorkDate)
	require.Equal(t, "早班", agenda[0].ShiftName)
	require.Equal(t, "07:00:00", agenda[0].StartTime)

	// 已停用的班次仍会出现
	require.Equal(t, int64(104), agenda[1].AssignmentID)
	require.Equal(t, "旧班次", agenda[1].ShiftName)

	require.Equal(t, int64(103), agenda[2].AssignmentID)
	require.Equal(t, "2024-06-05", agenda[2].WorkDate)
}

func TestBuildAgendaEmpty(t *testing.T) {
	cal, err := NewCalendar(1)
	require.NoError(t, err)
	window := cal.WindowFor(date(2024, 6, 3))

	agenda := BuildAgenda(1, nil, window, NewStore(nil))
	require.NotNil(t, agenda)
	require.Empty(t, agenda)
}

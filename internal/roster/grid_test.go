package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/domain"
)

func gridFixture() ([]*domain.Staff, []*domain.Shift) {
	staffs := []*domain.Staff{
		{ID: 1, FullName: "陈静", IsActive: true},
		{ID: 2, FullName: "李伟", IsActive: true},
		{ID: 3, FullName: "王芳", IsActive: false},
	}
	shifts := []*domain.Shift{
		{ID: 11, Name: "早班", IsActive: true},
		{ID: 12, Name: "夜班", IsActive: true},
		{ID: 13, Name: "旧班次", IsActive: false},
	}
	return staffs, shifts
}

func TestBuildGridByStaff(t *testing.T) {
	staffs, shifts := gridFixture()
	cal, err := NewCalendar(1)
	require.NoError(t, err)
	window := cal.WindowFor(date(2024, 6, 3))

	store := NewStore([]*domain.Assignment{
		asg(100, 1, 11, date(2024, 6, 3)),
		asg(101, 1, 12, date(2024, 6, 3)),
		asg(102, 2, 11, date(2024, 6, 5)),
	})

	grid := BuildGrid(PivotByStaff, staffs, shifts, window, store)

	require.Equal(t, PivotByStaff, grid.Pivot)
	require.Equal(t, []string{
		"2024-06-03", "2024-06-04", "2024-06-05",
		"2024-06-06", "2024-06-07", "2024-06-08", "2024-06-09",
	}, grid.Days)

	// 只有启用中的员工成为行，按名称排序后李伟在前
	require.Len(t, grid.Rows, 2)
	require.Equal(t, int64(2), grid.Rows[0].RowID)
	require.Equal(t, "李伟", grid.Rows[0].Name)
	require.Equal(t, int64(1), grid.Rows[1].RowID)
	require.Equal(t, "陈静", grid.Rows[1].Name)

	require.Len(t, grid.Rows[1].Cells, 7)

	// 陈静周一已经排满两个启用班次，格子不能再新增
	monday := grid.Rows[1].Cells[0]
	require.Len(t, monday.Assignments, 2)
	require.Equal(t, "早班", monday.Assignments[0].CounterpartName)
	require.Equal(t, "夜班", monday.Assignments[1].CounterpartName)
	require.False(t, monday.CanAddMore)

	// 周二还是空的
	tuesday := grid.Rows[1].Cells[1]
	require.NotNil(t, tuesday.Assignments)
	require.Empty(t, tuesday.Assignments)
	require.True(t, tuesday.CanAddMore)

	// 李伟周三只排了一个班次，还可以新增
	wednesday := grid.Rows[0].Cells[2]
	require.Len(t, wednesday.Assignments, 1)
	require.True(t, wednesday.CanAddMore)
}

func TestBuildGridByShift(t *testing.T) {
	staffs, shifts := gridFixture()
	cal, err := NewCalendar(1)
	require.NoError(t, err)
	window := cal.WindowFor(date(2024, 6, 3))

	store := NewStore([]*domain.Assignment{
		asg(100, 1, 11, date(2024, 6, 3)),
		asg(101, 2, 11, date(2024, 6, 3)),
	})

	grid := BuildGrid(PivotByShift, staffs, shifts, window, store)

	require.Len(t, grid.Rows, 2)
	// 行按名称排序，夜班的码点在早班之前
	require.Equal(t, "夜班", grid.Rows[0].Name)
	require.Equal(t, "早班", grid.Rows[1].Name)

	// 早班周一已经覆盖全部启用员工
	monday := grid.Rows[1].Cells[0]
	require.Len(t, monday.Assignments, 2)
	require.False(t, monday.CanAddMore)

	// 夜班周一还没有任何排班
	require.Empty(t, grid.Rows[0].Cells[0].Assignments)
	require.True(t, grid.Rows[0].Cells[0].CanAddMore)
}

func TestBuildGridShowsInactiveCounterparts(t *testing.T) {
	staffs, shifts := gridFixture()
	cal, err := NewCalendar(1)
	require.NoError(t, err)
	window := cal.WindowFor(date(2024, 6, 3))

	// 已停用的班次不再是行，但它的历史排班仍要出现在员工视角的格子里
	store := NewStore([]*domain.Assignment{
		asg(100, 1, 13, date(2024, 6, 4)),
	})

	grid := BuildGrid(PivotByStaff, staffs, shifts, window, store)
	// 陈静排在李伟之后
	tuesday := grid.Rows[1].Cells[1]
	require.Len(t, tuesday.Assignments, 1)
	require.Equal(t, "旧班次", tuesday.Assignments[0].CounterpartName)

	byShift := BuildGrid(PivotByShift, staffs, shifts, window, store)
	for _, row := range byShift.Rows {
		require.NotEqual(t, int64(13), row.RowID)
	}
}

func TestBuildGridNoActiveCounterparts(t *testing.T) {
	staffs := []*domain.Staff{{ID: 1, FullName: "陈静", IsActive: true}}
	shifts := []*domain.Shift{{ID: 11, Name: "旧班次", IsActive: false}}
	cal, err := NewCalendar(1)
	require.NoError(t, err)
	window := cal.WindowFor(date(2024, 6, 3))

	grid := BuildGrid(PivotByStaff, staffs, shifts, window, NewStore(nil))

	// 没有任何启用中的班次时，所有格子都不能新增
	for _, cell := range grid.Rows[0].Cells {
		require.False(t, cell.CanAddMore)
	}
}

func TestBuildGridRowOrderStable(t *testing.T) {
	staffs := []*domain.Staff{
		{ID: 5, FullName: "李伟", IsActive: true},
		{ID: 2, FullName: "李伟", IsActive: true},
		{ID: 1, FullName: "陈静", IsActive: true},
	}
	shifts := []*domain.Shift{{ID: 11, Name: "早班", IsActive: true}}
	cal, err := NewCalendar(1)
	require.NoError(t, err)
	window := cal.WindowFor(date(2024, 6, 3))

	grid := BuildGrid(PivotByStaff, staffs, shifts, window, NewStore(nil))

	// 同名员工按 id 排序
	require.Equal(t, int64(2), grid.Rows[0].RowID)
	require.Equal(t, int64(5), grid.Rows[1].RowID)
	require.Equal(t, int64(1), grid.Rows[2].RowID)
}

func TestIsRowDateSaturated(t *testing.T) {
	d := date(2024, 6, 3)
	store := NewStore([]*domain.Assignment{
		asg(1, 10, 20, d),
		asg(2, 10, 21, d),
	})

	require.True(t, IsRowDateSaturated(store, PivotByStaff, 10, d, []int64{20, 21}))
	require.False(t, IsRowDateSaturated(store, PivotByStaff, 10, d, []int64{20, 21, 22}))
	require.False(t, IsRowDateSaturated(store, PivotByStaff, 10, d.AddDate(0, 0, 1), []int64{20}))

	// 班次视角下行和对侧互换
	require.True(t, IsRowDateSaturated(store, PivotByShift, 20, d, []int64{10}))
	require.False(t, IsRowDateSaturated(store, PivotByShift, 20, d, []int64{10, 11}))

	// 对侧集合为空视为已排满
	require.True(t, IsRowDateSaturated(store, PivotByStaff, 10, d, nil))
}

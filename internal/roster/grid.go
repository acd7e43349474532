package roster

import (
	"sort"
	"time"

	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/domain"
)

type CellAssignment struct {
	AssignmentID    int64  `json:"assignmentID"`
	CounterpartID   int64  `json:"counterpartID"`
	CounterpartName string `json:"counterpartName"`
	Note            string `json:"note"`
}

type GridCell struct {
	Date        string           `json:"date"`
	Assignments []CellAssignment `json:"assignments"`
	CanAddMore  bool             `json:"canAddMore"`
}

type GridRow struct {
	RowID int64      `json:"rowID"`
	Name  string     `json:"name"`
	Cells []GridCell `json:"cells"`
}

type Grid struct {
	Pivot PivotType  `json:"pivot"`
	Days  []string   `json:"days"`
	Rows  []*GridRow `json:"rows"`
}

// BuildGrid 把扁平的排班集合按 (行 × 日期) 透视成网格
// 行只包含启用中的员工或班次，但已停用实体的历史排班仍会出现在格子里
// 网格每次都从 Store 整体重建，自身不持有任何可变状态
func BuildGrid(pivot PivotType, staffs []*domain.Staff, shifts []*domain.Shift, window Window, store *Store) *Grid {
	type rowMeta struct {
		id   int64
		name string
	}

	var rows []rowMeta
	var activeCounterpartIDs []int64
	// 对侧名称要覆盖全部实体（包括已停用的），否则历史排班无法显示
	counterpartNames := make(map[int64]string)

	switch pivot {
	case PivotByShift:
		for _, shift := range shifts {
			if shift.IsActive {
				rows = append(rows, rowMeta{id: shift.ID, name: shift.Name})
			}
		}
		for _, staff := range staffs {
			counterpartNames[staff.ID] = staff.FullName
			if staff.IsActive {
				activeCounterpartIDs = append(activeCounterpartIDs, staff.ID)
			}
		}
	default:
		for _, staff := range staffs {
			if staff.IsActive {
				rows = append(rows, rowMeta{id: staff.ID, name: staff.FullName})
			}
		}
		for _, shift := range shifts {
			counterpartNames[shift.ID] = shift.Name
			if shift.IsActive {
				activeCounterpartIDs = append(activeCounterpartIDs, shift.ID)
			}
		}
	}

	// 行按名称排序，名称相同时按 id，保证展示顺序稳定
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].name != rows[j].name {
			return rows[i].name < rows[j].name
		}
		return rows[i].id < rows[j].id
	})

	// 把排班按 (行 id, 日期) 建立索引，保持 Store 中的先后顺序
	cellIndex := make(map[int64]map[string][]CellAssignment)
	for _, a := range store.All() {
		var rowID, counterpartID int64
		if pivot == PivotByShift {
			rowID, counterpartID = a.ShiftID, a.StaffID
		} else {
			rowID, counterpartID = a.StaffID, a.ShiftID
		}

		date := DateOf(a.WorkDate).Format(time.DateOnly)
		if _, exists := cellIndex[rowID]; !exists {
			cellIndex[rowID] = make(map[string][]CellAssignment)
		}
		cellIndex[rowID][date] = append(cellIndex[rowID][date], CellAssignment{
			AssignmentID:    a.ID,
			CounterpartID:   counterpartID,
			CounterpartName: counterpartNames[counterpartID],
			Note:            a.Note,
		})
	}

	grid := &Grid{
		Pivot: pivot,
		Days:  make([]string, len(window.Days)),
		Rows:  make([]*GridRow, 0, len(rows)),
	}
	for i, day := range window.Days {
		grid.Days[i] = day.Format(time.DateOnly)
	}

	for _, row := range rows {
		gridRow := &GridRow{
			RowID: row.id,
			Name:  row.name,
			Cells: make([]GridCell, len(window.Days)),
		}

		for i, day := range window.Days {
			date := day.Format(time.DateOnly)

			assignments := cellIndex[row.id][date]
			if assignments == nil {
				assignments = make([]CellAssignment, 0)
			}

			gridRow.Cells[i] = GridCell{
				Date:        date,
				Assignments: assignments,
				CanAddMore:  !IsRowDateSaturated(store, pivot, row.id, day, activeCounterpartIDs),
			}
		}

		grid.Rows = append(grid.Rows, gridRow)
	}

	return grid
}

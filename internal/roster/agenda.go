package roster

import (
	"sort"
	"time"

	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/domain"
)

// AgendaItem 是员工个人视角下的一条排班，带上班次的起止时刻方便直接展示
type AgendaItem struct {
	AssignmentID int64  `json:"assignmentID"`
	WorkDate     string `json:"workDate"`
	ShiftID      int64  `json:"shiftID"`
	ShiftName    string `json:"shiftName"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Note         string `json:"note"`
}

// BuildAgenda 过滤出某位员工在窗口内的全部排班，按日期和班次开始时刻排列
// 已停用班次的排班同样保留，员工仍需要知道自己值过或将要值哪些班
func BuildAgenda(staffID int64, shifts []*domain.Shift, window Window, store *Store) []AgendaItem {
	shiftByID := make(map[int64]*domain.Shift, len(shifts))
	for _, shift := range shifts {
		shiftByID[shift.ID] = shift
	}

	agenda := make([]AgendaItem, 0)
	for _, a := range store.All() {
		if a.StaffID != staffID || !window.Contains(a.WorkDate) {
			continue
		}

		item := AgendaItem{
			AssignmentID: a.ID,
			WorkDate:     DateOf(a.WorkDate).Format(time.DateOnly),
			ShiftID:      a.ShiftID,
			Note:         a.Note,
		}
		if shift, exists := shiftByID[a.ShiftID]; exists {
			item.ShiftName = shift.Name
			item.StartTime = shift.StartTime
			item.EndTime = shift.EndTime
		}

		agenda = append(agenda, item)
	}

	sort.Slice(agenda, func(i, j int) bool {
		if agenda[i].WorkDate != agenda[j].WorkDate {
			return agenda[i].WorkDate < agenda[j].WorkDate
		}
		if agenda[i].StartTime != agenda[j].StartTime {
			return agenda[i].StartTime < agenda[j].StartTime
		}
		return agenda[i].AssignmentID < agenda[j].AssignmentID
	})

	return agenda
}

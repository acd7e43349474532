package roster

import "time"

// PivotType 决定网格的行是员工还是班次，对侧实体则是另一种类型
type PivotType string

const (
	PivotByStaff PivotType = "staff"
	PivotByShift PivotType = "shift"
)

// Pair 根据视角把 (行 id, 对侧 id) 还原为 (staffID, shiftID)
func (p PivotType) Pair(rowID int64, counterpartID int64) (staffID int64, shiftID int64) {
	if p == PivotByShift {
		return counterpartID, rowID
	}
	return rowID, counterpartID
}

// IsRowDateSaturated 判断某一行在某一天是否已经排满：
// 当每一个启用中的对侧实体都已经有对应排班时，这个格子不能再新增
// 对侧集合为空时同样视为已排满（没有任何可以新增的对象）
func IsRowDateSaturated(store *Store, pivot PivotType, rowID int64, date time.Time, activeCounterpartIDs []int64) bool {
	for _, cid := range activeCounterpartIDs {
		staffID, shiftID := pivot.Pair(rowID, cid)
		if !store.Exists(staffID, shiftID, date) {
			return false
		}
	}
	return true
}

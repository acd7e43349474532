package domain

import "time"

// Assignment 表示某位员工在某个日期值某个班次
// 对同一个 (staffID, shiftID, workDate) 至多存在一条记录
type Assignment struct {
	ID        int64     `json:"id"`
	StaffID   int64     `json:"staffID"`
	ShiftID   int64     `json:"shiftID"`
	WorkDate  time.Time `json:"workDate"` // 只取日期部分
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

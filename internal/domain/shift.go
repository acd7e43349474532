package domain

import "time"

// Shift 的 StartTime 和 EndTime 为一天内的时刻（格式 15:04:05），不含日期
// EndTime 早于 StartTime 表示该班次跨越午夜，结束于次日
type Shift struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

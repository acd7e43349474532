package domain

import (
	"time"
)

type Role string

const (
	RoleStaffMember Role = "普通员工"
	RoleScheduler   Role = "排班员"
	RoleAdmin       Role = "管理员"
)

// Staff 既是排班的对象，也是系统的登录账户
type Staff struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

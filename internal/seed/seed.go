package seed

import (
	"log/slog"
	"time"

	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/config"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/repository"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/roster"
	"golang.org/x/crypto/bcrypt"
)

var fixtureShifts = []domain.Shift{
	{Name: "早班", StartTime: "07:00:00", EndTime: "15:00:00"},
	{Name: "中班", StartTime: "15:00:00", EndTime: "23:00:00"},
	// 夜班跨越午夜，结束于次日早上
	{Name: "夜班", StartTime: "23:00:00", EndTime: "07:00:00"},
}

var fixtureStaff = []struct {
	username string
	fullName string
	role     domain.Role
}{
	{username: "chenjing", fullName: "陈静", role: domain.RoleScheduler},
	{username: "liwei", fullName: "李伟", role: domain.RoleStaffMember},
	{username: "zhangmin", fullName: "张敏", role: domain.RoleStaffMember},
	{username: "wangfang", fullName: "王芳", role: domain.RoleStaffMember},
	{username: "liuyang", fullName: "刘洋", role: domain.RoleStaffMember},
}

// 固定的每周排班模式：{员工下标, 班次下标, 重复的星期}
var fixturePatterns = []struct {
	staffIdx int
	shiftIdx int
	weekdays []int32
}{
	{staffIdx: 0, shiftIdx: 0, weekdays: []int32{1, 2, 3, 4, 5}},
	{staffIdx: 1, shiftIdx: 0, weekdays: []int32{6, 7}},
	{staffIdx: 1, shiftIdx: 1, weekdays: []int32{1, 3, 5}},
	{staffIdx: 2, shiftIdx: 1, weekdays: []int32{2, 4, 6}},
	{staffIdx: 3, shiftIdx: 2, weekdays: []int32{1, 2, 3}},
	{staffIdx: 4, shiftIdx: 2, weekdays: []int32{4, 5, 6, 7}},
}

// SeedFixtureData 插入一组固定的员工、班次，以及未来四周的排班
// 排班日期通过核心的重复展开生成，和线上创建走同一套逻辑
func SeedFixtureData(repo *repository.Repository, cfg *config.Config) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.Staff.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("无法生成员工密码哈希", "error", err)
		return
	}

	staffs := make([]*domain.Staff, 0, len(fixtureStaff))
	for _, f := range fixtureStaff {
		staff := &domain.Staff{
			Username:     f.username,
			PasswordHash: string(passwordHash),
			FullName:     f.fullName,
			Email:        f.username + "@" + cfg.Email.UserDomain,
			Role:         f.role,
		}
		if err := repo.CreateStaff(staff); err != nil {
			slog.Error("无法插入员工", "username", f.username, "error", err)
			return
		}
		staffs = append(staffs, staff)
	}
	slog.Info("插入员工成功", "count", len(staffs))

	shifts := make([]*domain.Shift, 0, len(fixtureShifts))
	for i := range fixtureShifts {
		shift := fixtureShifts[i]
		if err := repo.CreateShift(&shift); err != nil {
			slog.Error("无法插入班次", "name", shift.Name, "error", err)
			return
		}
		shifts = append(shifts, &shift)
	}
	slog.Info("插入班次成功", "count", len(shifts))

	cal, err := roster.NewCalendar(cfg.Roster.WeekStart)
	if err != nil {
		slog.Error("无法创建日历", "error", err)
		return
	}

	start := cal.WindowFor(time.Now()).Start()
	until := start.AddDate(0, 0, 27) // 四个整周

	total := 0
	for _, p := range fixturePatterns {
		dates, err := roster.ExpandRecurrence(start, p.weekdays, until)
		if err != nil {
			slog.Error("无法展开排班模式", "error", err)
			return
		}

		pairs := make([]roster.Pair, 0, len(dates))
		for _, d := range dates {
			pairs = append(pairs, roster.Pair{CounterpartID: shifts[p.shiftIdx].ID, WorkDate: d})
		}

		created, err := repo.CreateAssignments(roster.PivotByStaff, staffs[p.staffIdx].ID, pairs, "")
		if err != nil {
			slog.Error("无法插入排班", "staffID", staffs[p.staffIdx].ID, "error", err)
			return
		}
		total += len(created)
	}

	slog.Info("插入排班成功", "count", total)
}

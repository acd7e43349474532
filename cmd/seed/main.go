package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/config"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/repository"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/roster"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/seed"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机员工, 2: 插入随机班次, 3: 插入随机排班, 4: 插入固定的演示数据)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的员工数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				staff, err := utils.GenerateRandomStaff(cfg.Seed.Staff.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("无法生成随机员工", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateStaff(staff); err != nil {
					slog.Error("无法插入员工", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入员工成功", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的班次数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				shift := utils.GenerateRandomShift()
				if err := repo.CreateShift(shift); err != nil {
					slog.Error("无法插入班次", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入班次成功", slog.Int("count", n-cnt))
		}
	case 3:
		// 先获取所有员工和班次
		staffs, err := repo.GetAllStaff()
		if err != nil {
			slog.Error("无法获取所有员工", slog.String("error", err.Error()))
			return
		}
		shifts, err := repo.GetAllShifts()
		if err != nil {
			slog.Error("无法获取所有班次", slog.String("error", err.Error()))
			return
		}
		if len(staffs) == 0 || len(shifts) == 0 {
			slog.Error("请先插入员工和班次")
			return
		}

		cal, err := roster.NewCalendar(cfg.Roster.WeekStart)
		if err != nil {
			slog.Error("无法创建日历", slog.String("error", err.Error()))
			return
		}

		// 为每个员工在本周内随机安排若干天
		start := cal.WindowFor(time.Now()).Start()
		cnt := 0
		for _, staff := range staffs {
			shift := shifts[rand.Intn(len(shifts))]
			dates, err := roster.ExpandRecurrence(start, utils.GenerateRandomWeekdays(), start.AddDate(0, 0, 6))
			if err != nil {
				slog.Error("无法展开排班日期", slog.String("error", err.Error()))
				continue
			}

			pairs := make([]roster.Pair, 0, len(dates))
			for _, d := range dates {
				pairs = append(pairs, roster.Pair{CounterpartID: shift.ID, WorkDate: d})
			}

			created, err := repo.CreateAssignments(roster.PivotByStaff, staff.ID, pairs, "")
			if err != nil {
				slog.Error("无法插入排班", slog.String("error", err.Error()))
				continue
			}

			cnt += len(created)
		}

		slog.Info("插入排班成功", slog.Int("count", cnt))
	case 4:
		seed.SeedFixtureData(repo, cfg)
	default:
		slog.Error("指定的操作非法")
	}
}

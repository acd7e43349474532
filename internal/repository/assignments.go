package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/roster"
)

// FetchAssignments 返回 [start, end] 闭区间内的全部排班，按插入顺序排列
func (r *Repository) FetchAssignments(start time.Time, end time.Time) ([]*domain.Assignment, error) {
	query := `
		SELECT id, staff_id, shift_id, work_date, note, created_at
		FROM assignments
		WHERE work_date BETWEEN $1 AND $2
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, roster.DateOf(start), roster.DateOf(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]*domain.Assignment, 0)
	for rows.Next() {
		a := &domain.Assignment{}
		dst := []any{&a.ID, &a.StaffID, &a.ShiftID, &a.WorkDate, &a.Note, &a.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// CreateAssignments 在一个事务内插入整个批次，任何一条失败整个批次回滚
// 调用方（排班核心）已经把重复规则展开成具体日期并滤掉了冲突组合，
// assignments_staff_shift_date_key 唯一索引只是最后一道保险
func (r *Repository) CreateAssignments(pivot roster.PivotType, rowID int64, pairs []roster.Pair, note string) ([]*domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO assignments (staff_id, shift_id, work_date, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	created := make([]*domain.Assignment, 0, len(pairs))
	for _, pair := range pairs {
		staffID, shiftID := pivot.Pair(rowID, pair.CounterpartID)

		a := &domain.Assignment{
			StaffID:  staffID,
			ShiftID:  shiftID,
			WorkDate: roster.DateOf(pair.WorkDate),
			Note:     note,
		}

		args := []any{a.StaffID, a.ShiftID, a.WorkDate, a.Note}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
			return nil, err
		}

		created = append(created, a)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return created, nil
}

func (r *Repository) GetAssignmentByID(id int64) (*domain.Assignment, error) {
	query := `
		SELECT staff_id, shift_id, work_date, note, created_at
		FROM assignments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	a := &domain.Assignment{
		ID: id,
	}

	dst := []any{&a.StaffID, &a.ShiftID, &a.WorkDate, &a.Note, &a.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return a, nil
}

func (r *Repository) DeleteAssignment(id int64) error {
	query := `
		DELETE FROM assignments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

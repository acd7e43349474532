package roster

import (
	"time"

	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/domain"
)

type tripleKey struct {
	staffID  int64
	shiftID  int64
	workDate string
}

func keyOf(staffID int64, shiftID int64, workDate time.Time) tripleKey {
	return tripleKey{
		staffID:  staffID,
		shiftID:  shiftID,
		workDate: DateOf(workDate).Format(time.DateOnly),
	}
}

// Store 是当前周窗口内全部排班的内存投影
// 唯一性约束定义在 (staffID, shiftID, workDate) 三元组上，与展示视角无关
type Store struct {
	byKey map[tripleKey]*domain.Assignment
	byID  map[int64]*domain.Assignment
	order []*domain.Assignment // 保留加载和创建的先后顺序
}

// NewStore 从协作方返回的排班列表整体重建投影
// 列表中如果出现重复的三元组（理论上不会发生），只保留第一条
func NewStore(assignments []*domain.Assignment) *Store {
	s := &Store{
		byKey: make(map[tripleKey]*domain.Assignment),
		byID:  make(map[int64]*domain.Assignment),
		order: make([]*domain.Assignment, 0, len(assignments)),
	}

	for _, a := range assignments {
		s.Add(a)
	}

	return s
}

func (s *Store) Exists(staffID int64, shiftID int64, workDate time.Time) bool {
	_, exists := s.byKey[keyOf(staffID, shiftID, workDate)]
	return exists
}

// Add 把一条排班并入投影，如果同一三元组已经存在则不做任何修改
func (s *Store) Add(a *domain.Assignment) bool {
	k := keyOf(a.StaffID, a.ShiftID, a.WorkDate)
	if _, exists := s.byKey[k]; exists {
		return false
	}

	s.byKey[k] = a
	s.byID[a.ID] = a
	s.order = append(s.order, a)
	return true
}

func (s *Store) Remove(id int64) bool {
	a, exists := s.byID[id]
	if !exists {
		return false
	}

	delete(s.byID, id)
	delete(s.byKey, keyOf(a.StaffID, a.ShiftID, a.WorkDate))

	for i := range s.order {
		if s.order[i].ID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// All 按先后顺序返回投影中的全部排班
func (s *Store) All() []*domain.Assignment {
	all := make([]*domain.Assignment, len(s.order))
	copy(all, s.order)
	return all
}

func (s *Store) Len() int {
	return len(s.order)
}

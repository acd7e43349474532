package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/domain"
)

func asg(id int64, staffID int64, shiftID int64, workDate time.Time) *domain.Assignment {
	return &domain.Assignment{ID: id, StaffID: staffID, ShiftID: shiftID, WorkDate: workDate}
}

func TestStoreAddAndExists(t *testing.T) {
	s := NewStore(nil)
	require.Equal(t, 0, s.Len())

	d := date(2024, 6, 3)
	require.True(t, s.Add(asg(1, 10, 20, d)))
	require.True(t, s.Exists(10, 20, d))
	require.False(t, s.Exists(10, 20, d.AddDate(0, 0, 1)))
	require.False(t, s.Exists(10, 21, d))
	require.Equal(t, 1, s.Len())
}

func TestStoreAddDuplicateTriple(t *testing.T) {
	d := date(2024, 6, 3)
	s := NewStore([]*domain.Assignment{asg(1, 10, 20, d)})

	// 同一三元组再次加入不生效，即使 id 不同
	require.False(t, s.Add(asg(2, 10, 20, d)))
	require.Equal(t, 1, s.Len())
	require.Equal(t, int64(1), s.All()[0].ID)
}

func TestStoreExistsIgnoresTimeOfDay(t *testing.T) {
	s := NewStore([]*domain.Assignment{asg(1, 10, 20, date(2024, 6, 3))})
	require.True(t, s.Exists(10, 20, time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)))
}

func TestStoreRemove(t *testing.T) {
	d := date(2024, 6, 3)
	s := NewStore([]*domain.Assignment{
		asg(1, 10, 20, d),
		asg(2, 11, 20, d),
	})

	require.True(t, s.Remove(1))
	require.False(t, s.Exists(10, 20, d))
	require.True(t, s.Exists(11, 20, d))
	require.Equal(t, 1, s.Len())

	// 删除后同一三元组可以重新加入
	require.True(t, s.Add(asg(3, 10, 20, d)))

	require.False(t, s.Remove(999))
}

func TestStoreAllPreservesOrder(t *testing.T) {
	d := date(2024, 6, 3)
	s := NewStore([]*domain.Assignment{
		asg(3, 10, 20, d),
		asg(1, 11, 20, d),
		asg(2, 12, 20, d),
	})
	s.Add(asg(4, 13, 20, d))

	ids := make([]int64, 0)
	for _, a := range s.All() {
		ids = append(ids, a.ID)
	}
	require.Equal(t, []int64{3, 1, 2, 4}, ids)

	s.Remove(1)
	ids = ids[:0]
	for _, a := range s.All() {
		ids = append(ids, a.ID)
	}
	require.Equal(t, []int64{3, 2, 4}, ids)
}

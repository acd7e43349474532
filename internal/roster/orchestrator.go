package roster

import (
	"sync"
	"time"

	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/domain"
)

// Planner 是排班核心和持久化协作方之间的唯一边界
// 重复规则总是先在核心里展开成具体日期，协作方不需要理解任何重复语义
type Planner interface {
	FetchAssignments(start time.Time, end time.Time) ([]*domain.Assignment, error)
	CreateAssignments(pivot PivotType, rowID int64, pairs []Pair, note string) ([]*domain.Assignment, error)
	DeleteAssignment(id int64) error
}

// Pair 是一条待创建的 (对侧 id, 工作日期) 组合
type Pair struct {
	CounterpartID int64
	WorkDate      time.Time
}

type Recurrence struct {
	Weekdays []int32
	Until    time.Time
}

// BatchRequest 对应用户的一次提交：在某一行的某一天上
// 选择若干对侧实体，可选地按星期重复到某个截止日期
type BatchRequest struct {
	Pivot          PivotType
	RowID          int64
	CounterpartIDs []int64
	WorkDate       time.Time
	Note           string
	Recurrence     *Recurrence
}

type SubmitResult struct {
	Created []*domain.Assignment `json:"created"`
	Skipped int                  `json:"skipped"`
	Reason  string               `json:"reason,omitempty"`
}

type submitKey struct {
	pivot    PivotType
	rowID    int64
	workDate string
}

// Orchestrator 把窗口计算、重复展开、冲突校验和协作方调用串在一起，
// 并维护当前窗口的 Store 投影
type Orchestrator struct {
	planner Planner
	cal     Calendar

	mu     sync.Mutex
	window Window
	store  *Store
	loaded bool

	locksMu sync.Mutex
	locks   map[submitKey]*sync.Mutex
}

func NewOrchestrator(planner Planner, cal Calendar) *Orchestrator {
	return &Orchestrator{
		planner: planner,
		cal:     cal,
		locks:   make(map[submitKey]*sync.Mutex),
	}
}

func (o *Orchestrator) Calendar() Calendar {
	return o.cal
}

// LoadWindow 切换当前周窗口：重新计算窗口并从协作方整体重建 Store
// 窗口切换从不做增量修补，避免陈旧的启停状态残留
func (o *Orchestrator) LoadWindow(anchor time.Time) (Window, error) {
	window := o.cal.WindowFor(anchor)

	assignments, err := o.planner.FetchAssignments(window.Start(), window.End())
	if err != nil {
		return Window{}, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.window = window
	o.store = NewStore(assignments)
	o.loaded = true

	return window, nil
}

func (o *Orchestrator) Window() (Window, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return Window{}, ErrWindowNotLoaded
	}
	return o.window, nil
}

// Grid 基于当前窗口的 Store 构建透视网格
func (o *Orchestrator) Grid(pivot PivotType, staffs []*domain.Staff, shifts []*domain.Shift) (*Grid, error) {
	if pivot != PivotByStaff && pivot != PivotByShift {
		return nil, ErrInvalidPivot
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return nil, ErrWindowNotLoaded
	}
	return BuildGrid(pivot, staffs, shifts, o.window, o.store), nil
}

// View 在一次加锁内完成窗口切换和网格构建，
// 防止两个并发请求各自加载窗口后拿到对方的网格
func (o *Orchestrator) View(anchor time.Time, pivot PivotType, staffs []*domain.Staff, shifts []*domain.Shift) (Window, *Grid, error) {
	if pivot != PivotByStaff && pivot != PivotByShift {
		return Window{}, nil, ErrInvalidPivot
	}

	window := o.cal.WindowFor(anchor)

	assignments, err := o.planner.FetchAssignments(window.Start(), window.End())
	if err != nil {
		return Window{}, nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.window = window
	o.store = NewStore(assignments)
	o.loaded = true

	return window, BuildGrid(pivot, staffs, shifts, o.window, o.store), nil
}

func (o *Orchestrator) submitLock(k submitKey) *sync.Mutex {
	o.locksMu.Lock()
	defer o.locksMu.Unlock()

	lock, exists := o.locks[k]
	if !exists {
		lock = &sync.Mutex{}
		o.locks[k] = lock
	}
	return lock
}

// Submit 处理一次批量创建：
//  1. 校验请求并展开重复规则（任何校验失败都发生在对协作方的调用之前）
//  2. 对同一 (视角, 行, 日期) 的提交串行化，并在锁内重新拉取最新排班做冲突校验
//  3. 已存在的组合按幂等跳过，剩余组合交给协作方创建
//  4. 只把仍落在当前窗口内的新排班合并进 Store
func (o *Orchestrator) Submit(req BatchRequest) (*SubmitResult, error) {
	if req.Pivot != PivotByStaff && req.Pivot != PivotByShift {
		return nil, ErrInvalidPivot
	}
	if len(req.CounterpartIDs) == 0 {
		return nil, ErrEmptyCounterparts
	}

	workDate := DateOf(req.WorkDate)

	var dates []time.Time
	if req.Recurrence != nil {
		var err error
		dates, err = ExpandRecurrence(workDate, req.Recurrence.Weekdays, req.Recurrence.Until)
		if err != nil {
			return nil, err
		}
	} else {
		dates = []time.Time{workDate}
	}

	// 合法的重复规则也可能在区间内没有任何匹配的日期，
	// 此时不需要打扰协作方，直接告知用户
	if len(dates) == 0 {
		return &SubmitResult{
			Created: make([]*domain.Assignment, 0),
			Reason:  "重复规则在所选区间内没有匹配的日期",
		}, nil
	}

	// 冲突校验的结论只在 Store 足够新鲜时才可靠，
	// 因此同一个格子的提交必须串行，并且每次都基于锁内重新拉取的数据校验
	lock := o.submitLock(submitKey{pivot: req.Pivot, rowID: req.RowID, workDate: workDate.Format(time.DateOnly)})
	lock.Lock()
	defer lock.Unlock()

	fresh, err := o.planner.FetchAssignments(dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, err
	}
	freshStore := NewStore(fresh)

	// 逐对过滤：已存在的组合跳过而不是让整个批次失败，
	// 同一批次内重复出现的组合也只保留一个
	pairs := make([]Pair, 0, len(req.CounterpartIDs)*len(dates))
	pending := make(map[tripleKey]bool)
	skipped := 0

	for _, counterpartID := range req.CounterpartIDs {
		for _, d := range dates {
			staffID, shiftID := req.Pivot.Pair(req.RowID, counterpartID)
			k := keyOf(staffID, shiftID, d)

			if freshStore.Exists(staffID, shiftID, d) || pending[k] {
				skipped++
				continue
			}

			pending[k] = true
			pairs = append(pairs, Pair{CounterpartID: counterpartID, WorkDate: d})
		}
	}

	if len(pairs) == 0 {
		return &SubmitResult{
			Created: make([]*domain.Assignment, 0),
			Skipped: skipped,
			Reason:  "所选组合均已存在排班",
		}, nil
	}

	created, err := o.planner.CreateAssignments(req.Pivot, req.RowID, pairs, req.Note)
	if err != nil {
		// 协作方失败时不修改 Store，把错误原样向上传递
		return nil, err
	}

	// 提交期间窗口可能已经被切换，只合并仍落在当前窗口内的结果，
	// 不相关窗口的结果直接丢弃
	o.mu.Lock()
	if o.loaded {
		for _, a := range created {
			if o.window.Contains(a.WorkDate) {
				o.store.Add(a)
			}
		}
	}
	o.mu.Unlock()

	return &SubmitResult{Created: created, Skipped: skipped}, nil
}

// Delete 只删除一条排班：按周重复创建出来的记录之间没有任何关联，
// 不会级联删除同一批次的其他日期
func (o *Orchestrator) Delete(id int64) error {
	if err := o.planner.DeleteAssignment(id); err != nil {
		return err
	}

	o.mu.Lock()
	if o.loaded {
		o.store.Remove(id)
	}
	o.mu.Unlock()

	return nil
}

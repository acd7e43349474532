package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/roster"
)

// GetRoster 返回以 anchor 所在周为窗口的排班网格
// pivot 为 staff 时每行是一位员工，为 shift 时每行是一个班次
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	anchor := time.Now()
	if anchorParam := r.URL.Query().Get("anchor"); anchorParam != "" {
		parsed, err := time.Parse(time.DateOnly, anchorParam)
		if err != nil {
			h.errorResponse(w, r, "锚点日期格式错误，应为 YYYY-MM-DD")
			return
		}
		anchor = parsed
	}

	var pivot roster.PivotType
	switch r.URL.Query().Get("pivot") {
	case "", "staff":
		pivot = roster.PivotByStaff
	case "shift":
		pivot = roster.PivotByShift
	default:
		h.errorResponse(w, r, "无效的视角，只支持 staff 或 shift")
		return
	}

	// 员工和班次每次都重新拉取，保证启停状态不会滞留
	staffs, err := h.repository.GetAllStaff()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	_, grid, err := h.orchestrator.View(anchor, pivot, staffs, shifts)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取排班表成功", grid)
}

func (h *Handler) CreateAssignments(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pivot          string  `json:"pivot" validate:"required,oneof=staff shift"`
		RowID          int64   `json:"rowID" validate:"required"`
		CounterpartIDs []int64 `json:"counterpartIDs" validate:"required"`
		WorkDate       string  `json:"workDate" validate:"required"`
		Note           string  `json:"note"`
		Recurrence     *struct {
			Weekdays []int32 `json:"weekdays" validate:"omitempty,dive,gte=1,lte=7"`
			Until    string  `json:"until" validate:"required"`
		} `json:"recurrence"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	workDate, err := time.Parse(time.DateOnly, req.WorkDate)
	if err != nil {
		h.errorResponse(w, r, "工作日期格式错误，应为 YYYY-MM-DD")
		return
	}

	batch := roster.BatchRequest{
		Pivot:          roster.PivotType(req.Pivot),
		RowID:          req.RowID,
		CounterpartIDs: req.CounterpartIDs,
		WorkDate:       workDate,
		Note:           req.Note,
	}

	if req.Recurrence != nil {
		until, err := time.Parse(time.DateOnly, req.Recurrence.Until)
		if err != nil {
			h.errorResponse(w, r, "重复截止日期格式错误，应为 YYYY-MM-DD")
			return
		}
		batch.Recurrence = &roster.Recurrence{
			Weekdays: req.Recurrence.Weekdays,
			Until:    until,
		}
	}

	result, err := h.orchestrator.Submit(batch)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrEmptyCounterparts), errors.Is(err, roster.ErrInvalidRecurrence), errors.Is(err, roster.ErrInvalidPivot):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 通知受影响的员工，通知失败不影响已创建的排班
	if len(result.Created) > 0 {
		h.publishRosterNotices(result.Created, "已排班")
	}

	message := fmt.Sprintf("成功创建 %d 条排班", len(result.Created))
	if result.Skipped > 0 {
		message = fmt.Sprintf("成功创建 %d 条排班，跳过 %d 条已存在的组合", len(result.Created), result.Skipped)
	}
	if len(result.Created) == 0 && result.Reason != "" {
		message = result.Reason
	}

	h.successResponse(w, r, message, result)
}

// DeleteAssignment 只删除一条排班：按周重复创建的记录相互独立，不会级联删除
func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "排班ID无效")
		return
	}

	// 先取出这条排班，删除成功后还要用它来通知员工
	assignment, err := h.repository.GetAssignmentByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "排班不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.orchestrator.Delete(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.publishRosterNotices([]*domain.Assignment{assignment}, "已取消")

	h.successResponse(w, r, "删除排班成功", nil)
}

// publishRosterNotices 按 (员工, 班次) 分组，向每位受影响的员工发送一封排班变更邮件
func (h *Handler) publishRosterNotices(assignments []*domain.Assignment, action string) {
	type noticeKey struct {
		staffID int64
		shiftID int64
	}

	grouped := make(map[noticeKey][]*domain.Assignment)
	for _, a := range assignments {
		k := noticeKey{staffID: a.StaffID, shiftID: a.ShiftID}
		grouped[k] = append(grouped[k], a)
	}

	for k, group := range grouped {
		staff, err := h.repository.GetStaffByID(k.staffID)
		if err != nil {
			slog.Error("无法获取排班通知的收件员工", "staffID", k.staffID, "error", err)
			continue
		}
		shift, err := h.repository.GetShiftByID(k.shiftID)
		if err != nil {
			slog.Error("无法获取排班通知对应的班次", "shiftID", k.shiftID, "error", err)
			continue
		}

		dates := make([]string, 0, len(group))
		for _, a := range group {
			dates = append(dates, roster.DateOf(a.WorkDate).Format(time.DateOnly))
		}

		mailMessage := domain.MailMessage{
			Type: "roster_notice",
			To:   staff.Email,
			Data: domain.RosterNoticeMailData{
				FullName:  staff.FullName,
				ShiftName: shift.Name,
				Dates:     dates,
				Note:      group[0].Note,
				Action:    action,
			},
		}

		mailData, err := json.Marshal(mailMessage)
		if err != nil {
			slog.Error("排班通知序列化失败", "error", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)

		if err := h.mailChannel.PublishWithContext(
			ctx,
			"",
			"email_queue",
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        mailData,
			},
		); err != nil {
			slog.Error("排班通知发送失败", "staffID", k.staffID, "error", err)
		}

		cancel()
	}
}

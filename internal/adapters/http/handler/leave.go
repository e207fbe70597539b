package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ogurasousui/hr-desk/internal/core/leave"
)

// CreateLeaveRequest は休暇申請を登録します。
func (h *Handler) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.fail(w, r, err)
		return
	}

	start, err := requiredDate(r.PostFormValue("start_date"), leave.ErrInvalidDateRange)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	end, err := requiredDate(r.PostFormValue("end_date"), leave.ErrInvalidDateRange)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	created, err := h.leave.CreateLeaveRequest(r.Context(), leave.CreateLeaveRequestInput{
		EmployeeID: r.PostFormValue("employee_id"),
		Type:       leave.Type(r.PostFormValue("type")),
		StartDate:  start,
		EndDate:    end,
		Notes:      r.PostFormValue("notes"),
		Status:     optional[leave.Status](r.PostFormValue("status")),
		Approver:   r.PostFormValue("approver"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.logger.Info("leave request created", zap.String("id", created.ID), zap.String("employee_id", created.EmployeeID))
	redirectBack(w, r, "leave")
}

// UpdateLeaveStatus は休暇申請を承認または却下します。
func (h *Handler) UpdateLeaveStatus(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.fail(w, r, err)
		return
	}

	updated, err := h.leave.UpdateLeaveStatus(r.Context(), leave.UpdateLeaveStatusInput{
		ID:     chi.URLParam(r, "id"),
		Status: leave.Status(r.PostFormValue("status")),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.logger.Info("leave status updated", zap.String("id", updated.ID), zap.String("status", string(updated.Status)))
	redirectBack(w, r, "leave")
}

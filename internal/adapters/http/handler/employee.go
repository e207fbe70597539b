package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ogurasousui/hr-desk/internal/core/employee"
)

// CreateEmployee は社員を登録します。
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.fail(w, r, err)
		return
	}

	startDate, err := optionalDate(r.PostFormValue("start_date"), employee.ErrInvalidStartDate)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	score, err := optionalFloat(r.PostFormValue("last_review_score"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	created, err := h.employees.CreateEmployee(r.Context(), employee.CreateEmployeeInput{
		Name:            r.PostFormValue("name"),
		Department:      r.PostFormValue("department"),
		Role:            r.PostFormValue("role"),
		Status:          optional[employee.Status](r.PostFormValue("status")),
		StartDate:       startDate,
		Location:        r.PostFormValue("location"),
		Manager:         r.PostFormValue("manager"),
		Email:           r.PostFormValue("email"),
		Phone:           r.PostFormValue("phone"),
		Tags:            splitTags(r.PostFormValue("tags")),
		LastReviewScore: score,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.logger.Info("employee created", zap.String("id", created.ID))
	redirectBack(w, r, "directory")
}

// UpdateEmployeeStatus は社員のステータスを変更します。
func (h *Handler) UpdateEmployeeStatus(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.fail(w, r, err)
		return
	}

	if _, err := h.employees.UpdateEmployeeStatus(r.Context(), employee.UpdateEmployeeStatusInput{
		ID:     chi.URLParam(r, "id"),
		Status: employee.Status(r.PostFormValue("status")),
	}); err != nil {
		h.fail(w, r, err)
		return
	}

	redirectBack(w, r, "directory")
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ogurasousui/hr-desk/internal/core/checklist"
)

// CreateChecklistItem はタスクを登録します。
func (h *Handler) CreateChecklistItem(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.fail(w, r, err)
		return
	}

	due, err := optionalDate(r.PostFormValue("due_date"), checklist.ErrInvalidDueDate)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if _, err := h.checklist.CreateItem(r.Context(), checklist.CreateItemInput{
		Title:    r.PostFormValue("title"),
		Owner:    r.PostFormValue("owner"),
		DueDate:  due,
		Category: optional[checklist.Category](r.PostFormValue("category")),
		Status:   optional[checklist.Status](r.PostFormValue("status")),
	}); err != nil {
		h.fail(w, r, err)
		return
	}

	redirectBack(w, r, "checklist")
}

// UpdateChecklistStatus はタスクの進捗を変更します。
func (h *Handler) UpdateChecklistStatus(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.fail(w, r, err)
		return
	}

	if _, err := h.checklist.UpdateItemStatus(r.Context(), checklist.UpdateItemStatusInput{
		ID:     chi.URLParam(r, "id"),
		Status: checklist.Status(r.PostFormValue("status")),
	}); err != nil {
		h.fail(w, r, err)
		return
	}

	redirectBack(w, r, "checklist")
}

package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/document"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
	"github.com/ogurasousui/hr-desk/internal/core/workflow"
)

func toHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, errInvalidForm),
		errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidName),
		errors.Is(err, employee.ErrInvalidDepartment),
		errors.Is(err, employee.ErrInvalidRole),
		errors.Is(err, employee.ErrInvalidEmail),
		errors.Is(err, employee.ErrInvalidStatus),
		errors.Is(err, employee.ErrInvalidStartDate),
		errors.Is(err, leave.ErrInvalidID),
		errors.Is(err, leave.ErrInvalidEmployeeID),
		errors.Is(err, leave.ErrInvalidType),
		errors.Is(err, leave.ErrInvalidStatus),
		errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, checklist.ErrInvalidID),
		errors.Is(err, checklist.ErrInvalidTitle),
		errors.Is(err, checklist.ErrInvalidOwner),
		errors.Is(err, checklist.ErrInvalidDueDate),
		errors.Is(err, checklist.ErrInvalidCategory),
		errors.Is(err, checklist.ErrInvalidStatus),
		errors.Is(err, workflow.ErrInvalidID),
		errors.Is(err, workflow.ErrInvalidName),
		errors.Is(err, workflow.ErrInvalidTrigger),
		errors.Is(err, workflow.ErrInvalidAction),
		errors.Is(err, document.ErrInvalidTemplateID):
		return http.StatusBadRequest
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, leave.ErrRequestNotFound),
		errors.Is(err, checklist.ErrItemNotFound),
		errors.Is(err, workflow.ErrWorkflowNotFound),
		errors.Is(err, document.ErrTemplateNotFound),
		errors.Is(err, document.ErrNoTemplates):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail はエラーをステータスコードに変換して返します。500 の場合は詳細を隠しログに残します。
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := toHTTPStatus(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(code), code)
		return
	}

	h.logger.Debug("request rejected", zap.String("path", r.URL.Path), zap.Int("status", code), zap.Error(err))
	http.Error(w, err.Error(), code)
}

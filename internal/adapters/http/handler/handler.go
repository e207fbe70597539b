// Package handler はダッシュボード画面とフォーム送信の HTTP ハンドラーを提供します。
package handler

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ogurasousui/hr-desk/internal/adapters/http/view"
	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/dashboard"
	"github.com/ogurasousui/hr-desk/internal/core/document"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
	"github.com/ogurasousui/hr-desk/internal/core/workflow"
)

const defaultCopiedReset = 2 * time.Second

// Options は Handler の依存関係です。
type Options struct {
	Employees   employee.UseCase
	Leave       leave.UseCase
	Checklist   checklist.UseCase
	Workflows   workflow.UseCase
	Documents   document.UseCase
	Dashboard   dashboard.UseCase
	Renderer    *view.Renderer
	Logger      *zap.Logger
	CopiedReset time.Duration
}

// Handler は各ユースケースを HTTP に公開します。
type Handler struct {
	employees   employee.UseCase
	leave       leave.UseCase
	checklist   checklist.UseCase
	workflows   workflow.UseCase
	documents   document.UseCase
	dashboard   dashboard.UseCase
	renderer    *view.Renderer
	logger      *zap.Logger
	copiedReset time.Duration
}

// New は Handler を生成します。
func New(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	copiedReset := opts.CopiedReset
	if copiedReset <= 0 {
		copiedReset = defaultCopiedReset
	}
	return &Handler{
		employees:   opts.Employees,
		leave:       opts.Leave,
		checklist:   opts.Checklist,
		workflows:   opts.Workflows,
		documents:   opts.Documents,
		dashboard:   opts.Dashboard,
		renderer:    opts.Renderer,
		logger:      logger,
		copiedReset: copiedReset,
	}
}

// Register はルートを登録します。writes はフォーム送信のルートにのみ適用されます。
func (h *Handler) Register(r chi.Router, writes ...func(http.Handler) http.Handler) {
	r.Get("/", h.Index)
	r.Get("/documents/{id}.txt", h.DownloadDocument)

	r.Group(func(r chi.Router) {
		r.Use(writes...)
		r.Post("/employees", h.CreateEmployee)
		r.Post("/employees/{id}/status", h.UpdateEmployeeStatus)
		r.Post("/leave-requests", h.CreateLeaveRequest)
		r.Post("/leave-requests/{id}/status", h.UpdateLeaveStatus)
		r.Post("/checklist", h.CreateChecklistItem)
		r.Post("/checklist/{id}/status", h.UpdateChecklistStatus)
		r.Post("/workflows", h.CreateWorkflow)
	})
}

// Index は全セクションを含むダッシュボードを描画します。
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.buildPage(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, *page); err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) buildPage(r *http.Request) (*view.Page, error) {
	ctx := r.Context()
	q := r.URL.Query()

	page := &view.Page{
		Query:             q,
		CopiedResetMillis: h.copiedReset.Milliseconds(),
	}

	overview, err := h.dashboard.GetOverview(ctx)
	if err != nil {
		return nil, err
	}
	page.Overview = overview

	page.Directory.Filter = employee.DirectoryFilter{
		Search:     q.Get("q"),
		Department: q.Get("department"),
		Status:     q.Get("status"),
	}
	if page.Directory.Result, err = h.employees.ListEmployees(ctx, employee.ListEmployeesInput{Filter: page.Directory.Filter}); err != nil {
		return nil, err
	}

	everyone, err := h.employees.ListEmployees(ctx, employee.ListEmployeesInput{})
	if err != nil {
		return nil, err
	}
	page.Leave.Employees = everyone.Employees
	page.Leave.Filter = q.Get("leave_status")
	if page.Leave.Result, err = h.leave.ListLeaveRequests(ctx, leave.ListLeaveRequestsInput{Status: page.Leave.Filter}); err != nil {
		return nil, err
	}

	if page.Checklist, err = h.checklist.GetBoard(ctx); err != nil {
		return nil, err
	}

	page.Workflows.Search = q.Get("workflow_q")
	if page.Workflows.Items, err = h.workflows.ListWorkflows(ctx, workflow.ListWorkflowsInput{Search: page.Workflows.Search}); err != nil {
		return nil, err
	}

	if page.Documents.Templates, err = h.documents.ListTemplates(ctx); err != nil {
		return nil, err
	}
	if len(page.Documents.Templates) > 0 {
		rendered, err := h.documents.RenderDraft(ctx, draftFromQuery(q.Get("template"), q))
		if errors.Is(err, document.ErrTemplateNotFound) {
			// 古いブックマークなどで存在しないテンプレートが指定された場合は先頭に戻します。
			rendered, err = h.documents.RenderDraft(ctx, document.NewDraft(""))
		}
		if err != nil {
			return nil, err
		}
		page.Documents.Rendered = rendered
		page.Documents.DownloadURL = downloadURL(rendered)
	}

	return page, nil
}

// Package view はダッシュボード画面の HTML を組み立てます。
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"slices"
	"strings"

	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/dashboard"
	"github.com/ogurasousui/hr-desk/internal/core/document"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
	"github.com/ogurasousui/hr-desk/internal/core/workflow"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page は画面全体の表示内容です。
type Page struct {
	Overview  *dashboard.Overview
	Directory Directory
	Leave     LeaveBoard
	Checklist checklist.Board
	Workflows Workflows
	Documents Documents

	// Query は表示中の画面の検索条件です。フォーム送信後はこの条件の画面に戻ります。
	Query url.Values
	// CopiedResetMillis は「تم النسخ」表示を元に戻すまでのミリ秒です。
	CopiedResetMillis int64
}

// Return はフォームの戻り先として送るクエリ文字列です。
func (p Page) Return() string {
	return p.Query.Encode()
}

// Directory は社員名簿セクションです。
type Directory struct {
	Filter employee.DirectoryFilter
	Result *employee.ListEmployeesResult
}

// LeaveBoard は休暇申請セクションです。
type LeaveBoard struct {
	Filter    string
	Result    *leave.ListLeaveRequestsResult
	Employees []employee.Employee
}

// Workflows は自動化セクションです。
type Workflows struct {
	Search string
	Items  []workflow.Workflow
}

// Documents は文書生成セクションです。
type Documents struct {
	Templates   []document.Template
	Rendered    *document.Rendered
	DownloadURL string
}

// Param は hidden input として引き継ぐクエリパラメーターです。
type Param struct {
	Name  string
	Value string
}

// Renderer は埋め込みテンプレートで画面を描画します。
type Renderer struct {
	page *template.Template
}

// NewRenderer はテンプレートを解析して Renderer を生成します。
func NewRenderer() (*Renderer, error) {
	page, err := template.New("page.html").Funcs(funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse templates: %w", err)
	}
	return &Renderer{page: page}, nil
}

// Render は画面を w に書き出します。
func (r *Renderer) Render(w io.Writer, p Page) error {
	if p.Query == nil {
		p.Query = url.Values{}
	}
	if err := r.page.ExecuteTemplate(w, "page.html", p); err != nil {
		return fmt.Errorf("view: render page: %w", err)
	}
	return nil
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"leaveStatusLabel":     LeaveStatusLabel,
		"leaveFilterLabel":     LeaveFilterLabel,
		"categoryLabel":        CategoryLabel,
		"checklistStatusLabel": ChecklistStatusLabel,
		"progressNote":         ChecklistProgressNote,
		"optionLabel":          FilterOptionLabel,
		"date":                 FormatDate,
		"score":                FormatScore,
		"join":                 strings.Join,
		"carry":                Carry,
		"employeeStatuses":     func() []employee.Status { return employee.Statuses },
		"leaveTypes":           func() []leave.Type { return leave.Types },
		"leaveStatuses":        func() []leave.Status { return leave.Statuses },
		"leaveFilters":         leaveFilters,
		"categories":           func() []checklist.Category { return checklist.Categories },
		"checklistStatuses":    func() []checklist.Status { return checklist.Statuses },
		"triggers":             func() []workflow.Trigger { return workflow.Triggers },
		"actions":              func() []workflow.Action { return workflow.Actions },
		"hasAction":            func(set workflow.ActionSet, a workflow.Action) bool { return set.Has(a) },
		"fieldValue":           fieldValue,
		"emptyBucket":          func() string { return checklist.EmptyBucketText },
	}
}

func leaveFilters() []string {
	filters := []string{leave.FilterAll}
	for _, s := range leave.Statuses {
		filters = append(filters, string(s))
	}
	return filters
}

func fieldValue(r *document.Rendered, id string) string {
	if r == nil {
		return ""
	}
	return r.Values[id]
}

// Carry は drop に含まれないパラメーターを名前順に返します。
// drop の要素が "." で終わる場合は前方一致で除外します。
func Carry(query url.Values, drop ...string) []Param {
	var params []Param
	for name, values := range query {
		if dropped(name, drop) {
			continue
		}
		for _, v := range values {
			params = append(params, Param{Name: name, Value: v})
		}
	}
	slices.SortStableFunc(params, func(a, b Param) int {
		return strings.Compare(a.Name, b.Name)
	})
	return params
}

func dropped(name string, drop []string) bool {
	for _, d := range drop {
		if strings.HasSuffix(d, ".") && strings.HasPrefix(name, d) {
			return true
		}
		if name == d {
			return true
		}
	}
	return false
}

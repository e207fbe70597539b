// Package seed は YAML の初期データを読み込み、起動日を基準に相対日付を解決します。
package seed

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"cloud.google.com/go/civil"
	"gopkg.in/yaml.v3"

	"github.com/ogurasousui/hr-desk/assets"
	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/document"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
	"github.com/ogurasousui/hr-desk/internal/core/state"
	"github.com/ogurasousui/hr-desk/internal/core/workflow"
)

// ErrInvalidDate は日付表記が解釈できない場合に返却されます。
var ErrInvalidDate = errors.New("seed: invalid date")

// ErrInvalidRecord は必須項目の欠落や未定義の列挙値を含むレコードに対して返却されます。
var ErrInvalidRecord = errors.New("seed: invalid record")

// Data は初期状態と文書テンプレートの組です。
type Data struct {
	State     state.State
	Templates []document.Template
}

type file struct {
	Employees     []employeeRecord  `yaml:"employees"`
	LeaveRequests []leaveRecord     `yaml:"leave_requests"`
	Workflows     []workflowRecord  `yaml:"workflows"`
	Checklist     []checklistRecord `yaml:"checklist"`
	Templates     []templateRecord  `yaml:"templates"`
}

type employeeRecord struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Department      string   `yaml:"department"`
	Role            string   `yaml:"role"`
	Status          string   `yaml:"status"`
	StartDate       string   `yaml:"start_date"`
	Location        string   `yaml:"location"`
	Manager         string   `yaml:"manager"`
	Email           string   `yaml:"email"`
	Phone           string   `yaml:"phone"`
	Tags            []string `yaml:"tags"`
	LastReviewScore float64  `yaml:"last_review_score"`
}

type leaveRecord struct {
	ID         string `yaml:"id"`
	EmployeeID string `yaml:"employee_id"`
	Type       string `yaml:"type"`
	StartDate  string `yaml:"start_date"`
	EndDate    string `yaml:"end_date"`
	Notes      string `yaml:"notes"`
	Status     string `yaml:"status"`
	Approver   string `yaml:"approver"`
	CreatedAt  string `yaml:"created_at"`
}

type workflowRecord struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Trigger     string   `yaml:"trigger"`
	Actions     []string `yaml:"actions"`
	Owner       string   `yaml:"owner"`
	LastRunAt   string   `yaml:"last_run_at"`
}

type checklistRecord struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Owner    string `yaml:"owner"`
	DueDate  string `yaml:"due_date"`
	Category string `yaml:"category"`
	Status   string `yaml:"status"`
}

type templateRecord struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Fields      []fieldRecord `yaml:"fields"`
	Body        string        `yaml:"body"`
}

type fieldRecord struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder"`
	Type        string `yaml:"type"`
}

// Load は path の初期データを読み込みます。path が空の場合は同梱のデータを使用します。
func Load(path string, today civil.Date) (*Data, error) {
	if path == "" {
		return Parse(assets.DefaultSeed, today)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read file %s: %w", path, err)
	}
	return Parse(b, today)
}

// Parse は YAML を解釈し、相対日付を today 基準で解決します。
func Parse(b []byte, today civil.Date) (*Data, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("seed: parse yaml: %w", err)
	}

	r := resolver{today: today}
	data := &Data{
		State: state.State{
			Employees:     make([]employee.Employee, 0, len(f.Employees)),
			LeaveRequests: make([]leave.Request, 0, len(f.LeaveRequests)),
			Checklist:     make([]checklist.Item, 0, len(f.Checklist)),
			Workflows:     make([]workflow.Workflow, 0, len(f.Workflows)),
		},
		Templates: make([]document.Template, 0, len(f.Templates)),
	}

	ids := newIDSet()
	for i, rec := range f.Employees {
		e, err := r.employee(rec)
		if err != nil {
			return nil, fmt.Errorf("employees[%d]: %w", i, err)
		}
		if err := ids.add("employee", e.ID); err != nil {
			return nil, err
		}
		data.State.Employees = append(data.State.Employees, e)
	}
	for i, rec := range f.LeaveRequests {
		req, err := r.leave(rec)
		if err != nil {
			return nil, fmt.Errorf("leave_requests[%d]: %w", i, err)
		}
		if err := ids.add("leave", req.ID); err != nil {
			return nil, err
		}
		data.State.LeaveRequests = append(data.State.LeaveRequests, req)
	}
	for i, rec := range f.Checklist {
		item, err := r.checklist(rec)
		if err != nil {
			return nil, fmt.Errorf("checklist[%d]: %w", i, err)
		}
		if err := ids.add("checklist", item.ID); err != nil {
			return nil, err
		}
		data.State.Checklist = append(data.State.Checklist, item)
	}
	for i, rec := range f.Workflows {
		wf, err := r.workflow(rec)
		if err != nil {
			return nil, fmt.Errorf("workflows[%d]: %w", i, err)
		}
		if err := ids.add("workflow", wf.ID); err != nil {
			return nil, err
		}
		data.State.Workflows = append(data.State.Workflows, wf)
	}
	for i, rec := range f.Templates {
		t, err := buildTemplate(rec)
		if err != nil {
			return nil, fmt.Errorf("templates[%d]: %w", i, err)
		}
		if err := ids.add("template", t.ID); err != nil {
			return nil, err
		}
		data.Templates = append(data.Templates, t)
	}

	return data, nil
}

var relativeDate = regexp.MustCompile(`^([+-]?\d+)d$`)

// ResolveDate は "2021-03-15" 形式の絶対日付か "+5d" / "-12d" 形式の相対日付を解決します。
func ResolveDate(raw string, today civil.Date) (civil.Date, error) {
	if raw == "today" {
		return today, nil
	}
	if m := relativeDate.FindStringSubmatch(raw); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return civil.Date{}, fmt.Errorf("%q: %w", raw, ErrInvalidDate)
		}
		return today.AddDays(n), nil
	}
	d, err := civil.ParseDate(raw)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%q: %w", raw, ErrInvalidDate)
	}
	return d, nil
}

type resolver struct {
	today civil.Date
}

func (r resolver) date(field, raw string) (civil.Date, error) {
	d, err := ResolveDate(raw, r.today)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

func (r resolver) employee(rec employeeRecord) (employee.Employee, error) {
	if rec.ID == "" || rec.Name == "" {
		return employee.Employee{}, fmt.Errorf("id and name are required: %w", ErrInvalidRecord)
	}
	status := employee.Status(rec.Status)
	if !employee.IsValidStatus(status) {
		return employee.Employee{}, fmt.Errorf("status %q: %w", rec.Status, ErrInvalidRecord)
	}
	start, err := r.date("start_date", rec.StartDate)
	if err != nil {
		return employee.Employee{}, err
	}
	return employee.Employee{
		ID:              rec.ID,
		Name:            rec.Name,
		Department:      rec.Department,
		Role:            rec.Role,
		Status:          status,
		StartDate:       start,
		Location:        rec.Location,
		Manager:         rec.Manager,
		Email:           rec.Email,
		Phone:           rec.Phone,
		Tags:            append([]string(nil), rec.Tags...),
		LastReviewScore: rec.LastReviewScore,
	}, nil
}

func (r resolver) leave(rec leaveRecord) (leave.Request, error) {
	if rec.ID == "" || rec.EmployeeID == "" {
		return leave.Request{}, fmt.Errorf("id and employee_id are required: %w", ErrInvalidRecord)
	}
	typ := leave.Type(rec.Type)
	if !leave.IsValidType(typ) {
		return leave.Request{}, fmt.Errorf("type %q: %w", rec.Type, ErrInvalidRecord)
	}
	status := leave.Status(rec.Status)
	if !leave.IsValidStatus(status) {
		return leave.Request{}, fmt.Errorf("status %q: %w", rec.Status, ErrInvalidRecord)
	}
	start, err := r.date("start_date", rec.StartDate)
	if err != nil {
		return leave.Request{}, err
	}
	end, err := r.date("end_date", rec.EndDate)
	if err != nil {
		return leave.Request{}, err
	}
	created, err := r.date("created_at", rec.CreatedAt)
	if err != nil {
		return leave.Request{}, err
	}
	return leave.Request{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Type:       typ,
		StartDate:  start,
		EndDate:    end,
		Notes:      rec.Notes,
		Status:     status,
		Approver:   rec.Approver,
		CreatedAt:  created,
	}, nil
}

func (r resolver) checklist(rec checklistRecord) (checklist.Item, error) {
	if rec.ID == "" || rec.Title == "" {
		return checklist.Item{}, fmt.Errorf("id and title are required: %w", ErrInvalidRecord)
	}
	category := checklist.Category(rec.Category)
	if !checklist.IsValidCategory(category) {
		return checklist.Item{}, fmt.Errorf("category %q: %w", rec.Category, ErrInvalidRecord)
	}
	status := checklist.Status(rec.Status)
	if !checklist.IsValidStatus(status) {
		return checklist.Item{}, fmt.Errorf("status %q: %w", rec.Status, ErrInvalidRecord)
	}
	due, err := r.date("due_date", rec.DueDate)
	if err != nil {
		return checklist.Item{}, err
	}
	return checklist.Item{
		ID:       rec.ID,
		Title:    rec.Title,
		Owner:    rec.Owner,
		DueDate:  due,
		Category: category,
		Status:   status,
	}, nil
}

func (r resolver) workflow(rec workflowRecord) (workflow.Workflow, error) {
	if rec.ID == "" || rec.Name == "" {
		return workflow.Workflow{}, fmt.Errorf("id and name are required: %w", ErrInvalidRecord)
	}
	trigger := workflow.Trigger(rec.Trigger)
	if !workflow.IsValidTrigger(trigger) {
		return workflow.Workflow{}, fmt.Errorf("trigger %q: %w", rec.Trigger, ErrInvalidRecord)
	}
	var actions workflow.ActionSet
	for _, raw := range rec.Actions {
		a := workflow.Action(raw)
		if !workflow.IsValidAction(a) {
			return workflow.Workflow{}, fmt.Errorf("action %q: %w", raw, ErrInvalidRecord)
		}
		actions = actions.Add(a)
	}
	// 未実行のワークフローは last_run_at を省略する
	var lastRun civil.Date
	if rec.LastRunAt != "" {
		d, err := r.date("last_run_at", rec.LastRunAt)
		if err != nil {
			return workflow.Workflow{}, err
		}
		lastRun = d
	}
	return workflow.Workflow{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Trigger:     trigger,
		Actions:     actions,
		Owner:       rec.Owner,
		LastRunAt:   lastRun,
	}, nil
}

func buildTemplate(rec templateRecord) (document.Template, error) {
	if rec.ID == "" || rec.Name == "" {
		return document.Template{}, fmt.Errorf("id and name are required: %w", ErrInvalidRecord)
	}
	fields := make([]document.Field, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		if f.ID == "" {
			return document.Template{}, fmt.Errorf("field id is required: %w", ErrInvalidRecord)
		}
		typ := document.FieldType(f.Type)
		if !document.IsValidFieldType(typ) {
			return document.Template{}, fmt.Errorf("field %s type %q: %w", f.ID, f.Type, ErrInvalidRecord)
		}
		fields = append(fields, document.Field{
			ID:          f.ID,
			Label:       f.Label,
			Placeholder: f.Placeholder,
			Type:        typ,
		})
	}
	return document.Template{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Fields:      fields,
		Body:        rec.Body,
	}, nil
}

type idSet map[string]struct{}

func newIDSet() idSet {
	return idSet{}
}

func (s idSet) add(kind, id string) error {
	key := kind + "/" + id
	if _, ok := s[key]; ok {
		return fmt.Errorf("%s %s is duplicated: %w", kind, id, ErrInvalidRecord)
	}
	s[key] = struct{}{}
	return nil
}

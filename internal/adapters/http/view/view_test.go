package view

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"

	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/dashboard"
	"github.com/ogurasousui/hr-desk/internal/core/document"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
	"github.com/ogurasousui/hr-desk/internal/core/state"
	"github.com/ogurasousui/hr-desk/internal/core/workflow"
)

func TestCarry(t *testing.T) {
	t.Parallel()

	q := url.Values{
		"q":            {"lina"},
		"template":     {"offer"},
		"field.name":   {"Sara"},
		"leave_status": {"Pending"},
		"fieldless":    {"kept"},
		"workflow_q":   {"a", "b"},
	}

	got := Carry(q, "template", "field.", "q")
	want := []Param{
		{Name: "fieldless", Value: "kept"},
		{Name: "leave_status", Value: "Pending"},
		{Name: "workflow_q", Value: "a"},
		{Name: "workflow_q", Value: "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected params (-want +got):\n%s", diff)
	}

	if got := Carry(nil); len(got) != 0 {
		t.Fatalf("expected no params for nil query, got %v", got)
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		got  string
		want string
	}{
		{LeaveStatusLabel(leave.StatusApproved), "معتمد"},
		{LeaveFilterLabel(string(leave.StatusApproved)), "تمت الموافقة"},
		{LeaveFilterLabel(leave.FilterAll), "الكل"},
		{LeaveStatusLabel("Unknown"), "Unknown"},
		{CategoryLabel(checklist.CategoryEngagement), "التفاعل الوظيفي"},
		{ChecklistStatusLabel(checklist.StatusBlocked), "متعثر"},
		{ChecklistProgressNote(checklist.StatusCompleted), "✓ منجز"},
		{ChecklistProgressNote(checklist.StatusBlocked), "⚠ متعثر"},
		{ChecklistProgressNote(checklist.StatusInProgress), "قيد المتابعة"},
		{FilterOptionLabel("all"), "الكل"},
		{FilterOptionLabel("Finance"), "Finance"},
		{FormatDate(civil.Date{}), ""},
		{FormatDate(civil.Date{Year: 2024, Month: 3, Day: 5}), "2024-03-05"},
		{FormatScore(0), "—"},
		{FormatScore(4.26), "4.3"},
	}
	for i, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("case %d: got %q want %q", i, tc.got, tc.want)
		}
	}
}

func samplePage(t *testing.T) Page {
	t.Helper()

	s := state.State{
		Employees: []employee.Employee{
			{ID: "emp-1", Name: "Lina", Department: "HR", Status: employee.StatusActive, LastReviewScore: 4.5, StartDate: civil.Date{Year: 2021, Month: 3, Day: 15}},
		},
		LeaveRequests: []leave.Request{
			{ID: "leave-1", EmployeeID: "emp-1", Status: leave.StatusPending, Type: leave.TypeVacation, StartDate: civil.Date{Year: 2024, Month: 3, Day: 12}, EndDate: civil.Date{Year: 2024, Month: 3, Day: 14}},
		},
		Checklist: []checklist.Item{
			{ID: "check-1", Title: "Laptop", Owner: "IT", Category: checklist.CategoryOnboarding, Status: checklist.StatusBlocked},
		},
		Workflows: []workflow.Workflow{
			{ID: "wf-1", Name: "Welcome", Trigger: workflow.TriggerNewHire, Actions: workflow.ActionSet{workflow.ActionSendEmail}, Owner: "HR"},
		},
	}

	tmpl := document.Template{
		ID:     "offer",
		Name:   "Offer",
		Fields: []document.Field{{ID: "name", Label: "الاسم"}, {ID: "notes", Label: "ملاحظات", Type: document.FieldTextarea}},
		Body:   "Hello {{name}}",
	}
	values := map[string]string{"name": "<Sara>"}

	return Page{
		Overview: dashboard.Summarize(s),
		Directory: Directory{
			Result: &employee.ListEmployeesResult{Employees: s.Employees, Departments: employee.Departments(s.Employees), Total: 1},
		},
		Leave: LeaveBoard{
			Result:    &leave.ListLeaveRequestsResult{Requests: leave.Decorate(s.LeaveRequests, s.Employees), Pending: 1, Total: 1},
			Employees: s.Employees,
		},
		Checklist: checklist.Group(s.Checklist),
		Workflows: Workflows{Items: s.Workflows},
		Documents: Documents{
			Templates:   []document.Template{tmpl},
			Rendered:    &document.Rendered{Template: tmpl, Values: values, Text: document.Render(tmpl, values)},
			DownloadURL: "/documents/offer.txt?field.name=%3CSara%3E",
		},
		Query:             url.Values{"q": {"li"}},
		CopiedResetMillis: 2000,
	}
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, samplePage(t)); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	body := buf.String()

	for _, want := range []string{
		`<html lang="ar" dir="rtl">`,
		"Lina",
		"قيد الانتظار",
		"الانضمام",
		"لا توجد مهام حالياً",
		"⚠ متعثر",
		"Welcome",
		"Hello &lt;Sara&gt;",
		`name="return" value="q=li"`,
		"2000",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected rendered page to contain %q", want)
		}
	}
	if strings.Contains(body, "Hello <Sara>") {
		t.Error("document preview must be escaped")
	}
}

func TestRenderer_RenderEmptyPage(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, Page{}); err != nil {
		t.Fatalf("Render returned error for empty page: %v", err)
	}
}

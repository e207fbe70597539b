package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ogurasousui/hr-desk/internal/core/employee"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type fakeRepo struct {
	requests []Request
}

func (r *fakeRepo) Create(_ context.Context, req *Request) (*Request, error) {
	r.requests = append([]Request{*req}, r.requests...)
	out := *req
	return &out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status Status) (*Request, error) {
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = status
			out := r.requests[i]
			return &out, nil
		}
	}
	return nil, ErrRequestNotFound
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*Request, error) {
	for _, req := range r.requests {
		if req.ID == id {
			out := req
			return &out, nil
		}
	}
	return nil, ErrRequestNotFound
}

func (r *fakeRepo) List(context.Context) ([]Request, error) {
	return append([]Request(nil), r.requests...), nil
}

type fakeEmployees struct {
	employees []employee.Employee
	err       error
}

func (f fakeEmployees) List(context.Context) ([]employee.Employee, error) {
	return f.employees, f.err
}

func newTestService(repo *fakeRepo, employees EmployeeLister) *Service {
	clock := stubClock{now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	return NewService(repo, employees, clock, nil).WithIDGenerator(func() string { return "leave-new" })
}

func TestService_CreateLeaveRequest_DefaultsApproverToManager(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := newTestService(repo, fakeEmployees{employees: staff()})

	created, err := svc.CreateLeaveRequest(context.Background(), CreateLeaveRequestInput{
		EmployeeID: "emp-1",
		Type:       TypeVacation,
		StartDate:  day(12),
		EndDate:    day(14),
		Notes:      " سفر عائلي ",
	})
	if err != nil {
		t.Fatalf("CreateLeaveRequest returned error: %v", err)
	}

	if created.ID != "leave-new" || created.Status != StatusPending {
		t.Fatalf("unexpected defaults: %+v", created)
	}
	if created.Approver != "سلمان" {
		t.Fatalf("expected approver to default to manager, got %q", created.Approver)
	}
	if created.Notes != "سفر عائلي" {
		t.Fatalf("expected trimmed notes, got %q", created.Notes)
	}
	if created.CreatedAt != day(10) {
		t.Fatalf("expected creation date from clock, got %v", created.CreatedAt)
	}
	if len(repo.requests) != 1 {
		t.Fatalf("expected request to be stored")
	}
}

func TestService_CreateLeaveRequest_ExplicitApproverAndUnknownEmployee(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeRepo{}, fakeEmployees{employees: staff()})

	created, err := svc.CreateLeaveRequest(context.Background(), CreateLeaveRequestInput{
		EmployeeID: "emp-2",
		Type:       TypeSick,
		StartDate:  day(10),
		EndDate:    day(10),
		Approver:   "مدير الموارد",
	})
	if err != nil {
		t.Fatalf("CreateLeaveRequest returned error: %v", err)
	}
	if created.Approver != "مدير الموارد" {
		t.Fatalf("explicit approver must win, got %q", created.Approver)
	}

	created, err = svc.CreateLeaveRequest(context.Background(), CreateLeaveRequestInput{
		EmployeeID: "ghost",
		Type:       TypeRemote,
		StartDate:  day(10),
		EndDate:    day(11),
	})
	if err != nil {
		t.Fatalf("unknown employee must be accepted, got %v", err)
	}
	if created.Approver != "" {
		t.Fatalf("expected empty approver for unknown employee, got %q", created.Approver)
	}
}

func TestService_CreateLeaveRequest_Validation(t *testing.T) {
	t.Parallel()

	bad := Status("Maybe")
	cases := []struct {
		name string
		in   CreateLeaveRequestInput
		want error
	}{
		{"employee", CreateLeaveRequestInput{Type: TypeVacation, StartDate: day(1), EndDate: day(2)}, ErrInvalidEmployeeID},
		{"type", CreateLeaveRequestInput{EmployeeID: "emp-1", Type: "Holiday", StartDate: day(1), EndDate: day(2)}, ErrInvalidType},
		{"missing date", CreateLeaveRequestInput{EmployeeID: "emp-1", Type: TypeVacation, StartDate: day(5)}, ErrInvalidDateRange},
		{"status", CreateLeaveRequestInput{EmployeeID: "emp-1", Type: TypeVacation, StartDate: day(1), EndDate: day(2), Status: &bad}, ErrInvalidStatus},
	}

	for _, tc := range cases {
		if _, err := newTestService(&fakeRepo{}, nil).CreateLeaveRequest(context.Background(), tc.in); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestService_CreateLeaveRequest_KeepsDatesAsEntered(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	created, err := newTestService(repo, nil).CreateLeaveRequest(context.Background(), CreateLeaveRequestInput{
		EmployeeID: "emp-1",
		Type:       TypeVacation,
		StartDate:  day(12),
		EndDate:    day(11),
	})
	if err != nil {
		t.Fatalf("CreateLeaveRequest returned error: %v", err)
	}
	if created.StartDate != day(12) || created.EndDate != day(11) || len(repo.requests) != 1 {
		t.Fatalf("expected request to be stored as entered, got %+v", created)
	}
}

func TestService_CreateLeaveRequest_EmployeeListError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	repo := &fakeRepo{}
	_, err := newTestService(repo, fakeEmployees{err: boom}).CreateLeaveRequest(context.Background(), CreateLeaveRequestInput{
		EmployeeID: "emp-1",
		Type:       TypeVacation,
		StartDate:  day(1),
		EndDate:    day(2),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected employee list error, got %v", err)
	}
	if len(repo.requests) != 0 {
		t.Fatal("request must not be stored on failure")
	}
}

func TestService_UpdateLeaveStatus(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{requests: []Request{{ID: "r1", Status: StatusPending}}}
	svc := newTestService(repo, nil)

	updated, err := svc.UpdateLeaveStatus(context.Background(), UpdateLeaveStatusInput{ID: "r1", Status: StatusApproved})
	if err != nil {
		t.Fatalf("UpdateLeaveStatus returned error: %v", err)
	}
	if updated.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", updated.Status)
	}

	// 却下済みの申請も再度承認できる
	if _, err := svc.UpdateLeaveStatus(context.Background(), UpdateLeaveStatusInput{ID: "r1", Status: StatusRejected}); err != nil {
		t.Fatalf("UpdateLeaveStatus returned error: %v", err)
	}
	if _, err := svc.UpdateLeaveStatus(context.Background(), UpdateLeaveStatusInput{ID: "r1", Status: StatusApproved}); err != nil {
		t.Fatalf("UpdateLeaveStatus returned error: %v", err)
	}

	if _, err := svc.UpdateLeaveStatus(context.Background(), UpdateLeaveStatusInput{ID: "missing", Status: StatusApproved}); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
	if _, err := svc.UpdateLeaveStatus(context.Background(), UpdateLeaveStatusInput{ID: "r1", Status: "Maybe"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestService_ListLeaveRequests(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{requests: []Request{
		{ID: "r1", EmployeeID: "emp-1", Status: StatusPending, CreatedAt: day(1)},
		{ID: "r2", EmployeeID: "emp-2", Status: StatusApproved, CreatedAt: day(4)},
		{ID: "r3", EmployeeID: "ghost", Status: StatusPending, CreatedAt: day(2)},
	}}
	svc := newTestService(repo, fakeEmployees{employees: staff()})

	res, err := svc.ListLeaveRequests(context.Background(), ListLeaveRequestsInput{Status: string(StatusPending)})
	if err != nil {
		t.Fatalf("ListLeaveRequests returned error: %v", err)
	}
	if res.Total != 3 || res.Pending != 2 {
		t.Fatalf("unexpected counts: total=%d pending=%d", res.Total, res.Pending)
	}
	if len(res.Requests) != 2 || res.Requests[0].ID != "r3" || res.Requests[0].EmployeeName != UnknownEmployeeName {
		t.Fatalf("unexpected requests: %+v", res.Requests)
	}

	if _, err := svc.ListLeaveRequests(context.Background(), ListLeaveRequestsInput{Status: "Maybe"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type fakeRepo struct {
	employees []Employee
	createErr error
}

func (r *fakeRepo) Create(_ context.Context, e *Employee) (*Employee, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.employees = append([]Employee{e.Clone()}, r.employees...)
	out := e.Clone()
	return &out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status Status) (*Employee, error) {
	for i := range r.employees {
		if r.employees[i].ID == id {
			r.employees[i].Status = status
			out := r.employees[i].Clone()
			return &out, nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*Employee, error) {
	e, ok := FindByID(r.employees, id)
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return &e, nil
}

func (r *fakeRepo) List(context.Context) ([]Employee, error) {
	return append([]Employee(nil), r.employees...), nil
}

func newTestService(repo *fakeRepo) *Service {
	clock := stubClock{now: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	return NewService(repo, clock, nil).WithIDGenerator(func() string { return "emp-new" })
}

func TestService_CreateEmployee_Defaults(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{employees: []Employee{{ID: "emp-1", Name: "ليلى"}}}
	svc := newTestService(repo)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Name:       "  سارة العتيبي ",
		Department: "الموارد البشرية",
		Role:       "أخصائية توظيف",
		Email:      "Sara@Example.COM",
		Tags:       []string{" جديد ", "", "توظيف"},
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	want := &Employee{
		ID:              "emp-new",
		Name:            "سارة العتيبي",
		Department:      "الموارد البشرية",
		Role:            "أخصائية توظيف",
		Status:          StatusOnboarding,
		StartDate:       civil.Date{Year: 2024, Month: 3, Day: 10},
		Email:           "sara@example.com",
		Tags:            []string{"جديد", "توظيف"},
		LastReviewScore: DefaultReviewScore,
	}
	if diff := cmp.Diff(want, created); diff != "" {
		t.Fatalf("unexpected employee (-want +got):\n%s", diff)
	}
	if repo.employees[0].ID != "emp-new" {
		t.Fatalf("expected new employee at the head, got %s", repo.employees[0].ID)
	}
}

func TestService_CreateEmployee_ExplicitValues(t *testing.T) {
	t.Parallel()

	status := StatusActive
	start := civil.Date{Year: 2023, Month: 1, Day: 15}
	score := 4.8

	created, err := newTestService(&fakeRepo{}).CreateEmployee(context.Background(), CreateEmployeeInput{
		Name:            "خالد",
		Department:      "التقنية",
		Role:            "مهندس",
		Status:          &status,
		StartDate:       &start,
		LastReviewScore: &score,
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}
	if created.Status != StatusActive || created.StartDate != start || created.LastReviewScore != 4.8 {
		t.Fatalf("explicit values not kept: %+v", created)
	}
}

func TestService_CreateEmployee_Validation(t *testing.T) {
	t.Parallel()

	bad := Status("Retired")
	base := CreateEmployeeInput{Name: "n", Department: "d", Role: "r"}

	cases := []struct {
		name   string
		mutate func(*CreateEmployeeInput)
		want   error
	}{
		{"name", func(in *CreateEmployeeInput) { in.Name = " " }, ErrInvalidName},
		{"department", func(in *CreateEmployeeInput) { in.Department = "" }, ErrInvalidDepartment},
		{"role", func(in *CreateEmployeeInput) { in.Role = "" }, ErrInvalidRole},
		{"email", func(in *CreateEmployeeInput) { in.Email = "not-an-email" }, ErrInvalidEmail},
		{"status", func(in *CreateEmployeeInput) { in.Status = &bad }, ErrInvalidStatus},
		{"start date", func(in *CreateEmployeeInput) { in.StartDate = &civil.Date{Year: 2024, Month: 2, Day: 30} }, ErrInvalidStartDate},
	}

	for _, tc := range cases {
		in := base
		tc.mutate(&in)
		repo := &fakeRepo{}
		if _, err := newTestService(repo).CreateEmployee(context.Background(), in); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if len(repo.employees) != 0 {
			t.Errorf("%s: repository must not be touched", tc.name)
		}
	}
}

func TestService_CreateEmployee_RepoError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := newTestService(&fakeRepo{createErr: boom}).CreateEmployee(context.Background(), CreateEmployeeInput{Name: "n", Department: "d", Role: "r"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestService_UpdateEmployeeStatus(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{employees: []Employee{
		{ID: "emp-1", Status: StatusActive},
		{ID: "emp-2", Status: StatusOnboarding},
	}}
	svc := newTestService(repo)

	updated, err := svc.UpdateEmployeeStatus(context.Background(), UpdateEmployeeStatusInput{ID: "emp-2", Status: StatusLeave})
	if err != nil {
		t.Fatalf("UpdateEmployeeStatus returned error: %v", err)
	}
	if updated.Status != StatusLeave || repo.employees[1].Status != StatusLeave {
		t.Fatalf("status not updated: %+v", repo.employees)
	}
	if repo.employees[0].Status != StatusActive {
		t.Fatalf("other employees must be untouched: %+v", repo.employees[0])
	}

	if _, err := svc.UpdateEmployeeStatus(context.Background(), UpdateEmployeeStatusInput{ID: "missing", Status: StatusLeave}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if _, err := svc.UpdateEmployeeStatus(context.Background(), UpdateEmployeeStatusInput{ID: "emp-1", Status: "Gone"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateEmployeeStatus(context.Background(), UpdateEmployeeStatusInput{Status: StatusLeave}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestService_GetEmployee(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeRepo{employees: []Employee{{ID: "emp-1", Name: "ليلى"}}})

	got, err := svc.GetEmployee(context.Background(), GetEmployeeInput{ID: "emp-1"})
	if err != nil || got.Name != "ليلى" {
		t.Fatalf("unexpected result: %+v, %v", got, err)
	}
	if _, err := svc.GetEmployee(context.Background(), GetEmployeeInput{}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestService_ListEmployees(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeRepo{employees: directory()})

	res, err := svc.ListEmployees(context.Background(), ListEmployeesInput{Filter: DirectoryFilter{Department: "التقنية"}})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if res.Total != 4 || len(res.Employees) != 2 {
		t.Fatalf("unexpected result: total=%d matched=%d", res.Total, len(res.Employees))
	}
	if diff := cmp.Diff([]string{AllOption, "التقنية", "المالية", "التسويق"}, res.Departments); diff != "" {
		t.Fatalf("unexpected departments (-want +got):\n%s", diff)
	}

	if _, err := svc.ListEmployees(context.Background(), ListEmployeesInput{Filter: DirectoryFilter{Status: "Gone"}}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

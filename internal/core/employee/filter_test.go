package employee

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func directory() []Employee {
	return []Employee{
		{ID: "1", Name: "Layla Hassan", Department: "التقنية", Role: "Backend Engineer", Status: StatusActive},
		{ID: "2", Name: "عمر الحربي", Department: "المالية", Role: "محاسب", Status: StatusLeave},
		{ID: "3", Name: "ريم", Department: "التقنية", Role: "مصممة", Status: StatusOnboarding},
		{ID: "4", Name: "فهد", Department: "التسويق", Role: "مدير حملات", Status: StatusActive},
	}
}

func ids(employees []Employee) []string {
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.ID)
	}
	return out
}

func TestDirectoryFilter_Apply(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		filter DirectoryFilter
		want   []string
	}{
		{"empty filter keeps order", DirectoryFilter{}, []string{"1", "2", "3", "4"}},
		{"all options", DirectoryFilter{Department: AllOption, Status: AllOption}, []string{"1", "2", "3", "4"}},
		{"case insensitive name", DirectoryFilter{Search: "layla"}, []string{"1"}},
		{"role search", DirectoryFilter{Search: "ENGINEER"}, []string{"1"}},
		{"department search", DirectoryFilter{Search: "المالية"}, []string{"2"}},
		{"department", DirectoryFilter{Department: "التقنية"}, []string{"1", "3"}},
		{"status", DirectoryFilter{Status: string(StatusActive)}, []string{"1", "4"}},
		{"combined", DirectoryFilter{Department: "التقنية", Status: string(StatusActive)}, []string{"1"}},
		{"no match", DirectoryFilter{Search: "غير موجود"}, []string{}},
	}

	for _, tc := range cases {
		got := ids(tc.filter.Apply(directory()))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestDepartments(t *testing.T) {
	t.Parallel()

	got := Departments(directory())
	want := []string{AllOption, "التقنية", "المالية", "التسويق"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected departments (-want +got):\n%s", diff)
	}

	if got := Departments(nil); len(got) != 1 || got[0] != AllOption {
		t.Fatalf("expected only the all option, got %v", got)
	}
}

func TestCountByStatus(t *testing.T) {
	t.Parallel()

	if n := CountByStatus(directory(), StatusActive); n != 2 {
		t.Fatalf("expected 2 active employees, got %d", n)
	}
	if n := CountByStatus(directory(), StatusOffboarding); n != 0 {
		t.Fatalf("expected 0 offboarding employees, got %d", n)
	}
}

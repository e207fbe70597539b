package leave

import (
	"slices"

	"github.com/ogurasousui/hr-desk/internal/core/employee"
)

const (
	// UnknownEmployeeName は参照先の社員が存在しない場合の表示名です。
	UnknownEmployeeName = "موظف غير معروف"
	// MissingValue は参照先がない場合の部署・上長の表示値です。
	MissingValue = "—"
)

// FilterAll は状態で絞り込まないことを表します。
const FilterAll = "all"

// Decorated は社員情報を結合した表示用の休暇申請です。
type Decorated struct {
	Request
	EmployeeName string
	Department   string
	Manager      string
}

// Decorate は申請に社員名・部署・上長を付与し、作成日の新しい順に並べます。
// 同じ作成日の申請は元の並びを保ちます。
func Decorate(requests []Request, employees []employee.Employee) []Decorated {
	decorated := make([]Decorated, 0, len(requests))
	for _, r := range requests {
		d := Decorated{
			Request:      r,
			EmployeeName: UnknownEmployeeName,
			Department:   MissingValue,
			Manager:      MissingValue,
		}
		if emp, ok := employee.FindByID(employees, r.EmployeeID); ok {
			d.EmployeeName = emp.Name
			d.Department = emp.Department
			d.Manager = emp.Manager
		}
		decorated = append(decorated, d)
	}

	slices.SortStableFunc(decorated, func(a, b Decorated) int {
		switch {
		case a.CreatedAt.After(b.CreatedAt):
			return -1
		case a.CreatedAt.Before(b.CreatedAt):
			return 1
		default:
			return 0
		}
	})
	return decorated
}

// FilterByStatus は状態で絞り込みます。filter が空または FilterAll の場合はそのまま返します。
func FilterByStatus(requests []Decorated, filter string) []Decorated {
	if filter == "" || filter == FilterAll {
		return requests
	}
	matched := make([]Decorated, 0, len(requests))
	for _, r := range requests {
		if string(r.Status) == filter {
			matched = append(matched, r)
		}
	}
	return matched
}

package state

import (
	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
	"github.com/ogurasousui/hr-desk/internal/core/workflow"
)

// Reduce はアクションを適用した新しい State を返します。引数の State は変更しません。
// 対象 ID が存在しない更新は何もしません。
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case AddEmployee:
		s.Employees = prepend(s.Employees, act.Employee.Clone())
	case SetEmployeeStatus:
		s.Employees = replaceWhere(s.Employees, func(e employee.Employee) (employee.Employee, bool) {
			if e.ID != act.ID {
				return e, false
			}
			e = e.Clone()
			e.Status = act.Status
			return e, true
		})
	case AddLeaveRequest:
		s.LeaveRequests = prepend(s.LeaveRequests, act.Request)
	case SetLeaveStatus:
		s.LeaveRequests = replaceWhere(s.LeaveRequests, func(r leave.Request) (leave.Request, bool) {
			if r.ID != act.ID {
				return r, false
			}
			r.Status = act.Status
			return r, true
		})
	case AddChecklistItem:
		s.Checklist = prepend(s.Checklist, act.Item)
	case SetChecklistStatus:
		s.Checklist = replaceWhere(s.Checklist, func(it checklist.Item) (checklist.Item, bool) {
			if it.ID != act.ID {
				return it, false
			}
			it.Status = act.Status
			return it, true
		})
	case AddWorkflow:
		s.Workflows = prepend(s.Workflows, act.Workflow.Clone())
	case nil:
	default:
		panic("state: unknown action type")
	}
	return s
}

func prepend[T any](items []T, head T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, head)
	return append(out, items...)
}

// replaceWhere は fn が true を返した要素のみを置き換えた新しいスライスを返します。
// 一致する要素がなければ元のスライスをそのまま返します。
func replaceWhere[T any](items []T, fn func(T) (T, bool)) []T {
	var out []T
	for i, item := range items {
		next, changed := fn(item)
		if !changed {
			continue
		}
		if out == nil {
			out = append([]T(nil), items...)
		}
		out[i] = next
	}
	if out == nil {
		return items
	}
	return out
}

// HasEmployee は ID の社員が存在するかを返します。
func (s State) HasEmployee(id string) bool {
	_, ok := employee.FindByID(s.Employees, id)
	return ok
}

// FindLeaveRequest は ID の休暇申請を返します。
func (s State) FindLeaveRequest(id string) (leave.Request, bool) {
	for _, r := range s.LeaveRequests {
		if r.ID == id {
			return r, true
		}
	}
	return leave.Request{}, false
}

// FindChecklistItem は ID のタスクを返します。
func (s State) FindChecklistItem(id string) (checklist.Item, bool) {
	for _, it := range s.Checklist {
		if it.ID == id {
			return it, true
		}
	}
	return checklist.Item{}, false
}

// FindWorkflow は ID の自動化定義を返します。
func (s State) FindWorkflow(id string) (workflow.Workflow, bool) {
	for _, w := range s.Workflows {
		if w.ID == id {
			return w, true
		}
	}
	return workflow.Workflow{}, false
}

package state

import (
	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
	"github.com/ogurasousui/hr-desk/internal/core/workflow"
)

// Action は状態を変更する操作です。定義済みの型のみが実装します。
type Action interface {
	isAction()
}

// AddEmployee は社員を先頭に追加します。
type AddEmployee struct{ Employee employee.Employee }

// SetEmployeeStatus は社員のステータスを置き換えます。
type SetEmployeeStatus struct {
	ID     string
	Status employee.Status
}

// AddLeaveRequest は休暇申請を先頭に追加します。
type AddLeaveRequest struct{ Request leave.Request }

// SetLeaveStatus は休暇申請の承認状態を置き換えます。
type SetLeaveStatus struct {
	ID     string
	Status leave.Status
}

// AddChecklistItem はタスクを先頭に追加します。
type AddChecklistItem struct{ Item checklist.Item }

// SetChecklistStatus はタスクの進捗状態を置き換えます。
type SetChecklistStatus struct {
	ID     string
	Status checklist.Status
}

// AddWorkflow は自動化定義を先頭に追加します。
type AddWorkflow struct{ Workflow workflow.Workflow }

func (AddEmployee) isAction()        {}
func (SetEmployeeStatus) isAction()  {}
func (AddLeaveRequest) isAction()    {}
func (SetLeaveStatus) isAction()     {}
func (AddChecklistItem) isAction()   {}
func (SetChecklistStatus) isAction() {}
func (AddWorkflow) isAction()        {}

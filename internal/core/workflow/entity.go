package workflow

import "cloud.google.com/go/civil"

// Trigger は自動化の起点となるイベントです。記録のみで実行はされません。
type Trigger string

const (
	TriggerNewHire          Trigger = "New hire created"
	TriggerLeaveSubmitted   Trigger = "Leave request submitted"
	TriggerProbationEnding  Trigger = "Probation period ending"
	TriggerContractExpiring Trigger = "Contract expiring"
	TriggerPolicyAckOverdue Trigger = "Policy acknowledgement overdue"
)

// Triggers はフォームでの表示順です。
var Triggers = []Trigger{
	TriggerNewHire,
	TriggerLeaveSubmitted,
	TriggerProbationEnding,
	TriggerContractExpiring,
	TriggerPolicyAckOverdue,
}

// Action は自動化で行う処理です。
type Action string

const (
	ActionSendEmail        Action = "Send email to employee"
	ActionCreateITTicket   Action = "Create IT ticket"
	ActionNotifyManager    Action = "Notify manager"
	ActionGenerateDocument Action = "Generate document"
	ActionScheduleMeeting  Action = "Schedule meeting"
	ActionAssignChecklist  Action = "Assign checklist"
)

// Actions はフォームでの表示順です。
var Actions = []Action{
	ActionSendEmail,
	ActionCreateITTicket,
	ActionNotifyManager,
	ActionGenerateDocument,
	ActionScheduleMeeting,
	ActionAssignChecklist,
}

// Workflow は自動化の定義です。
type Workflow struct {
	ID          string
	Name        string
	Description string
	Trigger     Trigger
	Actions     ActionSet
	Owner       string
	LastRunAt   civil.Date
}

// HasRun は一度でも実行記録があるかを返します。
func (w Workflow) HasRun() bool {
	return w.LastRunAt != (civil.Date{})
}

// Clone はアクション集合を含めた複製を返します。
func (w Workflow) Clone() Workflow {
	w.Actions = w.Actions.Clone()
	return w
}

// IsValidTrigger は定義済みのトリガーか判定します。
func IsValidTrigger(t Trigger) bool {
	switch t {
	case TriggerNewHire, TriggerLeaveSubmitted, TriggerProbationEnding, TriggerContractExpiring, TriggerPolicyAckOverdue:
		return true
	default:
		return false
	}
}

// IsValidAction は定義済みのアクションか判定します。
func IsValidAction(a Action) bool {
	switch a {
	case ActionSendEmail, ActionCreateITTicket, ActionNotifyManager, ActionGenerateDocument, ActionScheduleMeeting, ActionAssignChecklist:
		return true
	default:
		return false
	}
}

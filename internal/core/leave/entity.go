package leave

import "cloud.google.com/go/civil"

// Type は休暇種別です。
type Type string

const (
	TypeVacation Type = "Vacation"
	TypeSick     Type = "Sick"
	TypeUnpaid   Type = "Unpaid"
	TypeRemote   Type = "Remote"
	TypeParental Type = "Parental"
)

// Types はフォームでの表示順の休暇種別です。
var Types = []Type{TypeVacation, TypeSick, TypeUnpaid, TypeRemote, TypeParental}

// Status は休暇申請の承認状態です。
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Statuses は絞り込みボタンの表示順です。
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

// Request は休暇申請エンティティです。EmployeeID は社員 ID への緩い参照で、存在は保証されません。
type Request struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  civil.Date
	EndDate    civil.Date
	Notes      string
	Status     Status
	Approver   string
	CreatedAt  civil.Date
}

// IsValidType は定義済みの休暇種別か判定します。
func IsValidType(t Type) bool {
	switch t {
	case TypeVacation, TypeSick, TypeUnpaid, TypeRemote, TypeParental:
		return true
	default:
		return false
	}
}

// IsValidStatus は定義済みの承認状態か判定します。
func IsValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// CountByStatus は指定状態の申請数を返します。
func CountByStatus(requests []Request, status Status) int {
	n := 0
	for _, r := range requests {
		if r.Status == status {
			n++
		}
	}
	return n
}

package employee

import "cloud.google.com/go/civil"

// Status は社員の在籍状態を表します。
type Status string

const (
	StatusActive      Status = "Active"
	StatusOnboarding  Status = "Onboarding"
	StatusLeave       Status = "Leave"
	StatusOffboarding Status = "Offboarding"
)

// Statuses は画面表示順の全ステータスです。
var Statuses = []Status{StatusActive, StatusOnboarding, StatusLeave, StatusOffboarding}

// DefaultReviewScore は評価スコア未指定で登録された社員に設定される値です。
const DefaultReviewScore = 4.2

// Employee は社員エンティティです。
type Employee struct {
	ID              string
	Name            string
	Department      string
	Role            string
	Status          Status
	StartDate       civil.Date
	Location        string
	Manager         string
	Email           string
	Phone           string
	Tags            []string
	LastReviewScore float64
}

// Clone はタグを含めた複製を返します。
func (e Employee) Clone() Employee {
	if e.Tags != nil {
		e.Tags = append([]string(nil), e.Tags...)
	}
	return e
}

// IsValidStatus は定義済みのステータスか判定します。
func IsValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusOnboarding, StatusLeave, StatusOffboarding:
		return true
	default:
		return false
	}
}

// FindByID は ID に一致する社員を返します。見つからない場合は false です。
func FindByID(employees []Employee, id string) (Employee, bool) {
	for _, e := range employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

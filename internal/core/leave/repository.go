package leave

import (
	"context"

	"github.com/ogurasousui/hr-desk/internal/core/employee"
)

// Repository は休暇申請永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, request *Request) (*Request, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Request, error)
	FindByID(ctx context.Context, id string) (*Request, error)
	List(ctx context.Context) ([]Request, error)
}

// EmployeeLister は申請の表示用に社員一覧を取得します。
type EmployeeLister interface {
	List(ctx context.Context) ([]employee.Employee, error)
}

package memory

import (
	"context"
	"strings"

	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/state"
	memdb "github.com/ogurasousui/hr-desk/internal/platform/db/memory"
)

// EmployeeRepository はメモリ上の状態を利用した社員永続化の実装です。
type EmployeeRepository struct {
	store *memdb.Store
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(store *memdb.Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

// Create は社員を先頭に追加します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	if e == nil || strings.TrimSpace(e.ID) == "" {
		return nil, employee.ErrInvalidID
	}
	session := memdb.SessionFromContext(ctx, r.store)
	if session.State().HasEmployee(e.ID) {
		return nil, errDuplicateID("employee", e.ID)
	}
	if err := session.Apply(state.AddEmployee{Employee: *e}); err != nil {
		return nil, err
	}
	created := e.Clone()
	return &created, nil
}

// UpdateStatus は社員のステータスを変更します。
func (r *EmployeeRepository) UpdateStatus(ctx context.Context, id string, status employee.Status) (*employee.Employee, error) {
	session := memdb.SessionFromContext(ctx, r.store)
	if !session.State().HasEmployee(id) {
		return nil, employee.ErrEmployeeNotFound
	}
	if err := session.Apply(state.SetEmployeeStatus{ID: id, Status: status}); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	found, ok := employee.FindByID(memdb.SessionFromContext(ctx, r.store).State().Employees, id)
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	clone := found.Clone()
	return &clone, nil
}

// List は社員を登録の新しい順に返します。
func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	employees := memdb.SessionFromContext(ctx, r.store).State().Employees
	out := make([]employee.Employee, len(employees))
	for i, e := range employees {
		out[i] = e.Clone()
	}
	return out, nil
}

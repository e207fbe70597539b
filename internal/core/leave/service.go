package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は休暇申請に関するユースケースをまとめます。
type Service struct {
	repo      Repository
	employees EmployeeLister
	clock     Clock
	tx        TransactionManager
	newID     func() string
}

// UseCase は休暇申請ユースケースの公開インターフェースです。
type UseCase interface {
	CreateLeaveRequest(ctx context.Context, in CreateLeaveRequestInput) (*Request, error)
	UpdateLeaveStatus(ctx context.Context, in UpdateLeaveStatusInput) (*Request, error)
	ListLeaveRequests(ctx context.Context, in ListLeaveRequestsInput) (*ListLeaveRequestsResult, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, employees EmployeeLister, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, employees: employees, clock: clock, tx: tx, newID: uuid.NewString}
}

// WithIDGenerator は ID 採番関数を差し替えます。
func (s *Service) WithIDGenerator(gen func() string) *Service {
	if gen != nil {
		s.newID = gen
	}
	return s
}

// CreateLeaveRequestInput は休暇申請登録時の入力です。
type CreateLeaveRequestInput struct {
	EmployeeID string
	Type       Type
	StartDate  civil.Date
	EndDate    civil.Date
	Notes      string
	Status     *Status
	Approver   string
}

// UpdateLeaveStatusInput は承認・却下時の入力です。
type UpdateLeaveStatusInput struct {
	ID     string
	Status Status
}

// ListLeaveRequestsInput は一覧取得時の入力です。Status は FilterAll または Status の値です。
type ListLeaveRequestsInput struct {
	Status string
}

// ListLeaveRequestsResult は一覧取得結果を表します。
type ListLeaveRequestsResult struct {
	Requests []Decorated
	Pending  int
	Total    int
}

// CreateLeaveRequest は休暇申請を一覧の先頭に登録します。
// 承認者が未指定の場合は申請者の上長を設定します。
func (s *Service) CreateLeaveRequest(ctx context.Context, in CreateLeaveRequestInput) (*Request, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}
	if !IsValidType(in.Type) {
		return nil, ErrInvalidType
	}
	if !in.StartDate.IsValid() || !in.EndDate.IsValid() {
		return nil, ErrInvalidDateRange
	}

	status := StatusPending
	if in.Status != nil {
		if !IsValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status = *in.Status
	}

	var created *Request
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		approver := strings.TrimSpace(in.Approver)
		if approver == "" {
			manager, err := s.managerOf(txCtx, employeeID)
			if err != nil {
				return err
			}
			approver = manager
		}

		req := &Request{
			ID:         s.newID(),
			EmployeeID: employeeID,
			Type:       in.Type,
			StartDate:  in.StartDate,
			EndDate:    in.EndDate,
			Notes:      strings.TrimSpace(in.Notes),
			Status:     status,
			Approver:   approver,
			CreatedAt:  civil.DateOf(s.clock.Now()),
		}

		result, err := s.repo.Create(txCtx, req)
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateLeaveStatus は申請の承認状態のみを変更します。
func (s *Service) UpdateLeaveStatus(ctx context.Context, in UpdateLeaveStatusInput) (*Request, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if !IsValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	var updated *Request
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.FindByID(txCtx, id); err != nil {
			return err
		}
		result, err := s.repo.UpdateStatus(txCtx, id, in.Status)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// ListLeaveRequests は社員情報を結合した申請一覧を返します。
func (s *Service) ListLeaveRequests(ctx context.Context, in ListLeaveRequestsInput) (*ListLeaveRequestsResult, error) {
	filter := strings.TrimSpace(in.Status)
	if filter != "" && filter != FilterAll && !IsValidStatus(Status(filter)) {
		return nil, ErrInvalidStatus
	}

	var (
		requests  []Request
		employees []employee.Employee
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		if requests, err = s.repo.List(txCtx); err != nil {
			return err
		}
		if s.employees != nil {
			if employees, err = s.employees.List(txCtx); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListLeaveRequestsResult{
		Requests: FilterByStatus(Decorate(requests, employees), filter),
		Pending:  CountByStatus(requests, StatusPending),
		Total:    len(requests),
	}, nil
}

func (s *Service) managerOf(ctx context.Context, employeeID string) (string, error) {
	if s.employees == nil {
		return "", nil
	}
	employees, err := s.employees.List(ctx)
	if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return "", err
	}
	if emp, ok := employee.FindByID(employees, employeeID); ok {
		return emp.Manager, nil
	}
	return "", nil
}

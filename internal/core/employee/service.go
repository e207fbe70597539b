package employee

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// IDGenerator は新しいエンティティ ID を払い出します。
type IDGenerator func() string

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

// Service は社員に関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
	newID IDGenerator
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	UpdateEmployeeStatus(ctx context.Context, in UpdateEmployeeStatusInput) (*Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx, newID: uuid.NewString}
}

// WithIDGenerator は ID 採番関数を差し替えます。
func (s *Service) WithIDGenerator(gen IDGenerator) *Service {
	if gen != nil {
		s.newID = gen
	}
	return s
}

// CreateEmployeeInput は社員登録時の入力です。
type CreateEmployeeInput struct {
	Name            string
	Department      string
	Role            string
	Status          *Status
	StartDate       *civil.Date
	Location        string
	Manager         string
	Email           string
	Phone           string
	Tags            []string
	LastReviewScore *float64
}

// UpdateEmployeeStatusInput はステータス変更時の入力です。
type UpdateEmployeeStatusInput struct {
	ID     string
	Status Status
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	ID string
}

// ListEmployeesInput は名簿取得時の入力です。
type ListEmployeesInput struct {
	Filter DirectoryFilter
}

// ListEmployeesResult は名簿取得結果を表します。
type ListEmployeesResult struct {
	Employees   []Employee
	Departments []string
	Total       int
}

// CreateEmployee は新しい社員を名簿の先頭に登録します。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	department := strings.TrimSpace(in.Department)
	if department == "" {
		return nil, ErrInvalidDepartment
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		return nil, ErrInvalidRole
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	status := StatusOnboarding
	if in.Status != nil {
		if !IsValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status = *in.Status
	}

	startDate := civil.DateOf(s.clock.Now())
	if in.StartDate != nil {
		if !in.StartDate.IsValid() {
			return nil, ErrInvalidStartDate
		}
		startDate = *in.StartDate
	}

	score := DefaultReviewScore
	if in.LastReviewScore != nil {
		score = *in.LastReviewScore
	}

	emp := &Employee{
		ID:              s.newID(),
		Name:            name,
		Department:      department,
		Role:            role,
		Status:          status,
		StartDate:       startDate,
		Location:        strings.TrimSpace(in.Location),
		Manager:         strings.TrimSpace(in.Manager),
		Email:           email,
		Phone:           strings.TrimSpace(in.Phone),
		Tags:            normalizeTags(in.Tags),
		LastReviewScore: score,
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		result, err := s.repo.Create(txCtx, emp)
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

// UpdateEmployeeStatus は社員のステータスのみを変更します。
func (s *Service) UpdateEmployeeStatus(ctx context.Context, in UpdateEmployeeStatusInput) (*Employee, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if !IsValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	var updated *Employee
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

// GetEmployee は社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListEmployees は検索条件に一致する社員と部署の選択肢を返します。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error) {
	if !isAll(in.Filter.Status) && !IsValidStatus(Status(in.Filter.Status)) {
		return nil, ErrInvalidStatus
	}

	var all []Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		employees, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		all = employees
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListEmployeesResult{
		Employees:   in.Filter.Apply(all),
		Departments: Departments(all),
		Total:       len(all),
	}, nil
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(addr.Address), nil
}

func normalizeTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

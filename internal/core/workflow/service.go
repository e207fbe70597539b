package workflow

import (
	"context"
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

// Service は自動化定義に関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
	newID func() string
}

// UseCase は自動化ユースケースの公開インターフェースです。
type UseCase interface {
	CreateWorkflow(ctx context.Context, in CreateWorkflowInput) (*Workflow, error)
	ListWorkflows(ctx context.Context, in ListWorkflowsInput) ([]Workflow, error)
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
func (s *Service) WithIDGenerator(gen func() string) *Service {
	if gen != nil {
		s.newID = gen
	}
	return s
}

// CreateWorkflowInput は自動化登録時の入力です。
type CreateWorkflowInput struct {
	Name        string
	Description string
	Trigger     Trigger
	Actions     []Action
	Owner       string
}

// ListWorkflowsInput は一覧取得時の入力です。
type ListWorkflowsInput struct {
	Search string
}

// CreateWorkflow は自動化定義を先頭に登録します。最終実行日には登録日が入ります。
func (s *Service) CreateWorkflow(ctx context.Context, in CreateWorkflowInput) (*Workflow, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if !IsValidTrigger(in.Trigger) {
		return nil, ErrInvalidTrigger
	}
	var actions ActionSet
	for _, a := range in.Actions {
		if !IsValidAction(a) {
			return nil, ErrInvalidAction
		}
		actions = actions.Add(a)
	}

	wf := &Workflow{
		ID:          s.newID(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Trigger:     in.Trigger,
		Actions:     actions,
		Owner:       strings.TrimSpace(in.Owner),
		LastRunAt:   civil.DateOf(s.clock.Now()),
	}

	var created *Workflow
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		result, err := s.repo.Create(txCtx, wf)
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

// ListWorkflows は検索語に一致する自動化定義を返します。
func (s *Service) ListWorkflows(ctx context.Context, in ListWorkflowsInput) ([]Workflow, error) {
	var all []Workflow
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		all = found
		return nil
	}); err != nil {
		return nil, err
	}
	return Search(all, strings.TrimSpace(in.Search)), nil
}

package checklist

import (
	"context"
	"fmt"
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

// Service はチェックリストに関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
	newID func() string
}

// UseCase はチェックリストユースケースの公開インターフェースです。
type UseCase interface {
	CreateItem(ctx context.Context, in CreateItemInput) (*Item, error)
	UpdateItemStatus(ctx context.Context, in UpdateItemStatusInput) (*Item, error)
	GetBoard(ctx context.Context) (Board, error)
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

// CreateItemInput はタスク登録時の入力です。DueDate 未指定時は当日になります。
type CreateItemInput struct {
	Title    string
	Owner    string
	DueDate  *civil.Date
	Category *Category
	Status   *Status
}

// UpdateItemStatusInput は進捗変更時の入力です。
type UpdateItemStatusInput struct {
	ID     string
	Status Status
}

// CreateItem はタスクを先頭に登録します。
func (s *Service) CreateItem(ctx context.Context, in CreateItemInput) (*Item, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}
	owner := strings.TrimSpace(in.Owner)
	if owner == "" {
		return nil, ErrInvalidOwner
	}

	due := civil.DateOf(s.clock.Now())
	if in.DueDate != nil {
		if !in.DueDate.IsValid() {
			return nil, ErrInvalidDueDate
		}
		due = *in.DueDate
	}

	category := CategoryOnboarding
	if in.Category != nil {
		if !IsValidCategory(*in.Category) {
			return nil, ErrInvalidCategory
		}
		category = *in.Category
	}

	status := StatusNotStarted
	if in.Status != nil {
		if !IsValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status = *in.Status
	}

	item := &Item{
		ID:       s.newID(),
		Title:    title,
		Owner:    owner,
		DueDate:  due,
		Category: category,
		Status:   status,
	}

	var created *Item
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		result, err := s.repo.Create(txCtx, item)
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

// UpdateItemStatus はタスクの進捗状態のみを変更します。
func (s *Service) UpdateItemStatus(ctx context.Context, in UpdateItemStatusInput) (*Item, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if !IsValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	var updated *Item
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

// GetBoard は分類ごとに振り分けたボードを返します。
func (s *Service) GetBoard(ctx context.Context) (Board, error) {
	var items []Item
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		items = found
		return nil
	}); err != nil {
		return nil, err
	}
	return Group(items), nil
}

package memory

import (
	"context"
	"strings"

	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/state"
	memdb "github.com/ogurasousui/hr-desk/internal/platform/db/memory"
)

// ChecklistRepository はメモリ上の状態を利用したタスク永続化の実装です。
type ChecklistRepository struct {
	store *memdb.Store
}

// NewChecklistRepository は ChecklistRepository を生成します。
func NewChecklistRepository(store *memdb.Store) *ChecklistRepository {
	return &ChecklistRepository{store: store}
}

// Create はタスクを先頭に追加します。
func (r *ChecklistRepository) Create(ctx context.Context, item *checklist.Item) (*checklist.Item, error) {
	if item == nil || strings.TrimSpace(item.ID) == "" {
		return nil, checklist.ErrInvalidID
	}
	session := memdb.SessionFromContext(ctx, r.store)
	if _, ok := session.State().FindChecklistItem(item.ID); ok {
		return nil, errDuplicateID("checklist item", item.ID)
	}
	if err := session.Apply(state.AddChecklistItem{Item: *item}); err != nil {
		return nil, err
	}
	created := *item
	return &created, nil
}

// UpdateStatus はタスクの進捗状態を変更します。
func (r *ChecklistRepository) UpdateStatus(ctx context.Context, id string, status checklist.Status) (*checklist.Item, error) {
	session := memdb.SessionFromContext(ctx, r.store)
	if _, ok := session.State().FindChecklistItem(id); !ok {
		return nil, checklist.ErrItemNotFound
	}
	if err := session.Apply(state.SetChecklistStatus{ID: id, Status: status}); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// FindByID は ID でタスクを取得します。
func (r *ChecklistRepository) FindByID(ctx context.Context, id string) (*checklist.Item, error) {
	found, ok := memdb.SessionFromContext(ctx, r.store).State().FindChecklistItem(id)
	if !ok {
		return nil, checklist.ErrItemNotFound
	}
	return &found, nil
}

// List はタスクを登録の新しい順に返します。
func (r *ChecklistRepository) List(ctx context.Context) ([]checklist.Item, error) {
	return append([]checklist.Item(nil), memdb.SessionFromContext(ctx, r.store).State().Checklist...), nil
}

package memory

import (
	"context"
	"strings"

	"github.com/ogurasousui/hr-desk/internal/core/state"
	"github.com/ogurasousui/hr-desk/internal/core/workflow"
	memdb "github.com/ogurasousui/hr-desk/internal/platform/db/memory"
)

// WorkflowRepository はメモリ上の状態を利用した自動化定義永続化の実装です。
type WorkflowRepository struct {
	store *memdb.Store
}

// NewWorkflowRepository は WorkflowRepository を生成します。
func NewWorkflowRepository(store *memdb.Store) *WorkflowRepository {
	return &WorkflowRepository{store: store}
}

// Create は自動化定義を先頭に追加します。
func (r *WorkflowRepository) Create(ctx context.Context, wf *workflow.Workflow) (*workflow.Workflow, error) {
	if wf == nil || strings.TrimSpace(wf.ID) == "" {
		return nil, workflow.ErrInvalidID
	}
	session := memdb.SessionFromContext(ctx, r.store)
	if _, ok := session.State().FindWorkflow(wf.ID); ok {
		return nil, errDuplicateID("workflow", wf.ID)
	}
	if err := session.Apply(state.AddWorkflow{Workflow: *wf}); err != nil {
		return nil, err
	}
	created := wf.Clone()
	return &created, nil
}

// List は自動化定義を登録の新しい順に返します。
func (r *WorkflowRepository) List(ctx context.Context) ([]workflow.Workflow, error) {
	workflows := memdb.SessionFromContext(ctx, r.store).State().Workflows
	out := make([]workflow.Workflow, len(workflows))
	for i, w := range workflows {
		out[i] = w.Clone()
	}
	return out, nil
}

package memory

import (
	"context"
	"strings"

	"github.com/ogurasousui/hr-desk/internal/core/leave"
	"github.com/ogurasousui/hr-desk/internal/core/state"
	memdb "github.com/ogurasousui/hr-desk/internal/platform/db/memory"
)

// LeaveRepository はメモリ上の状態を利用した休暇申請永続化の実装です。
type LeaveRepository struct {
	store *memdb.Store
}

// NewLeaveRepository は LeaveRepository を生成します。
func NewLeaveRepository(store *memdb.Store) *LeaveRepository {
	return &LeaveRepository{store: store}
}

// Create は休暇申請を先頭に追加します。
func (r *LeaveRepository) Create(ctx context.Context, req *leave.Request) (*leave.Request, error) {
	if req == nil || strings.TrimSpace(req.ID) == "" {
		return nil, leave.ErrInvalidID
	}
	session := memdb.SessionFromContext(ctx, r.store)
	if _, ok := session.State().FindLeaveRequest(req.ID); ok {
		return nil, errDuplicateID("leave request", req.ID)
	}
	if err := session.Apply(state.AddLeaveRequest{Request: *req}); err != nil {
		return nil, err
	}
	created := *req
	return &created, nil
}

// UpdateStatus は休暇申請の承認状態を変更します。
func (r *LeaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) (*leave.Request, error) {
	session := memdb.SessionFromContext(ctx, r.store)
	if _, ok := session.State().FindLeaveRequest(id); !ok {
		return nil, leave.ErrRequestNotFound
	}
	if err := session.Apply(state.SetLeaveStatus{ID: id, Status: status}); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// FindByID は ID で休暇申請を取得します。
func (r *LeaveRepository) FindByID(ctx context.Context, id string) (*leave.Request, error) {
	found, ok := memdb.SessionFromContext(ctx, r.store).State().FindLeaveRequest(id)
	if !ok {
		return nil, leave.ErrRequestNotFound
	}
	return &found, nil
}

// List は休暇申請を登録の新しい順に返します。
func (r *LeaveRepository) List(ctx context.Context) ([]leave.Request, error) {
	return append([]leave.Request(nil), memdb.SessionFromContext(ctx, r.store).State().LeaveRequests...), nil
}

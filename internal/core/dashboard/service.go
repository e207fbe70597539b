// Package dashboard はダッシュボードの集計・タイムラインを算出します。
// ここにある関数はすべて入力のみに依存する純粋な関数です。
package dashboard

import (
	"context"

	"github.com/ogurasousui/hr-desk/internal/core/state"
)

// Source は現在の状態のスナップショットを提供します。
type Source interface {
	Snapshot(ctx context.Context) (state.State, error)
}

// Overview はダッシュボード上部とタイムラインの表示内容です。
type Overview struct {
	Metrics    Metrics
	Cards      []Card
	FocusAreas []FocusArea
	Feed       []Entry
}

// UseCase はダッシュボードユースケースの公開インターフェースです。
type UseCase interface {
	GetOverview(ctx context.Context) (*Overview, error)
}

// Service は Source から Overview を組み立てます。
type Service struct {
	source Source
}

// NewService は Service を生成します。
func NewService(source Source) *Service {
	return &Service{source: source}
}

// GetOverview は現在の状態から集計値・カード・要対応事項・タイムラインを算出します。
func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(snap), nil
}

// Summarize は状態から Overview を算出します。
func Summarize(s state.State) *Overview {
	metrics := ComputeMetrics(s.Employees, s.LeaveRequests, s.Checklist)
	return &Overview{
		Metrics:    metrics,
		Cards:      Cards(metrics),
		FocusAreas: FocusAreas(s.Employees, s.LeaveRequests, s.Checklist),
		Feed:       BuildFeed(s.Employees, s.LeaveRequests, s.Checklist, s.Workflows),
	}
}

package memory

import (
	"context"
	"sync"

	"github.com/ogurasousui/hr-desk/internal/core/state"
)

// Store はプロセス内で状態を保持します。更新は常にコレクション単位の置き換えです。
type Store struct {
	mu    sync.RWMutex
	state state.State
}

// NewStore は初期状態を持つ Store を生成します。
func NewStore(initial state.State) *Store {
	return &Store{state: initial.Clone()}
}

// State は現在の状態を返します。返り値のスライスは共有されるため変更してはいけません。
func (s *Store) State() state.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Apply はアクションを即時に適用します。
func (s *Store) Apply(action state.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Reduce(s.state, action)
	return nil
}

// Snapshot は現在の状態を返します。トランザクション内ではその時点の作業中の状態を返します。
func (s *Store) Snapshot(ctx context.Context) (state.State, error) {
	return SessionFromContext(ctx, s).State(), nil
}

// Reset は状態を丸ごと置き換えます。
func (s *Store) Reset(next state.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = next.Clone()
}

// Session は状態の読み取りとアクションの適用を行うインターフェースです。
// Store とトランザクションの双方が実装します。
type Session interface {
	State() state.State
	Apply(action state.Action) error
}

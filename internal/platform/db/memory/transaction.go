package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/ogurasousui/hr-desk/internal/core/state"
)

// ErrReadOnly は読み取り専用トランザクションで更新しようとした場合に返却されます。
var ErrReadOnly = errors.New("memory: read-only transaction")

// transactionContextKey はコンテキストにトランザクションを格納するためのキーです。
type transactionContextKey struct{}

var txContextKey = transactionContextKey{}

// tx は Store のコピー上でアクションを積み上げる作業領域です。
type tx struct {
	staged   state.State
	readOnly bool
	dirty    bool
}

func (t *tx) State() state.State {
	return t.staged
}

func (t *tx) Apply(action state.Action) error {
	if t.readOnly {
		return ErrReadOnly
	}
	t.staged = state.Reduce(t.staged, action)
	t.dirty = true
	return nil
}

// TransactionManager は Store に対するトランザクション制御を提供します。
// 読み書きトランザクションは Store の書き込みロックを保持し、成功時に状態全体を差し替えます。
type TransactionManager struct {
	store *Store
}

// NewTransactionManager は TransactionManager を生成します。
func NewTransactionManager(store *Store) *TransactionManager {
	if store == nil {
		return nil
	}
	return &TransactionManager{store: store}
}

// WithinReadOnly は読み取り専用トランザクションを開始し、fn を実行します。
func (m *TransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	return m.within(ctx, true, fn)
}

// WithinReadWrite は読み書きトランザクションを開始し、fn を実行します。
func (m *TransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	return m.within(ctx, false, fn)
}

func (m *TransactionManager) within(ctx context.Context, readOnly bool, fn func(context.Context) error) error {
	if fn == nil {
		return fmt.Errorf("memory: transaction function is required")
	}

	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	if readOnly {
		m.store.mu.RLock()
		defer m.store.mu.RUnlock()
	} else {
		m.store.mu.Lock()
		defer m.store.mu.Unlock()
	}

	t := &tx{staged: m.store.state, readOnly: readOnly}
	if err := fn(contextWithTx(ctx, t)); err != nil {
		return err
	}

	if t.dirty {
		m.store.state = t.staged
	}
	return nil
}

func contextWithTx(ctx context.Context, t *tx) context.Context {
	return context.WithValue(ctx, txContextKey, t)
}

func txFromContext(ctx context.Context) (*tx, bool) {
	if ctx == nil {
		return nil, false
	}
	t, ok := ctx.Value(txContextKey).(*tx)
	return t, ok
}

// SessionFromContext はコンテキスト内にトランザクションが存在すればそれを返し、存在しなければ fallback を返します。
func SessionFromContext(ctx context.Context, fallback *Store) Session {
	if t, ok := txFromContext(ctx); ok {
		return t
	}
	return fallback
}

package checklist

import "context"

// Repository はチェックリスト永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, item *Item) (*Item, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Item, error)
	FindByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context) ([]Item, error)
}

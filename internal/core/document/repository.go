package document

import "context"

// Repository はテンプレートの参照元です。テンプレートは読み取り専用です。
type Repository interface {
	List(ctx context.Context) ([]Template, error)
	FindByID(ctx context.Context, id string) (*Template, error)
}

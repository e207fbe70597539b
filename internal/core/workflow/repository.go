package workflow

import "context"

// Repository は自動化定義の永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, workflow *Workflow) (*Workflow, error)
	List(ctx context.Context) ([]Workflow, error)
}

package document

import (
	"context"
	"strings"
)

// Service は文書生成のユースケースをまとめます。
type Service struct {
	repo Repository
}

// UseCase は文書生成ユースケースの公開インターフェースです。
type UseCase interface {
	ListTemplates(ctx context.Context) ([]Template, error)
	RenderDraft(ctx context.Context, draft Draft) (*Rendered, error)
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Rendered は差し込み結果です。
type Rendered struct {
	Template Template
	Values   map[string]string
	Text     string
	Missing  []Field
}

// Complete はすべての項目に値が入力済みかを返します。
func (r Rendered) Complete() bool {
	return len(r.Missing) == 0
}

// ListTemplates はテンプレート一覧を返します。
func (s *Service) ListTemplates(ctx context.Context) ([]Template, error) {
	return s.repo.List(ctx)
}

// RenderDraft は下書きのテンプレートに値を差し込みます。
// TemplateID が空の場合は先頭のテンプレートを使用します。
func (s *Service) RenderDraft(ctx context.Context, draft Draft) (*Rendered, error) {
	tmpl, err := s.resolve(ctx, strings.TrimSpace(draft.TemplateID))
	if err != nil {
		return nil, err
	}

	values := draft.Values
	if values == nil {
		values = map[string]string{}
	}

	return &Rendered{
		Template: *tmpl,
		Values:   values,
		Text:     Render(*tmpl, values),
		Missing:  Missing(*tmpl, values),
	}, nil
}

func (s *Service) resolve(ctx context.Context, id string) (*Template, error) {
	if id != "" {
		return s.repo.FindByID(ctx, id)
	}
	templates, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}
	first := templates[0]
	return &first, nil
}

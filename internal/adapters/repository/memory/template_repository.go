package memory

import (
	"context"
	"strings"

	"github.com/ogurasousui/hr-desk/internal/core/document"
)

// TemplateRepository はシードから読み込んだ文書テンプレートを提供します。テンプレートは変更されません。
type TemplateRepository struct {
	templates []document.Template
}

// NewTemplateRepository は TemplateRepository を生成します。
func NewTemplateRepository(templates []document.Template) *TemplateRepository {
	return &TemplateRepository{templates: cloneTemplates(templates)}
}

// List はテンプレートを定義順に返します。
func (r *TemplateRepository) List(_ context.Context) ([]document.Template, error) {
	return cloneTemplates(r.templates), nil
}

// FindByID は ID でテンプレートを取得します。
func (r *TemplateRepository) FindByID(_ context.Context, id string) (*document.Template, error) {
	if strings.TrimSpace(id) == "" {
		return nil, document.ErrInvalidTemplateID
	}
	for _, t := range r.templates {
		if t.ID == id {
			clone := t
			clone.Fields = append([]document.Field(nil), t.Fields...)
			return &clone, nil
		}
	}
	return nil, document.ErrTemplateNotFound
}

func cloneTemplates(in []document.Template) []document.Template {
	out := make([]document.Template, len(in))
	for i, t := range in {
		t.Fields = append([]document.Field(nil), t.Fields...)
		out[i] = t
	}
	return out
}

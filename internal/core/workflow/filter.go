package workflow

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search は名前または説明に検索語を含む自動化を返します。検索語が空なら全件です。
func Search(workflows []Workflow, query string) []Workflow {
	if query == "" {
		return workflows
	}
	lower := cases.Lower(language.Und)
	q := lower.String(query)

	matched := make([]Workflow, 0, len(workflows))
	for _, w := range workflows {
		if strings.Contains(lower.String(w.Name), q) || strings.Contains(lower.String(w.Description), q) {
			matched = append(matched, w)
		}
	}
	return matched
}

package employee

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllOption は部署・ステータス絞り込みで「すべて」を表す値です。
const AllOption = "all"

// DirectoryFilter は社員名簿の検索条件です。
type DirectoryFilter struct {
	Search     string
	Department string
	Status     string
}

// Apply は条件に一致する社員を元の順序のまま返します。
func (f DirectoryFilter) Apply(employees []Employee) []Employee {
	lower := cases.Lower(language.Und)
	search := lower.String(f.Search)

	matched := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if !f.matchesSearch(lower, search, e) {
			continue
		}
		if !isAll(f.Department) && e.Department != f.Department {
			continue
		}
		if !isAll(f.Status) && string(e.Status) != f.Status {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

func (f DirectoryFilter) matchesSearch(lower cases.Caser, search string, e Employee) bool {
	if search == "" {
		return true
	}
	return strings.Contains(lower.String(e.Name), search) ||
		strings.Contains(lower.String(e.Department), search) ||
		strings.Contains(lower.String(e.Role), search)
}

func isAll(v string) bool {
	return v == "" || v == AllOption
}

// Departments は部署の選択肢を出現順で重複なく返します。先頭は AllOption です。
func Departments(employees []Employee) []string {
	seen := make(map[string]struct{}, len(employees))
	options := []string{AllOption}
	for _, e := range employees {
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		options = append(options, e.Department)
	}
	return options
}

// CountByStatus は指定ステータスの社員数を返します。
func CountByStatus(employees []Employee, status Status) int {
	n := 0
	for _, e := range employees {
		if e.Status == status {
			n++
		}
	}
	return n
}

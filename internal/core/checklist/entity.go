package checklist

import "cloud.google.com/go/civil"

// Category はタスクの分類です。
type Category string

const (
	CategoryOnboarding  Category = "Onboarding"
	CategoryOffboarding Category = "Offboarding"
	CategoryCompliance  Category = "Compliance"
	CategoryEngagement  Category = "Engagement"
)

// Categories はボードの列順です。
var Categories = []Category{CategoryOnboarding, CategoryOffboarding, CategoryCompliance, CategoryEngagement}

// Status はタスクの進捗状態です。
type Status string

const (
	StatusNotStarted Status = "Not started"
	StatusInProgress Status = "In progress"
	StatusCompleted  Status = "Completed"
	StatusBlocked    Status = "Blocked"
)

// Statuses は選択肢の表示順です。
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted, StatusBlocked}

// Item はチェックリストのタスクです。
type Item struct {
	ID       string
	Title    string
	Owner    string
	DueDate  civil.Date
	Category Category
	Status   Status
}

// IsValidCategory は定義済みの分類か判定します。
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryOnboarding, CategoryOffboarding, CategoryCompliance, CategoryEngagement:
		return true
	default:
		return false
	}
}

// IsValidStatus は定義済みの状態か判定します。
func IsValidStatus(status Status) bool {
	switch status {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusBlocked:
		return true
	default:
		return false
	}
}

// CountOpen は完了していないタスク数を返します。
func CountOpen(items []Item) int {
	n := 0
	for _, it := range items {
		if it.Status != StatusCompleted {
			n++
		}
	}
	return n
}

// CountByStatus は指定状態のタスク数を返します。
func CountByStatus(items []Item, status Status) int {
	n := 0
	for _, it := range items {
		if it.Status == status {
			n++
		}
	}
	return n
}

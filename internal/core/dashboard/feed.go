package dashboard

import (
	"fmt"
	"slices"

	"cloud.google.com/go/civil"
	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
	"github.com/ogurasousui/hr-desk/internal/core/workflow"
)

// FeedLimit はタイムラインに表示する最大件数です。
const FeedLimit = 8

// Tone はタイムライン項目の重要度です。
type Tone string

const (
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneNeutral Tone = "neutral"
)

// Entry はタイムラインの一項目です。
type Entry struct {
	ID          string
	Date        civil.Date
	Title       string
	Description string
	Badge       string
	Tone        Tone
}

// BuildFeed は入社予定者・承認待ち休暇・未完了タスク・実行済み自動化を一つの
// タイムラインにまとめ、日付の新しい順に最大 FeedLimit 件返します。
// 同じ日付の項目は社員、休暇、タスク、自動化の順を保ちます。
func BuildFeed(employees []employee.Employee, requests []leave.Request, items []checklist.Item, workflows []workflow.Workflow) []Entry {
	entries := make([]Entry, 0, len(employees)+len(requests)+len(items)+len(workflows))

	for _, e := range employees {
		if e.Status != employee.StatusOnboarding {
			continue
		}
		entries = append(entries, Entry{
			ID:          "employee-" + e.ID,
			Date:        e.StartDate,
			Title:       "إنضمام " + e.Name,
			Description: fmt.Sprintf("سيبدأ %s في %s تحت إشراف %s.", e.Role, e.Department, e.Manager),
			Badge:       "موظف جديد",
			Tone:        ToneInfo,
		})
	}

	for _, r := range requests {
		if r.Status != leave.StatusPending {
			continue
		}
		name := r.EmployeeID
		if emp, ok := employee.FindByID(employees, r.EmployeeID); ok {
			name = emp.Name
		}
		entries = append(entries, Entry{
			ID:          "leave-" + r.ID,
			Date:        r.StartDate,
			Title:       "طلب إجازة: " + name,
			Description: fmt.Sprintf("%s من %s حتى %s.", r.Type, r.StartDate, r.EndDate),
			Badge:       "قرار مطلوب",
			Tone:        ToneWarning,
		})
	}

	for _, it := range items {
		if it.Status == checklist.StatusCompleted {
			continue
		}
		badge, tone := checklistBadge(it.Status)
		entries = append(entries, Entry{
			ID:          "check-" + it.ID,
			Date:        it.DueDate,
			Title:       it.Title,
			Description: fmt.Sprintf("المسؤول: %s · التصنيف: %s", it.Owner, it.Category),
			Badge:       badge,
			Tone:        tone,
		})
	}

	for _, w := range workflows {
		if !w.HasRun() {
			continue
		}
		entries = append(entries, Entry{
			ID:          "wf-" + w.ID,
			Date:        w.LastRunAt,
			Title:       w.Name,
			Description: fmt.Sprintf("آخر تنفيذ بواسطة %s. عدد الإجراءات: %d", w.Owner, len(w.Actions)),
			Badge:       "أتمتة",
			Tone:        ToneSuccess,
		})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case a.Date.After(b.Date):
			return -1
		case a.Date.Before(b.Date):
			return 1
		default:
			return 0
		}
	})

	if len(entries) > FeedLimit {
		entries = entries[:FeedLimit]
	}
	return entries
}

func checklistBadge(status checklist.Status) (string, Tone) {
	switch status {
	case checklist.StatusBlocked:
		return "متابعة عاجلة", ToneWarning
	case checklist.StatusInProgress:
		return "قيد التنفيذ", ToneNeutral
	case checklist.StatusNotStarted, checklist.StatusCompleted:
		return "لم يبدأ", ToneNeutral
	default:
		return "لم يبدأ", ToneNeutral
	}
}

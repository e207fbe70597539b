package view

import (
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
)

const (
	allLabel   = "الكل"
	emptyValue = "—"
)

var leaveStatusLabels = map[leave.Status]string{
	leave.StatusPending:  "قيد الانتظار",
	leave.StatusApproved: "معتمد",
	leave.StatusRejected: "مرفوض",
}

// 絞り込みボタンでは承認済みの表記が一覧と異なる
var leaveFilterLabels = map[string]string{
	leave.FilterAll:              allLabel,
	string(leave.StatusPending):  "قيد الانتظار",
	string(leave.StatusApproved): "تمت الموافقة",
	string(leave.StatusRejected): "مرفوض",
}

var categoryLabels = map[checklist.Category]string{
	checklist.CategoryOnboarding:  "الانضمام",
	checklist.CategoryOffboarding: "إنهاء الخدمة",
	checklist.CategoryCompliance:  "الامتثال",
	checklist.CategoryEngagement:  "التفاعل الوظيفي",
}

var checklistStatusLabels = map[checklist.Status]string{
	checklist.StatusNotStarted: "لم يبدأ",
	checklist.StatusInProgress: "قيد التنفيذ",
	checklist.StatusCompleted:  "منجز",
	checklist.StatusBlocked:    "متعثر",
}

// LeaveStatusLabel は休暇申請の状態の表示名です。
func LeaveStatusLabel(s leave.Status) string {
	return labelOr(leaveStatusLabels, s, string(s))
}

// LeaveFilterLabel は休暇一覧の絞り込みボタンの表示名です。
func LeaveFilterLabel(filter string) string {
	return labelOr(leaveFilterLabels, filter, filter)
}

// CategoryLabel はチェックリスト分類の表示名です。
func CategoryLabel(c checklist.Category) string {
	return labelOr(categoryLabels, c, string(c))
}

// ChecklistStatusLabel はタスク状態の表示名です。
func ChecklistStatusLabel(s checklist.Status) string {
	return labelOr(checklistStatusLabels, s, string(s))
}

// ChecklistProgressNote はタスクカード下部の進捗表記です。
func ChecklistProgressNote(s checklist.Status) string {
	switch s {
	case checklist.StatusCompleted:
		return "✓ منجز"
	case checklist.StatusBlocked:
		return "⚠ متعثر"
	default:
		return "قيد المتابعة"
	}
}

// FilterOptionLabel は "all" を「الكل」に置き換えます。
func FilterOptionLabel(v string) string {
	if v == "" || v == leave.FilterAll {
		return allLabel
	}
	return v
}

// FormatDate は日付を YYYY-MM-DD で返します。未設定の場合は空文字です。
func FormatDate(d civil.Date) string {
	if d == (civil.Date{}) {
		return ""
	}
	return d.String()
}

// FormatScore は評価スコアを小数第一位で返します。0 は未評価として「—」です。
func FormatScore(v float64) string {
	if v == 0 {
		return emptyValue
	}
	return fmt.Sprintf("%.1f", v)
}

func labelOr[K comparable](labels map[K]string, key K, fallback string) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return fallback
}

package dashboard

import (
	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
)

// FocusArea はヘッダーに表示する要対応事項です。
type FocusArea struct {
	Title       string
	Description string
	Count       int
	Accent      string
}

// FocusAreas は承認待ち休暇・入社予定者・停滞タスクの件数を返します。
func FocusAreas(employees []employee.Employee, requests []leave.Request, items []checklist.Item) []FocusArea {
	return []FocusArea{
		{
			Title:       "قرارات عاجلة",
			Description: "طلبات إجازة تنتظر اعتمادك النهائي قبل نهاية اليوم.",
			Count:       leave.CountByStatus(requests, leave.StatusPending),
			Accent:      "rose",
		},
		{
			Title:       "انضمامات قريبة",
			Description: "تأكد من جاهزية أجهزة وبيانات الزملاء قبل تاريخ البدء.",
			Count:       employee.CountByStatus(employees, employee.StatusOnboarding),
			Accent:      "sky",
		},
		{
			Title:       "مهام تحتاج متابعة",
			Description: "بعض المهام متعثرة وتحتاج إلى إعادة جدولة أو مساعدة.",
			Count:       checklist.CountByStatus(items, checklist.StatusBlocked),
			Accent:      "amber",
		},
	}
}

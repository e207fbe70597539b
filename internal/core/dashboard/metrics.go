package dashboard

import (
	"fmt"
	"math"

	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
)

// StatusShare は在籍状態ごとの人数と構成比です。
type StatusShare struct {
	Status  employee.Status
	Count   int
	Percent int
}

// Metrics はダッシュボード上部の集計値です。
type Metrics struct {
	TotalEmployees     int
	ActiveEmployees    int
	Onboarding         int
	AverageReviewScore float64
	OpenChecklistItems int
	PendingLeave       int
	StatusDistribution []StatusShare
}

// ComputeMetrics は各コレクションから集計値を算出します。
// 平均評価は在籍中の社員のみを対象とし、分母は最低 1 です。
func ComputeMetrics(employees []employee.Employee, requests []leave.Request, items []checklist.Item) Metrics {
	m := Metrics{
		TotalEmployees:     len(employees),
		ActiveEmployees:    employee.CountByStatus(employees, employee.StatusActive),
		Onboarding:         employee.CountByStatus(employees, employee.StatusOnboarding),
		OpenChecklistItems: checklist.CountOpen(items),
		PendingLeave:       leave.CountByStatus(requests, leave.StatusPending),
	}

	var sum float64
	for _, e := range employees {
		if e.Status == employee.StatusActive {
			sum += e.LastReviewScore
		}
	}
	m.AverageReviewScore = sum / float64(max(m.ActiveEmployees, 1))

	total := max(len(employees), 1)
	m.StatusDistribution = make([]StatusShare, 0, len(employee.Statuses))
	for _, status := range employee.Statuses {
		count := employee.CountByStatus(employees, status)
		m.StatusDistribution = append(m.StatusDistribution, StatusShare{
			Status:  status,
			Count:   count,
			Percent: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}
	return m
}

// ActionRequired は対応待ちの休暇申請と未完了タスクの合計です。
func (m Metrics) ActionRequired() int {
	return m.PendingLeave + m.OpenChecklistItems
}

// Card はダッシュボード上部のカードです。
type Card struct {
	Title    string
	Value    string
	Subtitle string
	Accent   string
}

// Cards は集計値から表示用カードを組み立てます。
func Cards(m Metrics) []Card {
	average := "—"
	if m.AverageReviewScore != 0 {
		average = fmt.Sprintf("%.1f", m.AverageReviewScore)
	}

	return []Card{
		{
			Title:    "إجمالي الموظفين",
			Value:    fmt.Sprint(m.TotalEmployees),
			Subtitle: fmt.Sprintf("%d موظف نشط حاليًا", m.ActiveEmployees),
			Accent:   "blue",
		},
		{
			Title:    "المنضمون الجدد",
			Value:    fmt.Sprint(m.Onboarding),
			Subtitle: "الموظفون المتوقع انضمامهم خلال الأسبوعين القادمين",
			Accent:   "sky",
		},
		{
			Title:    "متوسط التقييم",
			Value:    average,
			Subtitle: "آخر تقييم أداء للفرق المرتبطة بك",
			Accent:   "violet",
		},
		{
			Title:    "طلبات بحاجة إلى إجراء",
			Value:    fmt.Sprint(m.ActionRequired()),
			Subtitle: fmt.Sprintf("%d إجازة · %d مهام", m.PendingLeave, m.OpenChecklistItems),
			Accent:   "amber",
		},
	}
}

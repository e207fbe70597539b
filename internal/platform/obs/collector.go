package obs

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ogurasousui/hr-desk/internal/core/dashboard"
	"github.com/ogurasousui/hr-desk/internal/core/state"
)

const collectTimeout = 2 * time.Second

// HRCollector はスクレイプ時に現在の状態から人事指標を算出するコレクターです。
type HRCollector struct {
	source dashboard.Source
	logger *zap.Logger

	employees      *prometheus.Desc
	reviewAverage  *prometheus.Desc
	pendingLeave   *prometheus.Desc
	openChecklist  *prometheus.Desc
	workflowsTotal *prometheus.Desc
}

// NewHRCollector は HRCollector を生成します。
func NewHRCollector(source dashboard.Source, logger *zap.Logger) *HRCollector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HRCollector{
		source: source,
		logger: logger,
		employees: prometheus.NewDesc(
			"hr_employees",
			"Number of employees by status.",
			[]string{"status"}, nil,
		),
		reviewAverage: prometheus.NewDesc(
			"hr_review_score_average",
			"Average last review score of active employees.",
			nil, nil,
		),
		pendingLeave: prometheus.NewDesc(
			"hr_leave_requests_pending",
			"Leave requests awaiting a decision.",
			nil, nil,
		),
		openChecklist: prometheus.NewDesc(
			"hr_checklist_items_open",
			"Checklist items that are not completed.",
			nil, nil,
		),
		workflowsTotal: prometheus.NewDesc(
			"hr_workflows",
			"Number of defined workflows.",
			nil, nil,
		),
	}
}

// Describe は prometheus.Collector の実装です。
func (c *HRCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.employees
	ch <- c.reviewAverage
	ch <- c.pendingLeave
	ch <- c.openChecklist
	ch <- c.workflowsTotal
}

// Collect は prometheus.Collector の実装です。状態を取得できない場合は何も出力しません。
func (c *HRCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	s, err := c.source.Snapshot(ctx)
	if err != nil {
		c.logger.Warn("failed to snapshot state for metrics", zap.Error(err))
		return
	}
	c.collect(ch, s)
}

func (c *HRCollector) collect(ch chan<- prometheus.Metric, s state.State) {
	m := dashboard.ComputeMetrics(s.Employees, s.LeaveRequests, s.Checklist)

	for _, share := range m.StatusDistribution {
		ch <- prometheus.MustNewConstMetric(c.employees, prometheus.GaugeValue, float64(share.Count), string(share.Status))
	}
	ch <- prometheus.MustNewConstMetric(c.reviewAverage, prometheus.GaugeValue, m.AverageReviewScore)
	ch <- prometheus.MustNewConstMetric(c.pendingLeave, prometheus.GaugeValue, float64(m.PendingLeave))
	ch <- prometheus.MustNewConstMetric(c.openChecklist, prometheus.GaugeValue, float64(m.OpenChecklistItems))
	ch <- prometheus.MustNewConstMetric(c.workflowsTotal, prometheus.GaugeValue, float64(len(s.Workflows)))
}

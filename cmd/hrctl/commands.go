package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/document"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
	"github.com/ogurasousui/hr-desk/internal/core/workflow"
)

var clipboardWriteAll = clipboard.WriteAll

func newMetricsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show headline cards and the status distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview, err := a.dashboard.GetOverview(commandContext(cmd))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range overview.Cards {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Title, c.Value, c.Subtitle)
			}
			fmt.Fprintln(w)
			for _, s := range overview.Metrics.StatusDistribution {
				fmt.Fprintf(w, "%s\t%d\t%d%%\n", s.Status, s.Count, s.Percent)
			}
			return w.Flush()
		},
	}
}

func newFeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Show the activity timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview, err := a.dashboard.GetOverview(commandContext(cmd))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range overview.Feed {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Date, e.Badge, e.Title, e.Description)
			}
			return w.Flush()
		},
	}
}

func newDirectoryCmd(a *app) *cobra.Command {
	var filter employee.DirectoryFilter
	cmd := &cobra.Command{
		Use:   "directory",
		Short: "List employees matching the directory filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.employees.ListEmployees(commandContext(cmd), employee.ListEmployeesInput{Filter: filter})
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range result.Employees {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Department, e.Role, e.Status, e.StartDate)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d\n", len(result.Employees), result.Total)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter.Search, "search", "q", "", "case-insensitive search over name, department and role")
	cmd.Flags().StringVar(&filter.Department, "department", employee.AllOption, "department to match exactly")
	cmd.Flags().StringVar(&filter.Status, "status", employee.AllOption, "employment status to match")
	return cmd
}

func newLeaveCmd(a *app) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "leave",
		Short: "List leave requests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.leave.ListLeaveRequests(commandContext(cmd), leave.ListLeaveRequestsInput{Status: status})
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range result.Requests {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s..%s\t%s\t%s\n",
					r.ID, r.EmployeeName, r.Department, r.Type, r.StartDate, r.EndDate, r.Status, r.Manager)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&status, "status", leave.FilterAll, "all, Pending, Approved or Rejected")
	return cmd
}

func newChecklistCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checklist",
		Short: "Show the checklist board grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := a.checklist.GetBoard(commandContext(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, bucket := range board {
				fmt.Fprintf(out, "[%s]\n", bucket.Category)
				if bucket.Empty() {
					fmt.Fprintf(out, "  %s\n", checklist.EmptyBucketText)
					continue
				}
				for _, item := range bucket.Items {
					fmt.Fprintf(out, "  %s  %s  %s  %s\n", item.DueDate, item.Status, item.Title, item.Owner)
				}
			}
			return nil
		},
	}
}

func newTemplatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List document templates and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			templates, err := a.documents.ListTemplates(commandContext(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range templates {
				ids := make([]string, 0, len(t.Fields))
				for _, f := range t.Fields {
					ids = append(ids, f.ID)
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", t.ID, t.Name, strings.Join(ids, ","))
			}
			return nil
		},
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		values map[string]string
		copyTo bool
	)
	cmd := &cobra.Command{
		Use:   "render <template-id>",
		Short: "Fill a document template and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := document.NewDraft(args[0])
			for k, v := range values {
				draft = draft.Set(k, v)
			}
			rendered, err := a.documents.RenderDraft(commandContext(cmd), draft)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered.Text)
			if copyTo {
				copyToClipboard(cmd.ErrOrStderr(), a.logger, rendered.Text)
			}
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&values, "set", nil, "field values as id=value (repeatable)")
	cmd.Flags().BoolVar(&copyTo, "copy", false, "also copy the rendered text to the clipboard")
	return cmd
}

// copyToClipboard はクリップボードへ書き込みます。失敗しても処理は継続します。
func copyToClipboard(status io.Writer, logger *zap.Logger, text string) {
	if err := clipboardWriteAll(text); err != nil {
		logger.Debug("clipboard write failed", zap.Error(err))
		return
	}
	fmt.Fprintln(status, "تم النسخ ✨")
}

func newWorkflowsCmd(a *app) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "workflows",
		Short: "List workflow definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workflows, err := a.workflows.ListWorkflows(commandContext(cmd), workflow.ListWorkflowsInput{Search: search})
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, wf := range workflows {
				lastRun := "-"
				if wf.HasRun() {
					lastRun = wf.LastRunAt.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n", wf.ID, wf.Name, wf.Trigger, len(wf.Actions), wf.Owner, lastRun)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&search, "search", "q", "", "case-insensitive search over name and description")
	return cmd
}

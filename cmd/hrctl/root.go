package main

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ogurasousui/hr-desk/internal/adapters/repository/memory"
	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/dashboard"
	"github.com/ogurasousui/hr-desk/internal/core/document"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
	"github.com/ogurasousui/hr-desk/internal/core/workflow"
	memdb "github.com/ogurasousui/hr-desk/internal/platform/db/memory"
	"github.com/ogurasousui/hr-desk/internal/platform/seed"
)

// app は CLI から使うユースケース一式です。
type app struct {
	logger    *zap.Logger
	employees employee.UseCase
	leave     leave.UseCase
	checklist checklist.UseCase
	workflows workflow.UseCase
	documents document.UseCase
	dashboard dashboard.UseCase
}

type rootOptions struct {
	seedPath string
	today    string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	a := &app{}

	cmd := &cobra.Command{
		Use:           "hrctl",
		Short:         "Inspect the HR desk seed data from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(opts)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.seedPath, "seed", "", "path to a seed YAML file (defaults to the bundled data)")
	cmd.PersistentFlags().StringVar(&opts.today, "today", "", "resolve relative seed dates against this date (YYYY-MM-DD)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newMetricsCmd(a),
		newFeedCmd(a),
		newDirectoryCmd(a),
		newLeaveCmd(a),
		newChecklistCmd(a),
		newWorkflowsCmd(a),
		newTemplatesCmd(a),
		newRenderCmd(a),
	)
	return cmd
}

func (a *app) init(opts *rootOptions) error {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if opts.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	today := civil.DateOf(time.Now())
	if opts.today != "" {
		if today, err = civil.ParseDate(opts.today); err != nil {
			return fmt.Errorf("--today: %w", err)
		}
	}

	data, err := seed.Load(opts.seedPath, today)
	if err != nil {
		return err
	}

	store := memdb.NewStore(data.State)
	tx := memdb.NewTransactionManager(store)
	employeeRepo := memory.NewEmployeeRepository(store)

	a.employees = employee.NewService(employeeRepo, nil, tx)
	a.leave = leave.NewService(memory.NewLeaveRepository(store), employeeRepo, nil, tx)
	a.checklist = checklist.NewService(memory.NewChecklistRepository(store), nil, tx)
	a.workflows = workflow.NewService(memory.NewWorkflowRepository(store), nil, tx)
	a.documents = document.NewService(memory.NewTemplateRepository(data.Templates))
	a.dashboard = dashboard.NewService(store)

	logger.Debug("seed loaded", zap.String("path", opts.seedPath), zap.String("today", today.String()))
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

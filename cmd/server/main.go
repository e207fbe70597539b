package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/civil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/ogurasousui/hr-desk/internal/adapters/http/handler"
	"github.com/ogurasousui/hr-desk/internal/adapters/http/view"
	"github.com/ogurasousui/hr-desk/internal/adapters/repository/memory"
	"github.com/ogurasousui/hr-desk/internal/core/checklist"
	"github.com/ogurasousui/hr-desk/internal/core/dashboard"
	"github.com/ogurasousui/hr-desk/internal/core/document"
	"github.com/ogurasousui/hr-desk/internal/core/employee"
	"github.com/ogurasousui/hr-desk/internal/core/leave"
	"github.com/ogurasousui/hr-desk/internal/core/workflow"
	"github.com/ogurasousui/hr-desk/internal/platform/config"
	memdb "github.com/ogurasousui/hr-desk/internal/platform/db/memory"
	"github.com/ogurasousui/hr-desk/internal/platform/obs"
	"github.com/ogurasousui/hr-desk/internal/platform/seed"
	"github.com/ogurasousui/hr-desk/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := obs.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	data, err := seed.Load(cfg.Seed.Path, civil.DateOf(time.Now()))
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	store := memdb.NewStore(data.State)
	txManager := memdb.NewTransactionManager(store)

	employeeRepo := memory.NewEmployeeRepository(store)
	leaveRepo := memory.NewLeaveRepository(store)
	checklistRepo := memory.NewChecklistRepository(store)
	workflowRepo := memory.NewWorkflowRepository(store)
	templateRepo := memory.NewTemplateRepository(data.Templates)

	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}

	h := handler.New(handler.Options{
		Employees:   employee.NewService(employeeRepo, nil, txManager),
		Leave:       leave.NewService(leaveRepo, employeeRepo, nil, txManager),
		Checklist:   checklist.NewService(checklistRepo, nil, txManager),
		Workflows:   workflow.NewService(workflowRepo, nil, txManager),
		Documents:   document.NewService(templateRepo),
		Dashboard:   dashboard.NewService(store),
		Renderer:    renderer,
		Logger:      logger,
		CopiedReset: cfg.Document.CopiedReset,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		obs.NewHRCollector(store, logger),
	)

	var limiter *handler.RateLimiter
	if cfg.Server.RateLimit.Enabled() {
		limiter = handler.NewRateLimiter(cfg.Server.RateLimit.PerSecond, cfg.Server.RateLimit.Burst)
	}

	router := server.NewRouter(server.RouterOptions{
		Handler:    h,
		Metrics:    obs.NewHTTPMetrics(registry),
		Gatherer:   registry,
		Limiter:    limiter,
		Logger:     logger,
		TrustProxy: cfg.Server.TrustProxy,
	})

	logger.Info("seed loaded",
		zap.Int("employees", len(data.State.Employees)),
		zap.Int("leave_requests", len(data.State.LeaveRequests)),
		zap.Int("checklist", len(data.State.Checklist)),
		zap.Int("workflows", len(data.State.Workflows)),
		zap.Int("templates", len(data.Templates)),
	)

	return server.New(cfg.Server, router, logger).Run(ctx)
}

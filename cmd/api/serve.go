package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	httptransport "github.com/spec-kit/employee-portal/internal/api/http"
	"github.com/spec-kit/employee-portal/internal/api/http/handlers"
	"github.com/spec-kit/employee-portal/internal/config"
	"github.com/spec-kit/employee-portal/internal/events"
	"github.com/spec-kit/employee-portal/internal/form"
	"github.com/spec-kit/employee-portal/internal/localization"
	"github.com/spec-kit/employee-portal/internal/observability"
	"github.com/spec-kit/employee-portal/internal/persistence"
	"github.com/spec-kit/employee-portal/internal/service"
	"github.com/spec-kit/employee-portal/internal/store"
	"github.com/spec-kit/employee-portal/internal/validation"
	"github.com/spec-kit/employee-portal/internal/views"
	"github.com/spec-kit/employee-portal/internal/worker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

var (
	serveHost string
	servePort string
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Bind host (overrides APP_HOST)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Bind port (overrides APP_PORT)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serveHost != "" {
		cfg.App.Host = serveHost
	}
	if servePort != "" {
		cfg.App.Port = servePort
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	storeOpts := []store.Option{store.WithLogger(logger), store.WithRecorder(metrics)}
	if cfg.Employees.EmailCaseInsensitive {
		storeOpts = append(storeOpts, store.WithCaseInsensitiveEmails())
	}
	employees := store.New(store.SeedEmployees(), storeOpts...)

	catalog, err := localization.NewCatalog(cfg.I18n.DefaultLanguage, logger)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	dispatcher := events.NewInMemoryDispatcher(logger)
	defer service.BridgeStore(ctx, employees, dispatcher)()
	defer service.BridgeLanguage(ctx, catalog, dispatcher)()

	g, gCtx := errgroup.WithContext(ctx)

	var (
		feed  service.ChangeFeed
		redis handlers.Pinger
	)
	if cfg.Redis.Enabled() {
		client := persistence.NewRedis(cfg.Redis, logger)
		defer client.Close()
		redis = client

		feedWorker := worker.NewChangeFeedWorker(client, 256, logger)
		feed = feedWorker
		g.Go(func() error { return feedWorker.Run(gCtx) })
	}
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, feed))

	registry := form.NewRegistry(cfg.Forms.SessionTTL,
		form.WithGauge(metrics),
		form.WithRegistryLogger(logger),
	)
	g.Go(func() error {
		return worker.RunFormSweeper(gCtx, registry, cfg.Forms.SweepInterval, logger)
	})

	employeeService := service.NewEmployeeService(employees, logger)
	formDeps := form.Dependencies{
		Store:      employees,
		Translator: catalog,
		Catalog:    cfg.Employees.Catalog(),
		Logger:     logger,
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		Views:                 views.NewEngine(),
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, catalog, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, employees, redis),
		Employees: handlers.NewEmployeesHandler(employeeService, validation.NewValidator(cfg.Employees.Catalog())),
		Pages:     handlers.NewPagesHandler(employeeService, catalog),
		Forms:     handlers.NewFormsHandler(registry, formDeps, catalog, logger),
		Language:  handlers.NewLanguageHandler(catalog),
		Events:    handlers.NewEventsHandler(gCtx, dispatcher, 0, logger),
		Metrics:   adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	})

	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		return app.Listen(cfg.App.Addr())
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/odyssey-erp/finflow/internal/app"
	"github.com/odyssey-erp/finflow/internal/flow"
	flowhttp "github.com/odyssey-erp/finflow/internal/flow/http"
	"github.com/odyssey-erp/finflow/internal/observability"
	"github.com/odyssey-erp/finflow/internal/shared"
	"github.com/odyssey-erp/finflow/internal/view"
	"github.com/odyssey-erp/finflow/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	res, err := app.OpenResources(ctx, cfg, logger, true)
	if err != nil {
		logger.Error("open resources", slog.Any("error", err))
		os.Exit(1)
	}
	defer res.Close()

	metrics := observability.NewMetrics()
	if err := flowhttp.SetupCacheMetrics(metrics.Registerer()); err != nil {
		logger.Warn("setup statement cache metrics", slog.Any("error", err))
	}

	var enqueuer flow.Enqueuer
	if cfg.PersistMode() == flow.PersistAsync {
		client := jobs.NewClient(cfg.AsynqRedisOpt())
		defer func() {
			if err := client.Close(); err != nil {
				logger.Warn("asynq client close", slog.Any("error", err))
			}
		}()
		enqueuer = client
	}

	service := flow.NewService(ctx, flow.ServiceOptions{
		Repository: res.Store,
		Enqueuer:   enqueuer,
		Mode:       cfg.PersistMode(),
		Recorder:   metrics,
		Logger:     logger.With(slog.String("component", "flow")),
	})

	sessionManager := shared.NewSessionManager(res.Redis, "finflow_session", cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)
	idempotency := shared.NewIdempotencyStore(res.Redis, cfg.IdempotencyTTL)

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	flowHandler, err := flowhttp.NewHandler(logger, service, templates, csrfManager, idempotency)
	if err != nil {
		logger.Error("init flow handler", slog.Any("error", err))
		os.Exit(1)
	}

	var queue jobs.QueueInspector
	if cfg.PersistMode() == flow.PersistAsync {
		inspector := asynq.NewInspector(cfg.AsynqRedisOpt())
		defer func() {
			if err := inspector.Close(); err != nil {
				logger.Warn("inspector close", slog.Any("error", err))
			}
		}()
		queue = inspector
	}
	jobHandler := jobs.NewHandler(queue, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		SessionManager: sessionManager,
		CSRFManager:    csrfManager,
		FlowHandler:    flowHandler,
		JobHandler:     jobHandler,
		Metrics:        metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server",
			slog.String("addr", cfg.AppAddr),
			slog.String("backend", string(cfg.Backend())),
			slog.String("persist_mode", string(cfg.PersistMode())))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Error("http server", slog.Any("error", err))
		os.Exit(1)
	}
}

// The apiserver command runs the general-application decision engine's REST
// service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/turtacn/GenApp-Engine/internal/application/notification"
	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/domain/calendar"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/database/postgres"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/database/postgres/repositories"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/database/redis"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/holidays"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/notify"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/storage/minio"
	httpiface "github.com/turtacn/GenApp-Engine/internal/interfaces/http"
	"github.com/turtacn/GenApp-Engine/internal/interfaces/http/handlers"
)

func main() {
	configPath := flag.String("config", "", "path to config file (env-only when empty)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "apiserver:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if err := cfg.ValidateTemplates(); err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: cfg.Log.OutputPaths,
	})
	if err != nil {
		return err
	}
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := prometheus.NewMetrics()

	// Case store.
	dsn := postgres.DSN(cfg.Database)
	if err := postgres.RunMigrations(dsn, "file://"+cfg.Database.MigrationPath, logger); err != nil {
		return err
	}
	conn, err := postgres.NewConnection(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer conn.Close()
	caseRepo := repositories.NewCaseRepository(conn.Pool(), logger)

	// Holiday cache is best-effort: without redis the feed is fetched on
	// every boot, which is acceptable.
	var cache *redis.Client
	if c, err := redis.NewClient(ctx, cfg.Redis, logger); err != nil {
		logger.Warn("redis unavailable, holiday feed will not be cached", logging.Err(err))
	} else {
		cache = c
		defer cache.Close()
	}

	holidaySource := holidays.NewGovUKSource(cfg.Holiday, cache, metrics, logger)
	workingDays := calendar.NewWorkingDayCalendar(ctx, holidaySource, logger)
	calculator := calendar.NewDeadlineCalculator(workingDays, cfg.Deadline.EndOfBusinessHour)

	producer, err := kafka.NewProducer(cfg.Kafka, logger)
	if err != nil {
		return err
	}
	defer producer.Close()
	publisher := kafka.NewEventPublisher(producer)

	notifier := notify.NewClient(cfg.Notify, logger)
	planner := notification.NewPlanner(cfg.Templates, calculator, cfg.Deadline.ResponseWindowDays, nil)
	service := notification.NewService(caseRepo, notifier, publisher, planner, metrics, logger)

	// Document storage is optional; the document routes are simply not
	// mounted when it is absent.
	var documentHandler *handlers.DocumentHandler
	if store, err := minio.NewDocumentStore(ctx, cfg.MinIO, logger); err != nil {
		logger.Warn("object storage unavailable, document endpoints disabled", logging.Err(err))
	} else {
		documentHandler = handlers.NewDocumentHandler(store)
	}

	checks := map[string]handlers.HealthChecker{
		"postgres": conn.Health,
	}
	if cache != nil {
		checks["redis"] = cache.Health
	}

	router := httpiface.NewRouter(cfg.Server.Mode, httpiface.Handlers{
		Decision: handlers.NewDecisionHandler(service),
		Deadline: handlers.NewDeadlineHandler(calculator),
		Case:     handlers.NewCaseHandler(caseRepo),
		Document: documentHandler,
		Health:   handlers.NewHealthHandler(checks),
	}, metrics, logger)

	server := httpiface.NewServer(cfg.Server, router, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Run)
	g.Go(func() error {
		<-gctx.Done()
		return server.Shutdown(context.Background())
	})

	logger.Info("engine started", logging.Int("port", cfg.Server.Port))
	return g.Wait()
}

package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "crm/internal/app"
	"crm/internal/entities"
	"crm/internal/gateway/telegram"
	"crm/internal/handlers/rest/bot_consent_get"
	"crm/internal/handlers/rest/bot_consent_post"
	"crm/internal/handlers/rest/bot_requests_get"
	"crm/internal/handlers/rest/bot_requests_post"
	"crm/internal/handlers/rest/bot_session_delete"
	"crm/internal/handlers/rest/bot_session_get"
	"crm/internal/handlers/rest/bot_session_put"
	"crm/internal/handlers/rest/cities_get"
	"crm/internal/handlers/rest/city_delete"
	"crm/internal/handlers/rest/city_post"
	"crm/internal/handlers/rest/city_put"
	"crm/internal/handlers/rest/city_rates_get"
	"crm/internal/handlers/rest/clients_get"
	"crm/internal/handlers/rest/counterparties_get"
	"crm/internal/handlers/rest/counterparty_delete"
	"crm/internal/handlers/rest/counterparty_patch"
	"crm/internal/handlers/rest/counterparty_post"
	"crm/internal/handlers/rest/healthcheck_head"
	"crm/internal/handlers/rest/invoice_get"
	"crm/internal/handlers/rest/invoice_pdf_get"
	"crm/internal/handlers/rest/invoice_post"
	"crm/internal/handlers/rest/invoice_send_post"
	"crm/internal/handlers/rest/invoices_get"
	"crm/internal/handlers/rest/ping_get"
	"crm/internal/handlers/rest/rate_delete"
	"crm/internal/handlers/rest/rate_post"
	"crm/internal/handlers/rest/rate_put"
	"crm/internal/handlers/rest/request_get"
	"crm/internal/handlers/rest/request_history_get"
	"crm/internal/handlers/rest/request_patch"
	"crm/internal/handlers/rest/request_service_delete"
	"crm/internal/handlers/rest/request_service_post"
	"crm/internal/handlers/rest/request_service_put"
	"crm/internal/handlers/rest/request_service_suggest_post"
	"crm/internal/handlers/rest/request_services_get"
	"crm/internal/handlers/rest/request_status_patch"
	"crm/internal/handlers/rest/requests_export_get"
	"crm/internal/handlers/rest/requests_get"
	"crm/internal/handlers/rest/schedule_delete"
	"crm/internal/handlers/rest/schedule_destinations_get"
	"crm/internal/handlers/rest/schedule_get"
	"crm/internal/handlers/rest/schedule_post"
	"crm/internal/pkg/config"
	"crm/internal/pkg/dotenv"
	"crm/internal/pkg/invoice_pdf"
	"crm/internal/pkg/kafka"
	metrics_system "crm/internal/pkg/metrics"
	"crm/internal/pkg/middlewares/auth"
	"crm/internal/pkg/middlewares/graceful_shutdown"
	"crm/internal/pkg/middlewares/metrics"
	"crm/internal/pkg/middlewares/rate_limiter"
	"crm/internal/pkg/middlewares/request_id"
	"crm/internal/pkg/middlewares/timeout"
	"crm/internal/pkg/postgres"
	"crm/internal/pkg/redis"
	"crm/pkg/logger"
	"crm/pkg/logger/zap_adapter"
	"crm/pkg/token_bucket"
)

const (
	serviceName = "crm"

	// бакеты клиентов, не приходивших дольше, вычищаются
	rateLimiterIdleTTL = 10 * time.Minute
)

func main() {
	envErr := loadDotenv()

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Config{
		Level:   config.LoadLog().Level,
		Service: serviceName,
	})
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting crm application")

	if envErr != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", envErr))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

// loadDotenv читает .env, если он есть. Логгер еще не создан: уровень логирования тоже может лежать в .env.
func loadDotenv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return dotenv.Load()
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client", logger.NewField("error", err))
		}
	}()

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka, cfg.Kafka.BrokerList())
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	renderer, err := invoice_pdf.New(entities.Seller(cfg.Invoice.Seller), cfg.Invoice.FontPath, cfg.Invoice.FontBoldPath)
	if err != nil {
		return fmt.Errorf("invoice renderer: %w", err)
	}

	telegramGateway := telegram.New(&cfg.Telegram)
	if !telegramGateway.Enabled() {
		runLog.Warn("TELEGRAM_BOT_TOKEN is empty, invoices will not be delivered")
	}

	// фоновые задачи живут до SIGTERM, поэтому получают ctx сигнала
	businessApp, err := application.InitializeApplication(
		ctx,
		log,
		pool,
		pgxv5.DefaultCtxGetter,
		redisClient,
		producer,
		renderer,
		telegramGateway,
		cfg,
	)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	healthChecks := []healthcheck_head.Check{
		pool.Ping,
		func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg, healthChecks),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()
	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg *config.Config,
	healthChecks []healthcheck_head.Check,
) http.Handler {
	router := mux.NewRouter()

	router.Use(request_id.Middleware())
	router.Use(graceful_shutdown.Middleware(log, isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	limiter := token_bucket.NewKeyedBuckets(cfg.Server.RateLimiterBurst, float64(cfg.Server.RateLimiterQPS), rateLimiterIdleTTL, time.Now)
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, limiter))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, healthChecks...)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/schedule", schedule_get.New(log, app.ServiceSchedule)).Methods("GET")
	router.Handle("/schedule/destinations", schedule_destinations_get.New(log, app.ServiceSchedule)).Methods("GET")

	bot := router.PathPrefix("/bot").Subrouter()
	bot.Handle("/consent/{telegramId}", bot_consent_get.New(log, app.ServiceClient)).Methods("GET")
	bot.Handle("/consent", bot_consent_post.New(log, app.ServiceClient)).Methods("POST")
	bot.Handle("/requests", bot_requests_post.New(log, app.ServiceShipment)).Methods("POST")
	bot.Handle("/requests/{telegramId}", bot_requests_get.New(log, app.ServiceShipment)).Methods("GET")
	bot.Handle("/sessions/{telegramId}", bot_session_get.New(log, app.ServiceSession)).Methods("GET")
	bot.Handle("/sessions/{telegramId}", bot_session_put.New(log, app.ServiceSession)).Methods("PUT")
	bot.Handle("/sessions/{telegramId}", bot_session_delete.New(log, app.ServiceSession)).Methods("DELETE")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Middleware(log, cfg.Auth.JWTSecret))

	// export.xlsx регистрируется раньше /requests/{id}
	admin.Handle("/requests", requests_get.New(log, app.ServiceShipment)).Methods("GET")
	admin.Handle("/requests/export.xlsx", requests_export_get.New(log, app.ServiceShipment)).Methods("GET")
	admin.Handle("/requests/{id}", request_get.New(log, app.ServiceShipment)).Methods("GET")
	admin.Handle("/requests/{id}", request_patch.New(log, app.ServiceShipment)).Methods("PATCH")
	admin.Handle("/requests/{id}/status", request_status_patch.New(log, app.ServiceShipment)).Methods("PATCH")
	admin.Handle("/requests/{id}/history", request_history_get.New(log, app.ServiceShipment)).Methods("GET")

	admin.Handle("/requests/{id}/services", request_services_get.New(log, app.ServiceLineItem)).Methods("GET")
	admin.Handle("/requests/{id}/services", request_service_post.New(log, app.ServiceLineItem)).Methods("POST")
	admin.Handle("/requests/{id}/services/suggest", request_service_suggest_post.New(log, app.ServiceLineItem)).Methods("POST")
	admin.Handle("/requests/{id}/services/{serviceId}", request_service_put.New(log, app.ServiceLineItem)).Methods("PUT")
	admin.Handle("/requests/{id}/services/{serviceId}", request_service_delete.New(log, app.ServiceLineItem)).Methods("DELETE")

	admin.Handle("/clients", clients_get.New(log, app.ServiceClient)).Methods("GET")

	admin.Handle("/counterparties", counterparties_get.New(log, app.ServiceCounterparty)).Methods("GET")
	admin.Handle("/counterparties", counterparty_post.New(log, app.ServiceCounterparty)).Methods("POST")
	admin.Handle("/counterparties/{id}", counterparty_patch.New(log, app.ServiceCounterparty)).Methods("PATCH")
	admin.Handle("/counterparties/{id}", counterparty_delete.New(log, app.ServiceCounterparty)).Methods("DELETE")

	admin.Handle("/cities", cities_get.New(log, app.ServiceCity)).Methods("GET")
	admin.Handle("/cities", city_post.New(log, app.ServiceCity)).Methods("POST")
	admin.Handle("/cities/{id}", city_put.New(log, app.ServiceCity)).Methods("PUT")
	admin.Handle("/cities/{id}", city_delete.New(log, app.ServiceCity)).Methods("DELETE")
	admin.Handle("/cities/{id}/rates", city_rates_get.New(log, app.ServiceRate)).Methods("GET")

	admin.Handle("/rates", rate_post.New(log, app.ServiceRate)).Methods("POST")
	admin.Handle("/rates/{id}", rate_put.New(log, app.ServiceRate)).Methods("PUT")
	admin.Handle("/rates/{id}", rate_delete.New(log, app.ServiceRate)).Methods("DELETE")

	admin.Handle("/schedule", schedule_post.New(log, app.ServiceSchedule)).Methods("POST")
	admin.Handle("/schedule/{id}", schedule_delete.New(log, app.ServiceSchedule)).Methods("DELETE")

	admin.Handle("/invoices", invoices_get.New(log, app.ServiceInvoice)).Methods("GET")
	admin.Handle("/invoices", invoice_post.New(log, app.ServiceInvoice)).Methods("POST")
	admin.Handle("/invoices/{id}", invoice_get.New(log, app.ServiceInvoice)).Methods("GET")
	admin.Handle("/invoices/{id}/pdf", invoice_pdf_get.New(log, app.ServiceInvoice)).Methods("GET")
	admin.Handle("/invoices/{id}/send", invoice_send_post.New(log, app.ServiceInvoice)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

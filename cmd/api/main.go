package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	pgRepo "github.com/vincibusa/allfoodgest/internal/infra/adapter/persistence/postgres"
	"github.com/vincibusa/allfoodgest/internal/infra/db"
	"github.com/vincibusa/allfoodgest/internal/infra/storage"
	"github.com/vincibusa/allfoodgest/internal/observability/logging"
	"github.com/vincibusa/allfoodgest/internal/observability/tracing"
	"github.com/vincibusa/allfoodgest/internal/resilience/circuitbreaker"
	"github.com/vincibusa/allfoodgest/pkg/config"

	artUC "github.com/vincibusa/allfoodgest/internal/usecase/articolo"
	statsUC "github.com/vincibusa/allfoodgest/internal/usecase/stats"
	uploadUC "github.com/vincibusa/allfoodgest/internal/usecase/upload"

	hhttp "github.com/vincibusa/allfoodgest/internal/handler/http"
	harticolo "github.com/vincibusa/allfoodgest/internal/handler/http/articolo"
	hauth "github.com/vincibusa/allfoodgest/internal/handler/http/auth"
	"github.com/vincibusa/allfoodgest/internal/handler/http/middleware"
	"github.com/vincibusa/allfoodgest/internal/handler/http/requestid"
	hstats "github.com/vincibusa/allfoodgest/internal/handler/http/stats"
	hupload "github.com/vincibusa/allfoodgest/internal/handler/http/upload"
	authservice "github.com/vincibusa/allfoodgest/internal/service/auth"

	_ "github.com/vincibusa/allfoodgest/docs" // swagger docs
)

// @title           AllFood Gestionale API
// @version         1.0
// @description     REST API del gestionale articoli: autenticazione, CRUD
// @description     articoli, caricamento immagini e statistiche della dashboard.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Token di sessione nel formato "Bearer {token}".

func main() {
	logger := logging.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	secret := jwtSecret(logger)
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	components, err := setupServer(logger, database, cfg, secret)
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(logger, components, cfg)
}

// jwtSecret reads and validates JWT_SECRET. The server refuses to start with
// a missing or weak secret.
func jwtSecret(logger *slog.Logger) []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	return []byte(secret)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// serverComponents holds what runServer needs to run and stop the process.
type serverComponents struct {
	handler     http.Handler
	cron        *cron.Cron
	authLimiter *hhttp.RateLimiter
}

// setupServer wires repositories, services, routes and background jobs.
func setupServer(logger *slog.Logger, database *sql.DB, cfg config.AppConfig, secret []byte) (*serverComponents, error) {
	protectedDB := circuitbreaker.NewDBCircuitBreaker(database)
	protectedDB.OnQuery = hhttp.RecordDBQuery
	articoli := pgRepo.NewArticoloRepo(protectedDB)
	utenti := pgRepo.NewUtenteRepo(protectedDB)

	artSvc := &artUC.Service{Repo: articoli}
	statsSvc := &statsUC.Service{Repo: articoli, Logger: logger}
	authSvc := authservice.NewService(utenti, secret, cfg.SessionTTL.Std())

	store, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return nil, err
	}
	uploadSvc := &uploadUC.Service{Store: store}

	authLimiter := hhttp.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst)
	authz := hauth.Authz(authSvc)

	mux := http.NewServeMux()
	mux.Handle("POST   /auth", authLimiter.Limit(hauth.SessionHandler{Svc: authSvc}))
	mux.Handle("DELETE /auth", hauth.SignOutHandler{Svc: authSvc})

	harticolo.Register(mux, artSvc, authz)
	mux.Handle("GET    /stats", hstats.Handler{Svc: statsSvc})
	mux.Handle("POST   /upload", authz(hupload.UploadHandler{Svc: uploadSvc}))
	mux.Handle("DELETE /upload", authz(hupload.DeleteHandler{Svc: uploadSvc}))

	mux.Handle("GET    "+cfg.PublicBaseURL+"/",
		http.StripPrefix(cfg.PublicBaseURL+"/", http.FileServer(http.Dir(cfg.UploadDir))))

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version()})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	handler, err := applyMiddleware(logger, mux, cfg)
	if err != nil {
		return nil, err
	}

	jobs, err := scheduleJobs(logger, statsSvc, authSvc, authLimiter)
	if err != nil {
		return nil, err
	}

	return &serverComponents{
		handler:     handler,
		cron:        jobs,
		authLimiter: authLimiter,
	}, nil
}

// applyMiddleware wraps the mux with the cross-cutting chain, outermost
// first: CORS, request ID, tracing, panic recovery, logging, body limit,
// metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler, cfg config.AppConfig) (http.Handler, error) {
	corsConfig, err := middleware.LoadCORSConfig()
	if err != nil {
		return nil, err
	}
	corsConfig.Logger = logger
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(*corsConfig)(chain)
	return chain, nil
}

// scheduleJobs starts the periodic maintenance work: metric gauge refresh,
// expired token cleanup and rate limiter eviction.
func scheduleJobs(logger *slog.Logger, statsSvc *statsUC.Service, authSvc *authservice.Service, limiter *hhttp.RateLimiter) (*cron.Cron, error) {
	jobs := cron.New()

	_, err := jobs.AddFunc("@every 1m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		statsSvc.RefreshGauges(ctx, hhttp.UpdateArticoliTotali, hhttp.UpdateArticoliPubblicati)
	})
	if err != nil {
		return nil, err
	}

	if _, err := jobs.AddFunc("@every 10m", authSvc.PurgeRevoked); err != nil {
		return nil, err
	}

	if _, err := jobs.AddFunc("@every 5m", func() {
		limiter.Purge(15 * time.Minute)
	}); err != nil {
		return nil, err
	}

	logger.Info("background jobs scheduled",
		slog.String("gauge_refresh", "@every 1m"),
		slog.String("token_purge", "@every 10m"),
		slog.String("ratelimit_purge", "@every 5m"))
	return jobs, nil
}

func version() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// runServer starts the HTTP server and the cron scheduler, then blocks until
// SIGINT/SIGTERM and shuts both down gracefully.
func runServer(logger *slog.Logger, components *serverComponents, cfg config.AppConfig) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           components.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	components.cron.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", version()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		cronCtx := components.cron.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout.Std())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		select {
		case <-cronCtx.Done():
		case <-shutdownCtx.Done():
			logger.Warn("cron jobs did not finish before shutdown deadline")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

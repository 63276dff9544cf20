package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"agency-desk/internal/adapter/auth"
	httpadapter "agency-desk/internal/adapter/http"
	"agency-desk/internal/adapter/mail"
	"agency-desk/internal/adapter/postgres"
	"agency-desk/internal/adapter/storage"
	"agency-desk/internal/adapter/usecase"
	"agency-desk/internal/config"
	"agency-desk/internal/db"
)

// main loads configuration, optionally migrates and seeds the database,
// wires the adapters and serves the API until SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// A .env file is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to read .env", slog.Any("error", err))
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		seeded, err := db.Seed(ctx, pool)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		if seeded {
			logger.Info("demo data seeded", slog.String("password", db.DemoPassword))
		}
	}

	mailer, err := mail.New(cfg.Mail, logger.With(slog.String("component", "mail")))
	if err != nil {
		logger.Error("mailer setup error", slog.Any("error", err))
		return
	}
	files, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Error("storage setup error", slog.Any("error", err))
		return
	}

	accounts := postgres.NewAccountRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)
	ledger := postgres.NewLedgerRepository(pool)
	visits := postgres.NewVisitRepository(pool)
	reports := postgres.NewReportRepository(pool)

	tokens := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)
	authSvc := usecase.NewAuthUseCase(accounts, tokens, logger)

	created, err := authSvc.EnsureAdmin(ctx, cfg.Auth.AdminName, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
	if err != nil {
		logger.Error("bootstrap admin error", slog.Any("error", err))
		return
	}
	if created {
		logger.Info("bootstrap admin created", slog.String("email", cfg.Auth.AdminEmail))
	}

	svc := httpadapter.Services{
		Auth:      authSvc,
		Tokens:    tokens,
		Campaigns: usecase.NewCampaignUseCase(campaigns, accounts, visits, reports, ledger, mailer, logger),
		Ledger:    usecase.NewLedgerUseCase(ledger, accounts, campaigns, mailer, logger),
		Visits:    usecase.NewVisitUseCase(visits, campaigns, logger),
		Reports:   usecase.NewReportUseCase(reports, campaigns, visits, files, logger),
	}
	opts := httpadapter.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes(),
	}
	if local, ok := files.(*storage.LocalStore); ok {
		opts.UploadsDir = local.Dir()
	}

	handler := httpadapter.NewHandler(svc, opts, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

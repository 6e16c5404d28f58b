package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/booktable/internal/audit"
	"github.com/BruksfildServices01/booktable/internal/config"
	dbpkg "github.com/BruksfildServices01/booktable/internal/db"
	domainBooking "github.com/BruksfildServices01/booktable/internal/domain/booking"
	"github.com/BruksfildServices01/booktable/internal/infra/notify"
	"github.com/BruksfildServices01/booktable/internal/infra/storage"
	"github.com/BruksfildServices01/booktable/internal/logger"
	"github.com/BruksfildServices01/booktable/internal/routes"
	"github.com/BruksfildServices01/booktable/internal/timezone"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply the schema on startup")
	return cmd
}

func serve(migrate bool) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	timezone.SetDefault(cfg.DefaultTimezone)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// STORAGE
	// ======================================================
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if migrate {
		if err := dbpkg.Migrate(db, cfg.DefaultTimezone); err != nil {
			return err
		}
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			// The cache falls back to the database on every error.
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable at startup")
		}
	}

	deps := routes.Deps{
		Config:   cfg,
		DB:       db,
		Redis:    rdb,
		Notifier: newNotifier(cfg, log),
		Log:      log,
	}

	if cfg.S3Bucket != "" {
		deps.Photos = storage.NewS3PhotoStore(storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			URLTTL:          cfg.PhotoUploadURLTTL,
		})
	} else {
		log.Warn().Msg("S3_BUCKET not set, photo endpoints disabled")
	}

	deps.Audit = audit.NewDispatcher(audit.New(db), log)
	defer deps.Audit.Close()

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Registry = reg
	}

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("capacity_guard", string(cfg.CapacityGuard)).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newNotifier(cfg *config.Config, log zerolog.Logger) domainBooking.Notifier {
	if cfg.SendGridAPIKey == "" {
		log.Warn().Msg("SENDGRID_API_KEY not set, booking e-mails are logged only")
		return notify.NewLogNotifier(log)
	}
	return notify.NewSendGridNotifier(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
		Host:      cfg.SendGridHost,
		Timeout:   cfg.NotifyTimeout,
		AppName:   cfg.AppName,
		ManageURL: strings.TrimRight(cfg.AppBaseURL, "/") + "/bookings",
	}, log)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/upb-facilities/cleaning-records/internal/audit"
	"github.com/upb-facilities/cleaning-records/internal/config"
	dbpkg "github.com/upb-facilities/cleaning-records/internal/db"
	"github.com/upb-facilities/cleaning-records/internal/logging"
	"github.com/upb-facilities/cleaning-records/internal/middleware"
	"github.com/upb-facilities/cleaning-records/internal/ratelimit"
	"github.com/upb-facilities/cleaning-records/internal/routes"
	"github.com/upb-facilities/cleaning-records/internal/storage"
	"github.com/upb-facilities/cleaning-records/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg)
	db := dbpkg.NewDB(cfg, log)

	loc := timezone.Location(cfg.Timezone)

	// ------------------------------
	// Rate limiter: Redis when configured, in-process otherwise
	// ------------------------------
	var limiter ratelimit.Limiter = ratelimit.NewMemoryLimiter()
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.WithError(err).Warn("redis unavailable, using in-memory rate limiter")
		} else {
			defer rdb.Close()
			limiter = ratelimit.NewRedisLimiter(rdb)
		}
	}

	// ------------------------------
	// Export archive
	// ------------------------------
	var uploader storage.Uploader
	if cfg.ExportArchiveEnabled() {
		uploader = storage.NewS3Uploader(storage.NewS3Client(cfg), cfg.ExportBucket)
		log.WithField("bucket", cfg.ExportBucket).Info("export archive enabled")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	defer auditDispatcher.Close()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		gin.Recovery(),
	)

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Limiter:  limiter,
		Audit:    auditDispatcher,
		Uploader: uploader,
		Location: loc,
		Now:      timezone.Clock(loc),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr":     cfg.Addr(),
			"timezone": loc.String(),
		}).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

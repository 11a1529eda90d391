package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/countydirectory/internal/config"
	"github.com/countydirectory/internal/db"
	"github.com/countydirectory/internal/handler"
	"github.com/countydirectory/internal/logger"
	"github.com/countydirectory/internal/router"
	"github.com/countydirectory/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Options{Mode: cfg.Log, Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	// 初始化数据库
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}

	if cfg.SeedOnStart {
		ds, err := seed.Load()
		if err != nil {
			log.Fatal("failed to load seed data", zap.Error(err))
		}
		if _, err := seed.Run(db.DB, ds, log); err != nil {
			log.Fatal("failed to seed database", zap.Error(err))
		}
	}

	gin.SetMode(cfg.GinMode)
	r := router.SetupRouter(handler.NewAPI(db.DB, log), log)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           corsMiddleware.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to run server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}

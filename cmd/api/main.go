package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"pet-match/internal/adapters/storage/postgres"
	"pet-match/internal/platform/config"
	"pet-match/internal/router"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = postgres.Open(cfg.DBDSN)
		if err != nil {
			logger.Fatal("db open", zap.Error(err))
		}
		defer func() { _ = db.Close() }()
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: nil, // sin verifier para modo dev
		DB:           db,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Info("starting server", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.AppEnv == "dev" {
		zcfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zcfg.Build()
}

// @title        User Service API
// @version      1.0
// @description  使用者 CRUD 服務 API 文件
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"user-service/internal/cache"
	"user-service/internal/config"
	"user-service/internal/database"
	"user-service/internal/logging"
	"user-service/internal/router"
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	logOutput       io.Writer = os.Stdout
	exitFunc        = os.Exit
)

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	logger := logging.New(logOutput, cfg.LogLevel, cfg.LogPretty)

	logger.Info().Str("database", config.MaskPassword(cfg.DatabaseURL)).Msg("connecting to database")
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	// 未設定 REDIS_ADDR 時保持 nil interface，健康檢查會略過
	var cch cache.Cache
	if cfg.RedisAddr != "" {
		rdb, err := newRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer rdb.Close()
		cch = rdb
	}

	if cfg.RunMigrations {
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %w", err)
		}
		logger.Info().Msg("migrations applied")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	router.Use(e, logger, cfg.AllowedOrigins)
	router.Setup(e, db, cch)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Address()).Msg("server listening")
		errCh <- startServer(e, cfg.Address())
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("伺服器啟動失敗: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("伺服器關閉失敗: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("service exited")
		exitFunc(1)
	}
}

package main

import (
	"SocialBoard/internal/api/config"
	"SocialBoard/internal/pkg/database"
	"SocialBoard/internal/pkg/kafka"
	"SocialBoard/internal/pkg/logger"
	"SocialBoard/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.InitLogger(cfg.Log)

	// 数据库连接，表不存在时自动创建
	db, err := database.NewGormDB(&cfg.DB)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		os.Exit(1)
	}
	if err = database.AutoMigrate(db); err != nil {
		log.Error("Fatal error: failed to create tables", "err", err)
		os.Exit(1)
	}

	// 变更事件生产者
	publisher, err := kafka.NewPublisher(cfg.Kafka)
	if err != nil {
		log.Error("Fatal error: failed to create kafka producer", "err", err)
		os.Exit(1)
	}

	// 依赖注入
	app := wire.BuildApplication(db, publisher, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// HTTP 服务器
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}

	if err = app.Publisher.Close(); err != nil {
		log.Error("Kafka producer close failed", "err", err)
	}
	if err = database.Close(app.DB); err != nil {
		log.Error("Database close failed", "err", err)
	}
	log.Info("App exited successfully.")
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Mikan-DS/VK-NVL-bot/internal/config"
	"github.com/Mikan-DS/VK-NVL-bot/internal/engine"
	"github.com/Mikan-DS/VK-NVL-bot/internal/httpserver"
	"github.com/Mikan-DS/VK-NVL-bot/internal/logger"
	"github.com/Mikan-DS/VK-NVL-bot/internal/story"
	"github.com/Mikan-DS/VK-NVL-bot/internal/vk"
)

func main() {
	_ = godotenv.Load()
	log.Println("Запуск VK-NVL бота...")

	// Загружаем конфиг ДО инициализации логгера
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	zlog, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		log.Fatalf("Не удалось инициализировать логгер: %v", err)
	}
	defer zlog.Sync()
	zap.ReplaceGlobals(zlog)
	zlog.Info("Logger initialized", zap.String("logLevel", cfg.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Транспорт и движок
	client := vk.NewClient(cfg.VKToken, zlog)
	dispatcher, err := engine.NewDispatcher(story.New(), client, engine.Options{
		CharsPerSecond: cfg.CharsPerSecond,
		StepDelay:      cfg.StepDelay,
	}, zlog)
	if err != nil {
		zap.L().Fatal("Некорректный сценарий", zap.Error(err))
	}

	listener, err := vk.NewListener(client, cfg.VKGroupID, cfg.LongPollWait, dispatcher.HandleEvent, zlog)
	if err != nil {
		zap.L().Fatal("Не удалось инициализировать LongPoll", zap.Error(err))
	}

	go vk.RunKeepAlive(ctx, client, cfg.KeepAlivePeerID, cfg.KeepAliveInterval, zlog)

	// --- HTTP Server Setup (Gin) ---
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      httpserver.NewRouter(zlog),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		zap.L().Info("Starting HTTP server", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	go func() {
		if err := listener.Run(); err != nil {
			zap.L().Fatal("LongPoll завершился с ошибкой", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down...")

	listener.Shutdown()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	// Дожидаемся активных проходов сессий, чтобы не рвать сообщения на середине.
	dispatcher.Wait()
	zap.L().Info("Bot exiting")
}

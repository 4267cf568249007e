package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hwservices/internal/config"
	"hwservices/internal/logger"
	"hwservices/internal/manager"
	"hwservices/internal/models"
	"hwservices/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mm := manager.NewMusicManager(models.DefaultMusic())
	if err := server.Serve(ctx, cfg.MusicAddr, server.NewMusicRouter(mm), cfg.ShutdownTimeout); err != nil {
		logger.Error(ctx, err, "Сервис музыки завершился с ошибкой")
		os.Exit(1)
	}
}

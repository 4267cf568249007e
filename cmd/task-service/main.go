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
	"hwservices/internal/server"
	"hwservices/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Ошибка открытия хранилища: %v", err)
	}

	tm := manager.NewTaskManager(store)
	err = server.Serve(ctx, cfg.TaskAddr, server.NewTaskRouter(tm), cfg.ShutdownTimeout)

	if cerr := store.Close(); cerr != nil {
		logger.Error(ctx, cerr, "Ошибка закрытия хранилища")
	}
	if err != nil {
		logger.Error(ctx, err, "Сервис задач завершился с ошибкой")
		os.Exit(1)
	}
}

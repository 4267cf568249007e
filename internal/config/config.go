package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"time"

	"hwservices/internal/logger"
	"hwservices/internal/storage"

	"github.com/joho/godotenv"
)

type Config struct {
	MusicAddr       string
	TaskAddr        string
	DBDriver        string
	DBDSN           string
	LogLevel        logger.Level
	ShutdownTimeout time.Duration
}

// Load читает необязательный .env и переменные окружения.
// Переменные окружения имеют приоритет над .env.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("ошибка чтения .env: %w", err)
	}

	cfg := &Config{
		MusicAddr: getenv("MUSIC_ADDR", ":8000"),
		TaskAddr:  getenv("TASK_ADDR", ":8001"),
		DBDriver:  getenv("DB_DRIVER", storage.DriverSQLite),
		DBDSN:     getenv("DB_DSN", "./test.db"),
	}

	if !slices.Contains(storage.Drivers, cfg.DBDriver) {
		return nil, fmt.Errorf("DB_DRIVER: неизвестный драйвер %q", cfg.DBDriver)
	}

	level, err := logger.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	seconds, err := strconv.Atoi(getenv("SHUTDOWN_TIMEOUT", "10"))
	if err != nil || seconds < 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: ожидалось неотрицательное число секунд, получено %q", os.Getenv("SHUTDOWN_TIMEOUT"))
	}
	cfg.ShutdownTimeout = time.Duration(seconds) * time.Second

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

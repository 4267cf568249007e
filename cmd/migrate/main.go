package main

import (
	"context"
	"flag"
	"log"

	"hwservices/internal/config"
	"hwservices/internal/manager"
	"hwservices/internal/storage"
)

func main() {
	fill := flag.Bool("fill", false, "Заполнить таблицу начальными задачами")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Ошибка конфигурации:", err)
	}
	if cfg.DBDriver == storage.DriverMemory {
		log.Fatal("❌ Для миграции нужен SQL-драйвер, DB_DRIVER=memory")
	}

	ctx := context.Background()
	log.Printf("🔄 Создание таблицы tasks (%s)...", cfg.DBDriver)

	// NewSQLStorage сам создает таблицу и индекс
	store, err := storage.NewSQLStorage(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal("❌ Ошибка миграции:", err)
	}
	defer store.Close()

	log.Println("✅ Таблица tasks создана")

	if *fill {
		if err := manager.NewTaskManager(store).FillDefaults(ctx); err != nil {
			log.Fatal("❌ Ошибка заполнения:", err)
		}
		log.Println("✅ Начальные задачи добавлены")
	}

	log.Println("🎉 Миграция завершена успешно!")
}

package main

import (
	"context"

	"go.uber.org/zap"

	"climate-repair-system/internal/repositories"
	"climate-repair-system/pkg/config"
	"climate-repair-system/pkg/database/postgresql"
	"climate-repair-system/pkg/logger"
	"climate-repair-system/seeders"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	cfg := config.New()
	ctx := context.Background()

	if err := postgresql.RunMigrations(cfg.Postgres.DSN, "migrations", log); err != nil {
		log.Fatal("Ошибка применения миграций", zap.Error(err))
	}

	pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, log)
	if err != nil {
		log.Fatal("Ошибка подключения к базе данных", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repositories.NewUserRepository(pool)
	if err := seeders.SeedUsers(ctx, userRepo); err != nil {
		log.Fatal("Ошибка наполнения демонстрационными данными", zap.Error(err))
	}

	log.Info("Демонстрационные пользователи созданы")
}

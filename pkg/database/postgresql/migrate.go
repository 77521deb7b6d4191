package postgresql

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// RunMigrations прогоняет goose-миграции из каталога migrations
// через стандартный database/sql драйвер pgx.
func RunMigrations(dsn string, migrationsDir string, logger *zap.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("открытие соединения для миграций: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("установка диалекта goose: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("применение миграций: %w", err)
	}

	logger.Info("Миграции применены", zap.String("dir", migrationsDir))
	return nil
}

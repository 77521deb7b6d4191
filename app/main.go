package main

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"climate-repair-system/internal/controllers"
	"climate-repair-system/internal/repositories"
	"climate-repair-system/internal/routes"
	"climate-repair-system/internal/services"
	"climate-repair-system/pkg/config"
	"climate-repair-system/pkg/database/postgresql"
	"climate-repair-system/pkg/logger"
	"climate-repair-system/pkg/service"
	"climate-repair-system/pkg/utils"
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

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})
	defer redisClient.Close()

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, log)

	userRepo := repositories.NewUserRepository(pool)
	requestRepo := repositories.NewRequestRepository(pool)
	commentRepo := repositories.NewCommentRepository(pool)
	statsRepo := repositories.NewStatsRepository(pool)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	statsService := services.NewStatsService(statsRepo, userRepo, cacheRepo, cfg.Stats.CacheTTL, log)
	authService := services.NewAuthService(userRepo, jwtSvc, log)
	requestService := services.NewRequestService(requestRepo, userRepo, statsService, log)
	commentService := services.NewCommentService(commentRepo, requestRepo, log)
	userService := services.NewUserService(userRepo, log)
	reportService := services.NewReportService(requestRepo, userRepo, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewValidator()
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	routes.InitRouter(e, routes.Controllers{
		Auth:    controllers.NewAuthController(authService, log),
		Request: controllers.NewRequestController(requestService, log),
		Comment: controllers.NewCommentController(commentService, log),
		Stats:   controllers.NewStatsController(statsService, log),
		User:    controllers.NewUserController(userService, log),
		Report:  controllers.NewReportController(reportService, log),
	}, jwtSvc, log)

	log.Info("Сервер запускается", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Сервер остановлен", zap.Error(err))
	}
}

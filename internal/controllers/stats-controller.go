package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair-system/internal/entities"
	"climate-repair-system/internal/services"
	"climate-repair-system/pkg/utils"
)

type StatsController struct {
	statsService services.StatsServiceInterface
	logger       *zap.Logger
}

func NewStatsController(statsService services.StatsServiceInterface, logger *zap.Logger) *StatsController {
	return &StatsController{statsService: statsService, logger: logger}
}

// CompletedCount и AverageTime отдают срезы общей сводки отдельными
// ручками; права у них те же, что у сводки целиком.
func (ctrl *StatsController) CompletedCount(c echo.Context) error {
	stats, err := ctrl.global(c)
	if err != nil {
		return err
	}
	if stats == nil {
		return nil
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]int{
		"completed_requests_count": stats.CompletedCount,
	})
}

func (ctrl *StatsController) AverageTime(c echo.Context) error {
	stats, err := ctrl.global(c)
	if err != nil {
		return err
	}
	if stats == nil {
		return nil
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]*float64{
		"average_completion_time_days": stats.AverageDays,
	})
}

func (ctrl *StatsController) Problems(c echo.Context) error {
	stats, err := ctrl.global(c)
	if err != nil {
		return err
	}
	if stats == nil {
		return nil
	}

	return utils.SuccessResponse(c, http.StatusOK, "", stats.Problems)
}

func (ctrl *StatsController) All(c echo.Context) error {
	stats, err := ctrl.global(c)
	if err != nil {
		return err
	}
	if stats == nil {
		return nil
	}

	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// global выполняет общий для сводных ручек сценарий; при ошибке сам
// пишет ответ и возвращает (nil, nil).
func (ctrl *StatsController) global(c echo.Context) (*entities.GlobalStats, error) {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return nil, utils.ErrorResponse(c, err, ctrl.logger)
	}

	stats, err := ctrl.statsService.Global(c.Request().Context(), *actor)
	if err != nil {
		return nil, utils.ErrorResponse(c, err, ctrl.logger)
	}
	return stats, nil
}

func (ctrl *StatsController) My(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	stats, err := ctrl.statsService.My(c.Request().Context(), *actor)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}

func (ctrl *StatsController) ByUser(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	stats, err := ctrl.statsService.ByUser(c.Request().Context(), *actor, userID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}

package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair-system/internal/authz"
	"climate-repair-system/pkg/contextkeys"
	apperrors "climate-repair-system/pkg/errors"
	"climate-repair-system/pkg/service"
	"climate-repair-system/pkg/utils"
)

// AuthMiddleware проверяет Bearer-токен и кладёт в контекст запроса
// готового actor (id, роль, ФИО). Неизвестная роль в токене означает
// устаревший или подделанный токен и отклоняется на этом уровне.
func AuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, logger)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, logger)
			}

			claims, err := jwtSvc.ValidateToken(parts[1])
			if err != nil {
				return utils.ErrorResponse(c, err, logger)
			}

			role, err := authz.ParseRole(claims.Role)
			if err != nil {
				logger.Warn("Токен с неизвестной ролью",
					zap.Int("userID", claims.UserID),
					zap.String("role", claims.Role))
				return utils.ErrorResponse(c, apperrors.ErrInvalidToken, logger)
			}

			actor := &authz.Actor{
				ID:   claims.UserID,
				Role: role,
				Fio:  claims.Fio,
			}

			ctx := context.WithValue(c.Request().Context(), contextkeys.ActorKey, actor)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

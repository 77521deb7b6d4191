package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"climate-repair-system/internal/controllers"
	"climate-repair-system/internal/services"
	"climate-repair-system/pkg/service"
	"climate-repair-system/pkg/utils"
)

// Репозитории здесь не нужны: проверяется только регистрация
// маршрутов и то, что все закрытые ручки требуют токен.
func setupRouter() *echo.Echo {
	log := zap.NewNop()
	jwtSvc := service.NewJWTService("test-secret", time.Hour, log)

	e := echo.New()
	e.Validator = utils.NewValidator()

	InitRouter(e, Controllers{
		Auth:    controllers.NewAuthController(services.NewAuthService(nil, jwtSvc, log), log),
		Request: controllers.NewRequestController(services.NewRequestService(nil, nil, nil, log), log),
		Comment: controllers.NewCommentController(services.NewCommentService(nil, nil, log), log),
		Stats:   controllers.NewStatsController(services.NewStatsService(nil, nil, nil, time.Minute, log), log),
		User:    controllers.NewUserController(services.NewUserService(nil, log), log),
		Report:  controllers.NewReportController(services.NewReportService(nil, nil, log), log),
	}, jwtSvc, log)

	return e
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := setupRouter()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/requests"},
		{http.MethodPost, "/api/requests"},
		{http.MethodGet, "/api/requests/1"},
		{http.MethodPut, "/api/requests/1"},
		{http.MethodDelete, "/api/requests/1"},
		{http.MethodGet, "/api/requests/1/comments"},
		{http.MethodPost, "/api/requests/1/comments"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/specialists"},
		{http.MethodGet, "/api/stats/completed-count"},
		{http.MethodGet, "/api/stats/average-time"},
		{http.MethodGet, "/api/stats/problems"},
		{http.MethodGet, "/api/stats/all"},
		{http.MethodGet, "/api/stats/my"},
		{http.MethodGet, "/api/stats/users/1"},
		{http.MethodGet, "/api/reports/requests/export"},
	}

	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code,
			"%s %s должен требовать токен", route.method, route.path)
	}
}

func TestAuthRoutesOpen(t *testing.T) {
	e := setupRouter()

	// Невалидное тело: валидация срабатывает до обращения к базе,
	// значит маршрут открыт и дошел до контроллера.
	for _, path := range []string{"/api/auth/register", "/api/auth/login"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "маршрут %s открыт без токена", path)
	}
}

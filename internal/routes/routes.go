package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair-system/internal/controllers"
	"climate-repair-system/pkg/middleware"
	"climate-repair-system/pkg/service"
)

// Controllers — весь набор контроллеров приложения для регистрации
// маршрутов.
type Controllers struct {
	Auth    *controllers.AuthController
	Request *controllers.RequestController
	Comment *controllers.CommentController
	Stats   *controllers.StatsController
	User    *controllers.UserController
	Report  *controllers.ReportController
}

// InitRouter вешает все маршруты под /api. Регистрация и вход
// открыты, остальное за auth-middleware.
func InitRouter(e *echo.Echo, ctrls Controllers, jwtSvc service.JWTService, logger *zap.Logger) {
	api := e.Group("/api")

	runAuthRouter(api, ctrls.Auth, jwtSvc, logger)

	secure := api.Group("", middleware.AuthMiddleware(jwtSvc, logger))
	runRequestRouter(secure, ctrls.Request, ctrls.Comment)
	runUserRouter(secure, ctrls.User)
	runStatsRouter(secure, ctrls.Stats)
	runReportRouter(secure, ctrls.Report)
}

func runAuthRouter(api *echo.Group, ctrl *controllers.AuthController, jwtSvc service.JWTService, logger *zap.Logger) {
	auth := api.Group("/auth")
	auth.POST("/register", ctrl.Register)
	auth.POST("/login", ctrl.Login)
	auth.GET("/me", ctrl.Me, middleware.AuthMiddleware(jwtSvc, logger))
}

func runRequestRouter(secure *echo.Group, requestCtrl *controllers.RequestController, commentCtrl *controllers.CommentController) {
	requests := secure.Group("/requests")
	requests.GET("", requestCtrl.List)
	requests.POST("", requestCtrl.Create)
	requests.GET("/:id", requestCtrl.GetByID)
	requests.PUT("/:id", requestCtrl.Update)
	requests.DELETE("/:id", requestCtrl.Delete)

	requests.GET("/:id/comments", commentCtrl.ListByRequest)
	requests.POST("/:id/comments", commentCtrl.Create)
}

func runUserRouter(secure *echo.Group, ctrl *controllers.UserController) {
	users := secure.Group("/users")
	users.GET("", ctrl.GetAll)
	users.GET("/specialists", ctrl.GetSpecialists)
}

func runStatsRouter(secure *echo.Group, ctrl *controllers.StatsController) {
	stats := secure.Group("/stats")
	stats.GET("/completed-count", ctrl.CompletedCount)
	stats.GET("/average-time", ctrl.AverageTime)
	stats.GET("/problems", ctrl.Problems)
	stats.GET("/all", ctrl.All)
	stats.GET("/my", ctrl.My)
	stats.GET("/users/:id", ctrl.ByUser)
}

func runReportRouter(secure *echo.Group, ctrl *controllers.ReportController) {
	reports := secure.Group("/reports")
	reports.GET("/requests/export", ctrl.ExportRequests)
}

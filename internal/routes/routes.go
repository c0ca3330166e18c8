package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-system/internal/controllers"
	"employee-system/internal/repositories"
	"employee-system/internal/services"
	"employee-system/pkg/config"
	"employee-system/pkg/middleware"
	"employee-system/pkg/service"
)

// InitRouter wires repositories, services and controllers and registers every
// route under /api. Auth routes are public; everything else requires a valid
// access token.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	userRepo := repositories.NewUserRepository(dbConn)
	officeRepo := repositories.NewOfficeRepository(dbConn)
	employeeRepo := repositories.NewEmployeeRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	officeService := services.NewOfficeService(officeRepo, employeeRepo, logger)
	employeeService := services.NewEmployeeService(employeeRepo, officeRepo, cacheRepo, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, cacheRepo, cfg.Dashboard.CacheTTL, logger)

	authController := controllers.NewAuthController(authService, logger)
	officeController := controllers.NewOfficeController(officeService, logger)
	employeeController := controllers.NewEmployeeController(employeeService, dashboardService, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authController)
	runOfficeRouter(secureGroup, officeController, authMW)
	runEmployeeRouter(secureGroup, employeeController, authMW)

	logger.Info("routes registered")
}

// File: internal/router/router.go
package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "user-service/docs" // 引入 swag 產出的 docs
	"user-service/internal/apperror"
	"user-service/internal/cache"
	"user-service/internal/database"
	"user-service/internal/handler"
	"user-service/internal/handler/users"
	"user-service/internal/logging"
	"user-service/internal/validation"
)

// Use 依序掛上 request id、請求日誌、panic 復原與 CORS
func Use(e *echo.Echo, logger zerolog.Logger, allowedOrigins []string) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(logging.Middleware(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: allowedOrigins}))
}

// Setup 註冊所有路由；cch 可為 nil
func Setup(e *echo.Echo, db database.DB, cch cache.Cache) {
	e.Validator = validation.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler

	e.GET("/", handler.RootHandler)
	e.GET("/health", handler.HealthHandler(db, cch))
	e.GET("/api-docs/openapi.json", handler.OpenAPIHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	apiUsers := e.Group("/api/users")
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db))
	apiUsers.PUT("/:id", users.UpdateUserHandler(db))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db))
}

// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"

	"user-service/internal/api"
	"user-service/internal/apperror"
	"user-service/internal/cache"
	"user-service/internal/database"
)

// 測試可覆寫
var (
	now     = time.Now
	readDoc = func() (string, error) { return swag.ReadDoc() }
)

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 檢查資料庫連線；有設定 Redis 時一併檢查
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return apperror.Respond(c, apperror.Internal("database unhealthy", err))
		}
		// cch 為 nil 代表未設定 REDIS_ADDR
		if cch != nil {
			if err := cch.Ping(ctx).Err(); err != nil {
				return apperror.Respond(c, apperror.Internal("cache unhealthy", err))
			}
		}
		return c.JSON(http.StatusOK, api.HealthResponse{
			Status:    "ok",
			Timestamp: now().UTC().Format(time.RFC3339),
		})
	}
}

// RootHandler
// @Summary     Greeting
// @Tags        health
// @Produce     plain
// @Success     200 {string} string "Hello, World!"
// @Router      / [get]
func RootHandler(c echo.Context) error {
	return c.String(http.StatusOK, "Hello, World!")
}

// OpenAPIHandler 輸出已註冊的 API 文件
// @Summary     API document
// @Tags        docs
// @Produce     json
// @Success     200 {object} object
// @Failure     500 {object} api.ErrorResponse
// @Router      /api-docs/openapi.json [get]
func OpenAPIHandler(c echo.Context) error {
	doc, err := readDoc()
	if err != nil {
		return apperror.Respond(c, apperror.Internal("API document unavailable", err))
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

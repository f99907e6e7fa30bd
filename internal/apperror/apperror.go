// File: internal/apperror/apperror.go
package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"user-service/internal/api"
	"user-service/internal/validation"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
)

// 23505 unique_violation
const uniqueViolation = "23505"

const MsgEmailExists = "Email address already exists"

// Error 對外訊息固定為 Message；Err 只寫入日誌
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status 對應的 HTTP 狀態碼
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(msg string) *Error { return &Error{Kind: KindBadRequest, Message: msg} }

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// Classify 將任意錯誤歸類；無法辨識者回傳 Internal(fallback)
func Classify(err error, fallback string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return &Error{Kind: KindBadRequest, Message: "Validation errors: " + verrs.Error(), Err: err}
	}
	if IsUniqueViolation(err) {
		return &Error{Kind: KindBadRequest, Message: MsgEmailExists, Err: err}
	}
	return Internal(fallback, err)
}

// IsUniqueViolation 優先判斷 SQLSTATE，其次比對錯誤訊息
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// Respond 依類別記錄日誌並輸出 {"success": false, "message": ...}
func Respond(c echo.Context, e *Error) error {
	return respond(c, e.Status(), e)
}

func respond(c echo.Context, status int, e *Error) error {
	l := zerolog.Ctx(c.Request().Context())
	switch e.Kind {
	case KindInternal:
		l.Error().Err(e.Err).Int("status", status).Msg(e.Message)
	case KindBadRequest:
		l.Warn().Err(e.Err).Int("status", status).Msg(e.Message)
	default:
		l.Info().Int("status", status).Msg(e.Message)
	}
	if c.Request().Method == http.MethodHead {
		return c.NoContent(status)
	}
	return c.JSON(status, api.ErrorResponse{Success: false, Message: e.Message})
}

// HTTPErrorHandler 取代 echo 預設錯誤處理，框架錯誤保留原狀態碼
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok && s != "" {
			msg = s
		}
		_ = respond(c, he.Code, &Error{Kind: kindForStatus(he.Code), Message: msg, Err: he.Internal})
		return
	}

	_ = Respond(c, Classify(err, "Internal server error"))
}

func kindForStatus(code int) Kind {
	switch {
	case code == http.StatusNotFound:
		return KindNotFound
	case code >= 400 && code < 500:
		return KindBadRequest
	default:
		return KindInternal
	}
}

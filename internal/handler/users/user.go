package users

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"user-service/internal/api"
	"user-service/internal/apperror"
	"user-service/internal/database"
	"user-service/internal/store"
)

var (
	createUser  = store.CreateUser
	getUserByID = store.GetUserByID
	listUsers   = store.ListUsers
	updateUser  = store.UpdateUser
	deleteUser  = store.DeleteUser
)

const (
	msgInvalidID   = "Invalid user ID format"
	msgInvalidBody = "Invalid request body"
	msgNotFound    = "User not found"
)

// parseID 只接受 int4 (SERIAL) 範圍內的正整數
func parseID(c echo.Context) (int, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int(id), true
}

// @Summary     Create a new user
// @Description 建立使用者，active 預設為 true；Email 重複時回傳 400
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /api/users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return apperror.Respond(c, apperror.BadRequest(msgInvalidBody))
		}
		if err := c.Validate(&req); err != nil {
			return apperror.Respond(c, apperror.Classify(err, "Failed to create user"))
		}

		user, err := createUser(c.Request().Context(), db, req.Name, req.Email)
		if err != nil {
			return apperror.Respond(c, apperror.Classify(err, "Failed to create user"))
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// @Summary     Get a user by ID
// @Description 透過 ID 查詢並回傳使用者詳細資料
// @Tags        users
// @Produce     json
// @Param       id   path      int  true  "使用者 ID"
// @Success     200  {object}  api.UserResponse
// @Failure     400  {object}  api.ErrorResponse  "參數錯誤"
// @Failure     404  {object}  api.ErrorResponse  "使用者不存在"
// @Failure     500  {object}  api.ErrorResponse  "伺服器錯誤"
// @Router      /api/users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return apperror.Respond(c, apperror.BadRequest(msgInvalidID))
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return apperror.Respond(c, apperror.Classify(err, "Failed to get user"))
		}
		if user == nil {
			return apperror.Respond(c, apperror.NotFound(msgNotFound))
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     List users
// @Description 依建立時間由新到舊列出所有使用者
// @Tags        users
// @Produce     json
// @Success     200  {array}   api.UserResponse
// @Failure     500  {object}  api.ErrorResponse
// @Router      /api/users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return apperror.Respond(c, apperror.Classify(err, "Failed to list users"))
		}
		return c.JSON(http.StatusOK, api.NewUserResponses(list))
	}
}

// @Summary     Update a user by ID
// @Description 只更新請求中出現的欄位；空物件等同查詢
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "使用者 ID"
// @Param       body body     api.UpdateUserRequest true "欲更新的欄位"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /api/users/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return apperror.Respond(c, apperror.BadRequest(msgInvalidID))
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return apperror.Respond(c, apperror.BadRequest(msgInvalidBody))
		}
		if err := c.Validate(&req); err != nil {
			return apperror.Respond(c, apperror.Classify(err, "Failed to update user"))
		}

		user, err := updateUser(c.Request().Context(), db, id, req.Patch())
		if err != nil {
			return apperror.Respond(c, apperror.Classify(err, "Failed to update user"))
		}
		if user == nil {
			return apperror.Respond(c, apperror.NotFound(msgNotFound))
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Delete a user by ID
// @Description 根據使用者 ID 刪除使用者
// @Tags        users
// @Param       id   path      int  true  "使用者 ID"
// @Success     204  "No Content"
// @Failure     400  {object}  api.ErrorResponse  "參數錯誤"
// @Failure     404  {object}  api.ErrorResponse  "使用者不存在"
// @Failure     500  {object}  api.ErrorResponse  "伺服器錯誤"
// @Router      /api/users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return apperror.Respond(c, apperror.BadRequest(msgInvalidID))
		}
		deleted, err := deleteUser(c.Request().Context(), db, id)
		if err != nil {
			return apperror.Respond(c, apperror.Classify(err, "Failed to delete user"))
		}
		if !deleted {
			return apperror.Respond(c, apperror.NotFound(msgNotFound))
		}
		return c.NoContent(http.StatusNoContent)
	}
}

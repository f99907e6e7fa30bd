// File: internal/api/user_response.go
package api

import (
	"strconv"
	"time"

	"user-service/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        string `json:"id" example:"1"`
	Name      string `json:"name" example:"Jane Doe"`
	Email     string `json:"email" example:"jane@example.com"`
	Active    bool   `json:"active" example:"true"`
	CreatedAt string `json:"created_at" example:"2025-05-01T15:04:05.123456Z"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        strconv.Itoa(u.ID),
		Name:      u.Name,
		Email:     u.Email,
		Active:    u.Active,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// NewUserResponses 空輸入回傳空陣列，序列化為 []
func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

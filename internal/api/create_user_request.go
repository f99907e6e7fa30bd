// File: internal/api/create_user_request.go
package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name  string `json:"name" validate:"min=1" example:"Jane Doe"`
	Email string `json:"email" validate:"email,emaildomain" example:"jane@example.com"`
}

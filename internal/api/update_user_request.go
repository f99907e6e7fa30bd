// File: internal/api/update_user_request.go
package api

import "user-service/internal/model"

// UpdateUserRequest 欄位缺少或為 null 時不更新
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitnil,min=1" example:"Jane Roe"`
	Email  *string `json:"email" validate:"omitnil,email,emaildomain" example:"jane.roe@example.com"`
	Active *bool   `json:"active" example:"false"`
}

func (r UpdateUserRequest) Patch() model.UserPatch {
	return model.UserPatch{Name: r.Name, Email: r.Email, Active: r.Active}
}

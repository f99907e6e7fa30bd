// File: internal/api/error_response.go
package api

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"User not found"`
}

// HealthResponse 健康檢查結果
// swagger:model api.HealthResponse
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2025-05-01T15:04:05Z"`
}

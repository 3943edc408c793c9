package dto

// ErrorResponse 错误响应体
type ErrorResponse struct {
	Detail string `json:"detail"`
}

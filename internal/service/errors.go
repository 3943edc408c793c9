package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid = errors.New("Invalid parameter")
	ErrUserNotFound = errors.New("User not found")
	ErrPostNotFound = errors.New("Post not found")
)

// ErrorMap 业务错误到 HTTP 状态码的映射
var ErrorMap = map[error]int{
	ErrParamInvalid: http.StatusBadRequest,
	ErrUserNotFound: http.StatusNotFound,
	ErrPostNotFound: http.StatusNotFound,
}

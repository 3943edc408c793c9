package response

import (
	"SocialBoard/internal/api/dto"
	"SocialBoard/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Success 成功返回，直接输出资源本身
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Detail: message})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fe := ve[0]
		Fail(c, http.StatusBadRequest, fmt.Sprintf("field [%s] failed on rule [%s]", fe.Field(), fe.Tag()))
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, fmt.Sprintf("field [%s] must be %s", unmarshalTypeError.Field, unmarshalTypeError.Type))
		return
	}

	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		Fail(c, http.StatusBadRequest, "malformed json body")
		return
	}

	for target, code := range service.ErrorMap {
		if errors.Is(err, target) {
			Fail(c, code, target.Error())
			return
		}
	}

	log.ErrorContext(c.Request.Context(), "Unhandled error", "err", err)
	Fail(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

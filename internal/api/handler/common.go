package handler

import (
	"SocialBoard/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID 解析路径中的整数 id
func parseID(c *gin.Context, key string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}

// requiredQuery 读取必填的查询参数，允许空字符串
func requiredQuery(c *gin.Context, key string) (string, error) {
	value, ok := c.GetQuery(key)
	if !ok {
		return "", service.ErrParamInvalid
	}
	return value, nil
}

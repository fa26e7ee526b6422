package util

import (
	"errors"
	"net/http"
	"peer_edu_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// SuccessString 与旧版接口保持一致，直接返回 JSON 字符串 "success"
func SuccessString(c *gin.Context) {
	c.JSON(http.StatusOK, "success")
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c)
}

// HandleServiceError 按错误分类映射 HTTP 状态码
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case IsNotFound(err):
		Error(c, http.StatusNotFound, err.Error())
	case IsEmptyCollection(err):
		Error(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrInvalidAttemptNumber):
		BadRequest(c, err.Error())
	default:
		LogInternalError(c, err)
	}
}

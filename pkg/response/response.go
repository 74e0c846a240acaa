package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// ErrorBody 统一错误响应结构
// 设计说明:
// 1. kind是机器可读的错误类别,客户端据此分支
// 2. message是用户友好的提示信息,不包含内部堆栈
type ErrorBody struct {
	Kind    apperrors.Kind `json:"kind"`
	Message string         `json:"message"`
}

// OK 200响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204响应(无响应体)
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应(自动处理AppError)
// 用法:
//
//	result, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误挂到gin context,由日志中间件统一记录
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}

	c.JSON(appErr.HTTPStatus(), ErrorBody{
		Kind:    appErr.Kind,
		Message: appErr.Message,
	})
}

// ValidationError 参数校验失败响应
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Kind:    apperrors.KindValidation,
		Message: message,
	})
}

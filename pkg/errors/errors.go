package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误类别(机器可读)
// 设计说明:
// 1. Kind用于客户端判断错误类型,并决定HTTP状态码
// 2. Message是用户友好的提示信息
// 3. Err是内部错误,仅记录到日志,不返回给客户端(防止泄露敏感信息)
type Kind string

const (
	// KindValidation 输入校验失败(缺字段、类型错误、超长) → 400
	KindValidation Kind = "validation_error"

	// KindNotFound 资源不存在 → 404
	KindNotFound Kind = "not_found"

	// KindConflict 唯一性冲突 → 409
	KindConflict Kind = "conflict"

	// KindStorageUnavailable 存储层不可用(连接/事务失败) → 500
	KindStorageUnavailable Kind = "storage_unavailable"
)

// AppError 自定义应用错误
type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"` // 内部错误(不序列化)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus Kind → HTTP状态码
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindStorageUnavailable:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// New 创建新的AppError
func New(kind Kind, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(kind Kind, format string, args ...interface{}) *AppError {
	return &AppError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap 包装存储层错误(数据库连接、事务失败等)
// 用途:将底层错误转换为业务错误,隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Kind:    KindStorageUnavailable,
		Message: message,
		Err:     err,
	}
}

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError(不是AppError则包装成存储层错误)
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "internal error")
}

// KindOf 提取错误类别,非AppError返回KindStorageUnavailable
func KindOf(err error) Kind {
	return GetAppError(err).Kind
}

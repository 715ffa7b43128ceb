// Package errors maps domain errors to stable application error codes the
// presentation layer can render from: error kind plus the offending field or
// entity, without transport-level concepts.
package errors

import (
	"errors"
	"fmt"

	"github.com/kuyka38/mijawharati-sub000/domain/shared"
)

// ErrorCode 错误码
type ErrorCode string

const (
	// 通用错误码
	CodeInternal   ErrorCode = "INTERNAL_ERROR"
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	CodeStorage    ErrorCode = "STORAGE_ERROR"
	CodeIO         ErrorCode = "IO_ERROR"

	// 业务错误码
	CodeProductNotFound ErrorCode = "PRODUCT_NOT_FOUND"
	CodeMessageNotFound ErrorCode = "MESSAGE_NOT_FOUND"
)

// AppError 应用错误
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// 常用错误构造函数

func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func Validation(field, message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Field: field}
}

func Storage(message string) *AppError {
	return New(CodeStorage, message)
}

func IO(message string) *AppError {
	return New(CodeIO, message)
}

// 业务错误

func ProductNotFound() *AppError {
	return New(CodeProductNotFound, "product not found")
}

func MessageNotFound() *AppError {
	return New(CodeMessageNotFound, "message not found")
}

// Is 检查是否为特定错误码
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// MapDomainError 将领域错误映射为应用错误
// 领域层通过哨兵错误表达错误种类，这里翻译成稳定的展示层错误码
func MapDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	// 已经是 AppError
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var domainErr *shared.DomainError
	hasDomain := errors.As(err, &domainErr)

	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		field := ""
		type fielder interface{ Field() string }
		var f fielder
		if errors.As(err, &f) {
			field = f.Field()
		} else if hasDomain {
			field = domainErr.Field
		}
		return &AppError{Code: CodeValidation, Message: err.Error(), Field: field, Err: err}

	case errors.Is(err, shared.ErrNotFound):
		entity := ""
		type entitier interface{ Entity() string }
		var en entitier
		if errors.As(err, &en) {
			entity = en.Entity()
		} else if hasDomain {
			entity = domainErr.Entity
		}
		switch entity {
		case "product":
			return Wrap(err, CodeProductNotFound, err.Error())
		case "message":
			return Wrap(err, CodeMessageNotFound, err.Error())
		}
		return Wrap(err, CodeNotFound, err.Error())

	case errors.Is(err, shared.ErrStorage):
		return Wrap(err, CodeStorage, err.Error())

	case errors.Is(err, shared.ErrIO):
		return Wrap(err, CodeIO, err.Error())

	default:
		return Wrap(err, CodeInternal, err.Error())
	}
}

/*
Package shared - 领域层共享错误定义

设计原则:
1. 领域层定义哨兵错误(sentinel errors)，用于 errors.Is() 类型安全判断
2. DomainError 在创建时捕获堆栈，但延迟格式化（按需打印）
3. 领域错误不包含 HTTP 状态码等传输层概念
4. 使用标准库 errors，不依赖第三方包
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ============================================================================
// 哨兵错误 (Sentinel Errors)
// 用于 errors.Is() 判断错误类型，不携带具体信息
// ============================================================================

var (
	// ErrNotFound 资源未找到
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput 无效输入（参数校验失败）
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorage 持久化存储操作失败
	ErrStorage = errors.New("storage failure")

	// ErrIO 图片资源文件读写失败
	ErrIO = errors.New("io failure")
)

// ============================================================================
// 领域错误结构体 (Domain Error)
// 携带业务上下文和发生点堆栈，支持 errors.Is() 和 errors.As()
// ============================================================================

// DomainError 领域错误 - 携带业务上下文和堆栈的结构化错误
type DomainError struct {
	// Err 底层哨兵错误，用于 errors.Is() 判断
	Err error

	// Entity 发生错误的实体名称（如 "product", "message"）
	Entity string

	// Message 人类可读的错误描述
	Message string

	// Field 可选：发生错误的字段名（用于校验错误）
	Field string

	// stack 调用栈帧（私有），在创建时捕获，按需格式化
	stack []uintptr
}

// Error 实现 error 接口
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap 实现错误链，支持 errors.Is() 和 errors.As()
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stack 按需格式化堆栈（只在打印日志时调用）
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// ============================================================================
// 堆栈捕获辅助函数
// ============================================================================

// CaptureStack 捕获当前调用栈（导出供子领域包使用）
// skip: 跳过的帧数（通常为 3：Callers, CaptureStack, NewXxxError）
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack 格式化堆栈帧为字符串切片（导出供子领域包使用）
// 过滤 runtime 内部帧，最多返回 10 帧
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		// 过滤掉 runtime 内部帧
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// ============================================================================
// 领域错误构造函数
// 在创建时捕获堆栈，提供语义化的错误创建方式
// ============================================================================

// NewNotFoundError 创建"未找到"领域错误
// 堆栈从调用此函数的位置开始捕获
func NewNotFoundError(entity string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: entity + " not found",
		stack:   CaptureStack(3),
	}
}

// NewValidationError 创建"校验失败"领域错误
func NewValidationError(entity, field, reason string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// NewStorageError 包装持久化层错误
// 原始错误保留在错误链中：errors.Is 既能命中 ErrStorage 哨兵，也能命中底层驱动错误
func NewStorageError(entity string, cause error) error {
	return &DomainError{
		Err:     fmt.Errorf("%w: %w", ErrStorage, cause),
		Entity:  entity,
		Message: entity + " storage failure: " + cause.Error(),
		stack:   CaptureStack(3),
	}
}

// NewIOError 包装图片资源文件操作错误，原始错误保留在错误链中
func NewIOError(entity string, cause error) error {
	return &DomainError{
		Err:     fmt.Errorf("%w: %w", ErrIO, cause),
		Entity:  entity,
		Message: entity + " io failure: " + cause.Error(),
		stack:   CaptureStack(3),
	}
}

// ============================================================================
// Stacker 接口
// 用于日志层统一提取堆栈
// ============================================================================

// Stacker 可提供堆栈的错误接口
type Stacker interface {
	Stack() []string
}

/*
Package catalog 定义商品领域模型与领域错误。
*/
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kuyka38/mijawharati-sub000/domain/shared"
)

// 具体校验哨兵包装 shared.ErrInvalidInput，
// 调用方既可精确判断字段，也可统一判断"校验失败"这一类
var (
	ErrInvalidName  = fmt.Errorf("%w: product name cannot be empty", shared.ErrInvalidInput)
	ErrInvalidPrice = fmt.Errorf("%w: product price must be non-negative", shared.ErrInvalidInput)
	ErrInvalidPhone = fmt.Errorf("%w: contact phone cannot be empty", shared.ErrInvalidInput)
)

func NewProductNotFoundError(id int64) error {
	return &productDomainError{
		sentinel: shared.ErrNotFound,
		entity:   "product",
		message:  fmt.Sprintf("product not found: %d", id),
		stack:    shared.CaptureStack(3),
	}
}

func NewInvalidNameError() error {
	return &productDomainError{
		sentinel: ErrInvalidName,
		entity:   "product",
		field:    "name",
		message:  "product name cannot be empty",
		stack:    shared.CaptureStack(3),
	}
}

func NewInvalidPriceError(price decimal.Decimal) error {
	return &productDomainError{
		sentinel: ErrInvalidPrice,
		entity:   "product",
		field:    "price",
		message:  "product price must be non-negative, got: " + price.String(),
		stack:    shared.CaptureStack(3),
	}
}

func NewInvalidPhoneError() error {
	return &productDomainError{
		sentinel: ErrInvalidPhone,
		entity:   "product",
		field:    "phone",
		message:  "contact phone cannot be empty",
		stack:    shared.CaptureStack(3),
	}
}

type productDomainError struct {
	sentinel error
	entity   string
	field    string
	message  string
	stack    []uintptr
}

func (e *productDomainError) Error() string   { return e.message }
func (e *productDomainError) Unwrap() error   { return e.sentinel }
func (e *productDomainError) Entity() string  { return e.entity }
func (e *productDomainError) Field() string   { return e.field }
func (e *productDomainError) Stack() []string { return shared.FormatStack(e.stack) }

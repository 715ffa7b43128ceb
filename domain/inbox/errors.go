package inbox

import (
	"fmt"

	"github.com/kuyka38/mijawharati-sub000/domain/shared"
)

func NewMessageNotFoundError(id int64) error {
	return &messageDomainError{
		sentinel: shared.ErrNotFound,
		entity:   "message",
		message:  fmt.Sprintf("message not found: %d", id),
		stack:    shared.CaptureStack(3),
	}
}

type messageDomainError struct {
	sentinel error
	entity   string
	message  string
	stack    []uintptr
}

func (e *messageDomainError) Error() string   { return e.message }
func (e *messageDomainError) Unwrap() error   { return e.sentinel }
func (e *messageDomainError) Entity() string  { return e.entity }
func (e *messageDomainError) Stack() []string { return shared.FormatStack(e.stack) }

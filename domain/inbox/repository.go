package inbox

import (
	"context"
)

// Repository Contact message repository interface
type Repository interface {
	// Insert persists a new message and assigns its identity via
	// Message.AssignIdentity. The message must report IsNew().
	Insert(ctx context.Context, m *Message) error

	// Update replaces all fields of the stored record matching m.ID().
	// Returns a not-found domain error when the identity does not exist.
	Update(ctx context.Context, m *Message) error

	// Delete removes the record by identity.
	// Deleting an absent identity is a no-op, not an error.
	Delete(ctx context.Context, id int64) error

	// FindByID loads a single message by identity.
	// Returns (nil, nil) when the identity does not exist: the edit form
	// pre-fill treats absence as an empty form, not a failure.
	FindByID(ctx context.Context, id int64) (*Message, error)

	// FindAllNewestFirst returns all messages in reverse-creation order.
	FindAllNewestFirst(ctx context.Context) ([]*Message, error)
}

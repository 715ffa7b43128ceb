package catalog

import (
	"context"
)

// Repository Product repository interface
// DDD principles:
// 1. Repository only responsible for aggregate root persistence
// 2. Include context.Context to support timeout and cancellation
// 3. The favorites view is a filter over the same collection, never a
//    separately maintained set (so the two can never diverge)
type Repository interface {
	// Insert persists a new product and assigns its identity via
	// Product.AssignIdentity. The product must report IsNew().
	Insert(ctx context.Context, p *Product) error

	// Update replaces the stored record matching p.ID().
	// Returns a not-found domain error when the identity does not exist.
	Update(ctx context.Context, p *Product) error

	// Delete removes the record by identity.
	// Returns a not-found domain error when the identity does not exist.
	Delete(ctx context.Context, id int64) error

	// SetFavorite persists the favorite flag by identity.
	// Returns a not-found domain error when the identity does not exist.
	SetFavorite(ctx context.Context, id int64, favorite bool) error

	// FindByID loads a single product by identity.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll returns all products in persisted order.
	FindAll(ctx context.Context) ([]*Product, error)

	// FindFavorites returns the subset of products with favorite == true,
	// in persisted order.
	FindFavorites(ctx context.Context) ([]*Product, error)
}

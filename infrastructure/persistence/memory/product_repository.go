// Package memory provides in-memory repository implementations, used by the
// service tests and by the database.type "memory" configuration.
package memory

import (
	"context"
	"sync"

	"github.com/kuyka38/mijawharati-sub000/domain/catalog"
)

type ProductRepository struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	items  map[int64]catalog.ReconstructionDTO

	// FailNext makes the next mutating call fail with the given error,
	// for exercising storage-failure paths in tests.
	FailNext error
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		nextID: 1,
		items:  make(map[int64]catalog.ReconstructionDTO),
	}
}

func (r *ProductRepository) takeFailure() error {
	err := r.FailNext
	r.FailNext = nil
	return err
}

func (r *ProductRepository) Insert(ctx context.Context, p *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return err
	}

	p.AssignIdentity(r.nextID)
	r.nextID++

	r.items[p.ID()] = snapshotOf(p)
	r.order = append(r.order, p.ID())
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return err
	}

	if _, ok := r.items[p.ID()]; !ok {
		return catalog.NewProductNotFoundError(p.ID())
	}
	r.items[p.ID()] = snapshotOf(p)
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return err
	}

	if _, ok := r.items[id]; !ok {
		return catalog.NewProductNotFoundError(id)
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ProductRepository) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return err
	}

	dto, ok := r.items[id]
	if !ok {
		return catalog.NewProductNotFoundError(id)
	}
	dto.Favorite = favorite
	r.items[id] = dto
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dto, ok := r.items[id]
	if !ok {
		return nil, catalog.NewProductNotFoundError(id)
	}
	return catalog.RebuildFromDTO(dto), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	return r.findWhere(func(catalog.ReconstructionDTO) bool { return true })
}

func (r *ProductRepository) FindFavorites(ctx context.Context) ([]*catalog.Product, error) {
	return r.findWhere(func(dto catalog.ReconstructionDTO) bool { return dto.Favorite })
}

func (r *ProductRepository) findWhere(keep func(catalog.ReconstructionDTO) bool) ([]*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*catalog.Product, 0, len(r.order))
	for _, id := range r.order {
		dto := r.items[id]
		if keep(dto) {
			result = append(result, catalog.RebuildFromDTO(dto))
		}
	}
	return result, nil
}

func snapshotOf(p *catalog.Product) catalog.ReconstructionDTO {
	return catalog.ReconstructionDTO{
		ID:        p.ID(),
		Name:      p.Name(),
		Price:     p.Price(),
		Phone:     p.Phone(),
		ImageRef:  p.ImageRef(),
		Favorite:  p.IsFavorite(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

var _ catalog.Repository = (*ProductRepository)(nil)

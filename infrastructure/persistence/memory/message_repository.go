package memory

import (
	"context"
	"sync"

	"github.com/kuyka38/mijawharati-sub000/domain/inbox"
)

type MessageRepository struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	items  map[int64]inbox.ReconstructionDTO

	FailNext error
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		nextID: 1,
		items:  make(map[int64]inbox.ReconstructionDTO),
	}
}

func (r *MessageRepository) takeFailure() error {
	err := r.FailNext
	r.FailNext = nil
	return err
}

func (r *MessageRepository) Insert(ctx context.Context, m *inbox.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return err
	}

	m.AssignIdentity(r.nextID)
	r.nextID++

	r.items[m.ID()] = messageSnapshotOf(m)
	r.order = append(r.order, m.ID())
	return nil
}

func (r *MessageRepository) Update(ctx context.Context, m *inbox.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return err
	}

	if _, ok := r.items[m.ID()]; !ok {
		return inbox.NewMessageNotFoundError(m.ID())
	}
	r.items[m.ID()] = messageSnapshotOf(m)
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.takeFailure(); err != nil {
		return err
	}

	// Absent identity is a no-op per the inbox contract.
	if _, ok := r.items[id]; !ok {
		return nil
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

func (r *MessageRepository) FindByID(ctx context.Context, id int64) (*inbox.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dto, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return inbox.RebuildFromDTO(dto), nil
}

func (r *MessageRepository) FindAllNewestFirst(ctx context.Context) ([]*inbox.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*inbox.Message, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		result = append(result, inbox.RebuildFromDTO(r.items[r.order[i]]))
	}
	return result, nil
}

func messageSnapshotOf(m *inbox.Message) inbox.ReconstructionDTO {
	return inbox.ReconstructionDTO{
		ID:        m.ID(),
		Name:      m.Name(),
		Email:     m.Email(),
		Subject:   m.Subject(),
		Body:      m.Body(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

var _ inbox.Repository = (*MessageRepository)(nil)

// Package inbox implements the contact-message application service: create,
// edit-in-place, delete, and the newest-first message stream the inbox
// screen subscribes to.
package inbox

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kuyka38/mijawharati-sub000/domain/inbox"
	"github.com/kuyka38/mijawharati-sub000/domain/shared"
	"github.com/kuyka38/mijawharati-sub000/pkg/logger"
)

// MessageView 展示层使用的消息快照 DTO
type MessageView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageInput carries the submitted form fields. The service holds no
// notion of a "current edit target"; whether a submission is an insert or an
// edit-in-place is decided by the caller holding (or not holding) a loaded
// identity.
type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Service Contact inbox application service
type Service struct {
	repo inbox.Repository

	mu     sync.Mutex
	stream *shared.Stream[MessageView]
}

func NewService(repo inbox.Repository) *Service {
	return &Service{
		repo:   repo,
		stream: shared.NewStream[MessageView](),
	}
}

// Insert persists a new message, assigning its identity.
func (s *Service) Insert(ctx context.Context, input MessageInput) (*MessageView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := inbox.NewMessage(input.Name, input.Email, input.Subject, input.Body)
	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, err
	}

	logger.Info("Contact message received", zap.Int64("id", m.ID()))

	s.refresh(ctx)
	view := messageViewOf(m)
	return &view, nil
}

// Update edits an existing message in place: same identity, all fields
// replaced. Fails with a not-found error when the identity does not exist,
// leaving the store unchanged.
func (s *Service) Update(ctx context.Context, id int64, input MessageInput) (*MessageView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, inbox.NewMessageNotFoundError(id)
	}

	m.Edit(input.Name, input.Email, input.Subject, input.Body)
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	view := messageViewOf(m)
	return &view, nil
}

// Delete removes a message by identity; absent identities are a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.refresh(ctx)
	return nil
}

// GetByID loads a message for edit-form pre-fill. A missing identity
// returns (nil, nil): absence is an empty form, not a failure.
func (s *Service) GetByID(ctx context.Context, id int64) (*MessageView, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	view := messageViewOf(m)
	return &view, nil
}

// List returns all messages, newest first.
func (s *Service) List(ctx context.Context) ([]MessageView, error) {
	messages, err := s.repo.FindAllNewestFirst(ctx)
	if err != nil {
		return nil, err
	}
	return messageViewsOf(messages), nil
}

// Watch subscribes to the newest-first message stream. The current snapshot
// is delivered immediately; every successful mutation pushes a fresh one.
func (s *Service) Watch(ctx context.Context) (<-chan []MessageView, func(), error) {
	ch, cancel := s.stream.Subscribe(ctx)
	if err := s.prime(ctx); err != nil {
		cancel()
		return nil, nil, err
	}
	return ch, cancel, nil
}

func (s *Service) prime(ctx context.Context) error {
	messages, err := s.repo.FindAllNewestFirst(ctx)
	if err != nil {
		return err
	}
	s.stream.Publish(messageViewsOf(messages))
	return nil
}

func (s *Service) refresh(ctx context.Context) {
	if err := s.prime(ctx); err != nil {
		logger.Warn("Failed to publish inbox snapshot", zap.Error(err))
	}
}

func messageViewOf(m *inbox.Message) MessageView {
	return MessageView{
		ID:        m.ID(),
		Name:      m.Name(),
		Email:     m.Email(),
		Subject:   m.Subject(),
		Body:      m.Body(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

func messageViewsOf(messages []*inbox.Message) []MessageView {
	views := make([]MessageView, len(messages))
	for i, m := range messages {
		views[i] = messageViewOf(m)
	}
	return views
}

package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kuyka38/mijawharati-sub000/domain/inbox"
	"github.com/kuyka38/mijawharati-sub000/domain/shared"
	"github.com/kuyka38/mijawharati-sub000/infrastructure/persistence/sqlite/po"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *MessageRepository) Insert(ctx context.Context, m *inbox.Message) error {
	messagePO := po.FromMessageDomain(m)

	if err := r.getDB(ctx).Create(messagePO).Error; err != nil {
		return shared.NewStorageError("message", err)
	}

	m.AssignIdentity(messagePO.ID)
	return nil
}

func (r *MessageRepository) Update(ctx context.Context, m *inbox.Message) error {
	messagePO := po.FromMessageDomain(m)

	result := r.getDB(ctx).Model(&po.MessagePO{}).
		Where("id = ?", m.ID()).
		Updates(map[string]interface{}{
			"name":       messagePO.Name,
			"email":      messagePO.Email,
			"subject":    messagePO.Subject,
			"body":       messagePO.Body,
			"updated_at": messagePO.UpdatedAt,
		})

	if result.Error != nil {
		return shared.NewStorageError("message", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.getDB(ctx).Model(&po.MessagePO{}).Where("id = ?", m.ID()).Count(&count).Error; err != nil {
			return shared.NewStorageError("message", err)
		}
		if count == 0 {
			return inbox.NewMessageNotFoundError(m.ID())
		}
	}
	return nil
}

// Delete removes by identity; deleting an absent message is a no-op per the
// inbox contract.
func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	result := r.getDB(ctx).Where("id = ?", id).Delete(&po.MessagePO{})
	if result.Error != nil {
		return shared.NewStorageError("message", result.Error)
	}
	return nil
}

// FindByID returns (nil, nil) when the identity does not exist: the edit
// form treats absence as an empty form, not a failure.
func (r *MessageRepository) FindByID(ctx context.Context, id int64) (*inbox.Message, error) {
	var messagePO po.MessagePO

	result := r.getDB(ctx).First(&messagePO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, shared.NewStorageError("message", result.Error)
	}

	return messagePO.ToDomain(), nil
}

func (r *MessageRepository) FindAllNewestFirst(ctx context.Context) ([]*inbox.Message, error) {
	var messagePOs []po.MessagePO
	if err := r.getDB(ctx).Order("id DESC").Find(&messagePOs).Error; err != nil {
		return nil, shared.NewStorageError("message", err)
	}

	messages := make([]*inbox.Message, len(messagePOs))
	for i, messagePO := range messagePOs {
		messages[i] = messagePO.ToDomain()
	}
	return messages, nil
}

var _ inbox.Repository = (*MessageRepository)(nil)

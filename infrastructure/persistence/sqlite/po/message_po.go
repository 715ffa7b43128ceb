package po

import (
	"time"

	"github.com/kuyka38/mijawharati-sub000/domain/inbox"
)

type MessagePO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:255;not null"`
	Subject   string    `gorm:"size:255"`
	Body      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (MessagePO) TableName() string {
	return "messages"
}

func FromMessageDomain(m *inbox.Message) *MessagePO {
	return &MessagePO{
		ID:        m.ID(),
		Name:      m.Name(),
		Email:     m.Email(),
		Subject:   m.Subject(),
		Body:      m.Body(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

func (po *MessagePO) ToDomain() *inbox.Message {
	return inbox.RebuildFromDTO(inbox.ReconstructionDTO{
		ID:        po.ID,
		Name:      po.Name,
		Email:     po.Email,
		Subject:   po.Subject,
		Body:      po.Body,
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	})
}

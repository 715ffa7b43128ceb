/*
Package inbox 定义联系消息领域模型：创建、原地编辑、删除。
*/
package inbox

import (
	"time"
)

// Message 联系消息实体
// 标识由存储层在首次持久化时分配（id == 0 表示尚未持久化）
type Message struct {
	id        int64
	name      string
	email     string
	subject   string
	body      string
	createdAt time.Time
	updatedAt time.Time
}

// NewMessage 创建新联系消息
func NewMessage(name, email, subject, body string) *Message {
	now := time.Now()
	return &Message{
		name:      name,
		email:     email,
		subject:   subject,
		body:      body,
		createdAt: now,
		updatedAt: now,
	}
}

// Edit 原地编辑：同一标识，替换全部字段
// 这是"编辑后重新提交"流程的领域表达，不会产生新实体
func (m *Message) Edit(name, email, subject, body string) {
	m.name = name
	m.email = email
	m.subject = subject
	m.body = body
	m.updatedAt = time.Now()
}

// IsNew 标识尚未持久化
func (m *Message) IsNew() bool { return m.id == 0 }

// AssignIdentity 由仓储在首次插入后回写存储层分配的标识
// ⚠️ 注意：此方法仅应在仓储实现中使用
func (m *Message) AssignIdentity(id int64) { m.id = id }

func (m *Message) ID() int64            { return m.id }
func (m *Message) Name() string         { return m.name }
func (m *Message) Email() string        { return m.email }
func (m *Message) Subject() string      { return m.subject }
func (m *Message) Body() string         { return m.body }
func (m *Message) CreatedAt() time.Time { return m.createdAt }
func (m *Message) UpdatedAt() time.Time { return m.updatedAt }

// ReconstructionDTO 消息重建数据传输对象，仅限仓储层使用
type ReconstructionDTO struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RebuildFromDTO 从 DTO 重建 Message 实体，仅限仓储层使用
func RebuildFromDTO(dto ReconstructionDTO) *Message {
	return &Message{
		id:        dto.ID,
		name:      dto.Name,
		email:     dto.Email,
		subject:   dto.Subject,
		body:      dto.Body,
		createdAt: dto.CreatedAt,
		updatedAt: dto.UpdatedAt,
	}
}

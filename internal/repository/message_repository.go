package repository

import (
	"gorm.io/gorm"

	"webtoon-chat-go/internal/model"
)

// MessageRepository 接口定义了消息的持久化操作。
type MessageRepository interface {
	Create(message *model.Message) error
	FindByRoomID(roomID uint) ([]model.Message, error)
}

// messageRepository 是 MessageRepository 接口的 GORM 实现。
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建一个新的 MessageRepository 实例。
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create 在数据库中追加一条消息记录，GORM 在每次调用后立即提交。
func (r *messageRepository) Create(message *model.Message) error {
	return r.db.Create(message).Error
}

// FindByRoomID 按创建顺序检索房间内的全部消息。
func (r *messageRepository) FindByRoomID(roomID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.Where("room_id = ?", roomID).Order("id ASC").Find(&messages).Error
	return messages, err
}

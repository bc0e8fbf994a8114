package repository

import (
	"gorm.io/gorm"

	"webtoon-chat-go/internal/model"
)

// RoomRepository 接口定义了聊天房间的持久化操作。
type RoomRepository interface {
	Create(room *model.ChatRoom) error
	FindByID(roomID uint) (*model.ChatRoom, error)
	FindByUserAndCharacter(userID, characterID uint) (*model.ChatRoom, error)
}

// roomRepository 是 RoomRepository 接口的 GORM 实现。
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository 创建一个新的 RoomRepository 实例。
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

// Create 在数据库中创建一个新的房间记录。
func (r *roomRepository) Create(room *model.ChatRoom) error {
	return r.db.Create(room).Error
}

// FindByID 根据房间 ID 从数据库中查找一个房间。
func (r *roomRepository) FindByID(roomID uint) (*model.ChatRoom, error) {
	var room model.ChatRoom
	err := r.db.First(&room, roomID).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByUserAndCharacter 根据 (用户, 角色) 配对查找已存在的房间。
func (r *roomRepository) FindByUserAndCharacter(userID, characterID uint) (*model.ChatRoom, error) {
	var room model.ChatRoom
	err := r.db.Where("user_id = ? AND character_id = ?", userID, characterID).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

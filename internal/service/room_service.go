package service

import (
	"errors"

	"gorm.io/gorm"

	"webtoon-chat-go/internal/model"
	"webtoon-chat-go/internal/repository"
)

// RoomService 定义了聊天房间相关的业务操作。
type RoomService interface {
	GetOrCreate(userID, characterID uint) (*model.ChatRoom, error)
	ListMessages(roomID uint) ([]model.Message, error)
}

type roomService struct {
	roomRepo    repository.RoomRepository
	messageRepo repository.MessageRepository
}

// NewRoomService 创建一个新的 RoomService 实例。
func NewRoomService(roomRepo repository.RoomRepository, messageRepo repository.MessageRepository) RoomService {
	return &roomService{roomRepo: roomRepo, messageRepo: messageRepo}
}

// GetOrCreate 幂等地创建房间：同一 (用户, 角色) 配对已有房间时直接返回该房间。
func (s *roomService) GetOrCreate(userID, characterID uint) (*model.ChatRoom, error) {
	existing, err := s.roomRepo.FindByUserAndCharacter(userID, characterID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room := &model.ChatRoom{UserID: userID, CharacterID: characterID}
	if err := s.roomRepo.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}

// ListMessages 按创建顺序返回房间的全部消息。
func (s *roomService) ListMessages(roomID uint) ([]model.Message, error) {
	return s.messageRepo.FindByRoomID(roomID)
}

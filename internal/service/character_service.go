package service

import (
	"errors"

	"gorm.io/gorm"

	"webtoon-chat-go/internal/model"
	"webtoon-chat-go/internal/repository"
)

// CharacterService 定义了角色档案相关的业务操作。
type CharacterService interface {
	Create(character *model.Character) error
	List() ([]model.Character, error)
	Get(characterID uint) (*model.Character, error)
}

type characterService struct {
	characterRepo repository.CharacterRepository
}

// NewCharacterService 创建一个新的 CharacterService 实例。
func NewCharacterService(characterRepo repository.CharacterRepository) CharacterService {
	return &characterService{characterRepo: characterRepo}
}

// Create 创建一个新的角色档案。
func (s *characterService) Create(character *model.Character) error {
	return s.characterRepo.Create(character)
}

// List 返回所有角色档案。
func (s *characterService) List() ([]model.Character, error) {
	return s.characterRepo.FindAll()
}

// Get 按 ID 返回单个角色档案。
func (s *characterService) Get(characterID uint) (*model.Character, error) {
	character, err := s.characterRepo.FindByID(characterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, err
	}
	return character, nil
}

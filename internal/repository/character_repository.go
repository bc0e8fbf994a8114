package repository

import (
	"gorm.io/gorm"

	"webtoon-chat-go/internal/model"
)

// CharacterRepository 接口定义了角色档案的持久化操作。
type CharacterRepository interface {
	Create(character *model.Character) error
	FindAll() ([]model.Character, error)
	FindByID(characterID uint) (*model.Character, error)
}

// characterRepository 是 CharacterRepository 接口的 GORM 实现。
type characterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository 创建一个新的 CharacterRepository 实例。
func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &characterRepository{db: db}
}

// Create 在数据库中创建一个新的角色记录。
func (r *characterRepository) Create(character *model.Character) error {
	return r.db.Create(character).Error
}

// FindAll 从数据库中检索所有角色记录。
func (r *characterRepository) FindAll() ([]model.Character, error) {
	var characters []model.Character
	err := r.db.Find(&characters).Error
	return characters, err
}

// FindByID 根据角色 ID 从数据库中查找一个角色。
func (r *characterRepository) FindByID(characterID uint) (*model.Character, error) {
	var character model.Character
	err := r.db.First(&character, characterID).Error
	if err != nil {
		return nil, err
	}
	return &character, nil
}

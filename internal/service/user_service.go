// Package service 包含了应用的业务逻辑层。
package service

import (
	"webtoon-chat-go/internal/model"
	"webtoon-chat-go/internal/repository"
)

// UserService 定义了用户相关的业务操作。
type UserService interface {
	Signup(user *model.User) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建一个新的 UserService 实例。
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Signup 注册一个新用户。webtoon_level 未提供时默认为 1。
func (s *userService) Signup(user *model.User) error {
	if user.WebtoonLevel == 0 {
		user.WebtoonLevel = 1
	}
	return s.userRepo.Create(user)
}

// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webtoon-chat-go/internal/model"
	"webtoon-chat-go/internal/service"
	"webtoon-chat-go/pkg/log"
)

// UserHandler 负责处理所有与用户相关的 API 请求。
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler 创建一个新的 UserHandler 实例。
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SignupRequest 定义了用户注册 API 的请求体结构。
type SignupRequest struct {
	Nickname     string `json:"nickname" binding:"required"`
	BirthDate    string `json:"birth_date"`
	MBTI         string `json:"mbti"`
	Gender       string `json:"gender"`
	WebtoonLevel int    `json:"webtoon_level"`
}

// Signup 处理用户注册请求。
func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupRequest
	// 绑定并验证 JSON 请求体
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("Signup: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的请求负载：nickname 不能为空",
		})
		return
	}

	user := &model.User{
		Nickname:     req.Nickname,
		BirthDate:    req.BirthDate,
		MBTI:         req.MBTI,
		Gender:       req.Gender,
		WebtoonLevel: req.WebtoonLevel,
	}
	if err := h.userService.Signup(user); err != nil {
		log.Error("Signup: Failed to create user", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "用户创建失败",
		})
		return
	}

	log.Infof("User '%s' signed up successfully, id=%d", user.Nickname, user.ID)
	c.JSON(http.StatusCreated, user)
}

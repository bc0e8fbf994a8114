package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webtoon-chat-go/internal/model"
	"webtoon-chat-go/internal/service"
	"webtoon-chat-go/pkg/log"
)

// CharacterHandler 负责处理角色档案相关的 API 请求。
type CharacterHandler struct {
	characterService service.CharacterService
}

// NewCharacterHandler 创建一个新的 CharacterHandler 实例。
func NewCharacterHandler(characterService service.CharacterService) *CharacterHandler {
	return &CharacterHandler{characterService: characterService}
}

// CreateCharacterRequest 定义了创建角色 API 的请求体结构。
// 档案字段全部必填，缺失即拒绝，不会触碰数据库。
type CreateCharacterRequest struct {
	Name         string `json:"name" binding:"required"`
	WebtoonTitle string `json:"webtoon_title" binding:"required"`
	School       string `json:"school" binding:"required"`
	Age          int    `json:"age" binding:"required"`
	Physical     string `json:"physical" binding:"required"`
	BloodType    string `json:"bloodtype" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Family       string `json:"family" binding:"required"`
	Likes        string `json:"likes" binding:"required"`
	Dislikes     string `json:"dislikes" binding:"required"`
	Personality  string `json:"personality" binding:"required"`
	SpeechStyle  string `json:"speech_style" binding:"required"`
	ProfileImg   string `json:"profile_img"`
}

// Create 处理创建角色档案的请求。
func (h *CharacterHandler) Create(c *gin.Context) {
	var req CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("CreateCharacter: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的请求负载：角色档案字段不完整",
		})
		return
	}

	character := &model.Character{
		Name:         req.Name,
		WebtoonTitle: req.WebtoonTitle,
		School:       req.School,
		Age:          req.Age,
		Physical:     req.Physical,
		BloodType:    req.BloodType,
		Location:     req.Location,
		Family:       req.Family,
		Likes:        req.Likes,
		Dislikes:     req.Dislikes,
		Personality:  req.Personality,
		SpeechStyle:  req.SpeechStyle,
		ProfileImg:   req.ProfileImg,
	}
	if err := h.characterService.Create(character); err != nil {
		log.Error("CreateCharacter: Failed to create character", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "角色创建失败",
		})
		return
	}

	log.Infof("Character '%s' (%s) created, id=%d", character.Name, character.WebtoonTitle, character.ID)
	c.JSON(http.StatusCreated, character)
}

// List 返回所有角色档案。
func (h *CharacterHandler) List(c *gin.Context) {
	characters, err := h.characterService.List()
	if err != nil {
		log.Error("ListCharacters: Failed to list characters", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "角色列表查询失败",
		})
		return
	}
	c.JSON(http.StatusOK, characters)
}

// Get 按 ID 返回单个角色档案。
func (h *CharacterHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的角色 ID",
		})
		return
	}

	character, err := h.characterService.Get(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCharacterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"code":    http.StatusNotFound,
				"message": "Character not found",
			})
			return
		}
		log.Error("GetCharacter: Failed to load character", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "角色查询失败",
		})
		return
	}
	c.JSON(http.StatusOK, character)
}

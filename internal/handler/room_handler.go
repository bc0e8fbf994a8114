package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webtoon-chat-go/internal/service"
	"webtoon-chat-go/pkg/log"
)

// RoomHandler 负责处理聊天房间相关的 API 请求。
type RoomHandler struct {
	roomService service.RoomService
}

// NewRoomHandler 创建一个新的 RoomHandler 实例。
func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// CreateRoomRequest 定义了创建房间 API 的请求体结构。
type CreateRoomRequest struct {
	UserID      uint `json:"user_id" binding:"required"`
	CharacterID uint `json:"character_id" binding:"required"`
}

// Create 处理创建房间的请求，对同一 (用户, 角色) 配对幂等。
func (h *RoomHandler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("CreateRoom: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的请求负载：user_id 和 character_id 不能为空",
		})
		return
	}

	room, err := h.roomService.GetOrCreate(req.UserID, req.CharacterID)
	if err != nil {
		log.Error("CreateRoom: Failed to get or create room", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "房间创建失败",
		})
		return
	}

	c.JSON(http.StatusOK, room)
}

// ListMessages 按创建顺序返回房间的全部消息。
func (h *RoomHandler) ListMessages(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("roomID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的房间 ID",
		})
		return
	}

	messages, err := h.roomService.ListMessages(uint(roomID))
	if err != nil {
		log.Error("ListMessages: Failed to list messages", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "消息列表查询失败",
		})
		return
	}
	c.JSON(http.StatusOK, messages)
}

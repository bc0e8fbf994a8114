package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webtoon-chat-go/internal/service"
	"webtoon-chat-go/pkg/log"
)

// ChatHandler 负责处理对话轮次的 API 请求。
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler 创建一个新的 ChatHandler 实例。
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SendMessageRequest 定义了发送消息 API 的请求体结构。
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
	Sender  string `json:"sender"`
}

// SendMessage 处理一轮对话：接收用户消息，返回机器人回复。
func (h *ChatHandler) SendMessage(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("roomID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的房间 ID",
		})
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("SendMessage: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的请求负载：content 不能为空",
		})
		return
	}

	log.Infof("message received in room %d: %s", roomID, req.Content)

	botMsg, err := h.chatService.SendMessage(c.Request.Context(), uint(roomID), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"code":    http.StatusNotFound,
				"message": "Room not found",
			})
		case errors.Is(err, service.ErrCompletionFailed):
			// 所有上游失败折叠为同一个不透明的服务端错误
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "Completion API Error",
			})
		default:
			log.Error("SendMessage: chat turn failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "消息处理失败",
			})
		}
		return
	}

	c.JSON(http.StatusOK, botMsg)
}

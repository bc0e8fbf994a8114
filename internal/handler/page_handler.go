package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler 负责渲染两个静态页面视图，不包含业务逻辑。
type PageHandler struct{}

// NewPageHandler 创建一个新的 PageHandler 实例。
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home 渲染角色选择落地页。
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

// ChatPage 渲染指定房间的聊天页面。
func (h *PageHandler) ChatPage(c *gin.Context) {
	c.HTML(http.StatusOK, "chat.html", gin.H{
		"room_id": c.Param("roomID"),
	})
}

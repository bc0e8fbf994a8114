package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"webtoon-chat-go/internal/middleware"
	"webtoon-chat-go/internal/service"
)

// SetupRouter 组装 gin 引擎并注册全部路由。
// templatesGlob 指向 HTML 模板目录（测试时传入相对于测试包的路径）。
func SetupRouter(
	userService service.UserService,
	characterService service.CharacterService,
	roomService service.RoomService,
	chatService service.ChatService,
	templatesGlob string,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.LoadHTMLGlob(templatesGlob)

	pageHandler := NewPageHandler()
	r.GET("/", pageHandler.Home)
	r.GET("/chat/:roomID", pageHandler.ChatPage)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/signup", NewUserHandler(userService).Signup)
		}

		characters := api.Group("/characters")
		{
			characterHandler := NewCharacterHandler(characterService)
			characters.POST("", characterHandler.Create)
			characters.GET("", characterHandler.List)
			characters.GET("/:id", characterHandler.Get)
		}

		chat := api.Group("/chat")
		{
			roomHandler := NewRoomHandler(roomService)
			chat.POST("/rooms", roomHandler.Create)
			chat.GET("/rooms/:roomID/messages", roomHandler.ListMessages)
			chat.POST("/rooms/:roomID/messages", NewChatHandler(chatService).SendMessage)
		}
	}

	return r
}

// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"webtoon-chat-go/internal/config"
	"webtoon-chat-go/internal/handler"
	"webtoon-chat-go/internal/repository"
	"webtoon-chat-go/internal/service"
	"webtoon-chat-go/pkg/database"
	"webtoon-chat-go/pkg/llm"
	"webtoon-chat-go/pkg/log"
)

func main() {
	// 1. 加载 .env 文件（OPENAI_API_KEY 等凭证），再初始化配置
	_ = godotenv.Load()
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 初始化数据库并在启动时自动建表
	db, err := database.Connect(cfg.Database.SQLite.Path)
	if err != nil {
		log.Fatal("failed to connect database", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", err)
	}

	// 4. 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// 5. 初始化 Service (依赖注入)
	llmClient := llm.NewClient(cfg.LLM)
	userService := service.NewUserService(userRepo)
	characterService := service.NewCharacterService(characterRepo)
	roomService := service.NewRoomService(roomRepo, messageRepo)
	chatService := service.NewChatService(roomRepo, characterRepo, messageRepo, llmClient)

	// 6. 设置 Gin 模式并注册路由
	gin.SetMode(cfg.Server.Mode)
	r := handler.SetupRouter(userService, characterService, roomService, chatService, "web/templates/*")

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("HTTP 服务器关闭失败", err)
	}
	log.Info("服务已优雅关闭")
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"webtoon-chat-go/internal/model"
	"webtoon-chat-go/internal/repository"
	"webtoon-chat-go/pkg/llm"
	"webtoon-chat-go/pkg/log"
)

// ChatService 定义了一轮对话的编排操作。
type ChatService interface {
	SendMessage(ctx context.Context, roomID uint, content string) (*model.Message, error)
}

type chatService struct {
	roomRepo      repository.RoomRepository
	characterRepo repository.CharacterRepository
	messageRepo   repository.MessageRepository
	llmClient     llm.Client
}

// NewChatService 创建一个新的 ChatService 实例。
func NewChatService(
	roomRepo repository.RoomRepository,
	characterRepo repository.CharacterRepository,
	messageRepo repository.MessageRepository,
	llmClient llm.Client,
) ChatService {
	return &chatService{
		roomRepo:      roomRepo,
		characterRepo: characterRepo,
		messageRepo:   messageRepo,
		llmClient:     llmClient,
	}
}

// SendMessage 编排一轮完整的对话：
// 先落库用户消息，再查房间和角色，渲染人设提示词并调用补全服务，
// 最后落库并返回机器人回复。
// 用户消息在房间校验之前写入；房间不存在或上游失败时该消息仍然保留。
func (s *chatService) SendMessage(ctx context.Context, roomID uint, content string) (*model.Message, error) {
	// 1. 先持久化用户消息，保证外部调用失败时消息不丢失
	userMsg := &model.Message{RoomID: roomID, Sender: model.SenderUser, Content: content}
	if err := s.messageRepo.Create(userMsg); err != nil {
		return nil, fmt.Errorf("failed to persist user message: %w", err)
	}

	// 2. 查找房间，不存在则直接终止，不做无谓的外部调用
	room, err := s.roomRepo.FindByID(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", roomID, err)
	}

	// 3. 通过外键显式查询角色档案
	character, err := s.characterRepo.FindByID(room.CharacterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load character %d: %w", room.CharacterID, err)
	}

	// 4. 单次调用：仅发送人设 system 消息和最新的一条用户消息，不回放历史
	reply, err := s.llmClient.Chat(ctx, []llm.Message{
		{Role: "system", Content: buildPersonaPrompt(character)},
		{Role: "user", Content: content},
	})
	if err != nil {
		// 网络、配额、响应格式等所有上游失败折叠为同一个错误，不重试
		log.Errorf("completion call failed for room %d: %v", roomID, err)
		return nil, ErrCompletionFailed
	}

	// 5. 持久化机器人回复
	botMsg := &model.Message{RoomID: roomID, Sender: model.SenderBot, Content: reply}
	if err := s.messageRepo.Create(botMsg); err != nil {
		return nil, fmt.Errorf("failed to persist bot message: %w", err)
	}

	log.Infof("chat turn completed in room %d, reply length %d", roomID, len(reply))
	return botMsg, nil
}

// buildPersonaPrompt 将角色档案渲染为固定的人设提示词模板。
// 纯函数：相同的角色行总是产生相同的提示词。
func buildPersonaPrompt(ch *model.Character) string {
	var sys strings.Builder
	sys.WriteString(fmt.Sprintf("당신은 웹툰 '%s'의 캐릭터 '%s'입니다.\n", ch.WebtoonTitle, ch.Name))
	sys.WriteString("다음 정보를 바탕으로 캐릭터에 완전히 빙의해서 대화하세요.\n\n")
	sys.WriteString("[프로필]\n")
	sys.WriteString(fmt.Sprintf("- 학교: %s\n", ch.School))
	sys.WriteString(fmt.Sprintf("- 나이: %d세\n", ch.Age))
	sys.WriteString(fmt.Sprintf("- 특징: %s, %s, %s 거주\n", ch.Physical, ch.BloodType, ch.Location))
	sys.WriteString(fmt.Sprintf("- 가족: %s\n", ch.Family))
	sys.WriteString(fmt.Sprintf("- 좋아하는 것: %s\n", ch.Likes))
	sys.WriteString(fmt.Sprintf("- 싫어하는 것: %s\n\n", ch.Dislikes))
	sys.WriteString("[성격 및 말투]\n")
	sys.WriteString(fmt.Sprintf("- 성격: %s\n", ch.Personality))
	sys.WriteString(fmt.Sprintf("- 말투: %s", ch.SpeechStyle))
	return sys.String()
}

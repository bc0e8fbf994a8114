package model

import "time"

// 消息发送者的两种取值。
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatRoom 是一个用户与一个角色的配对，同一配对最多存在一个房间。
// 实体为纯数据记录，关联行由 service 层通过外键显式查询。
type ChatRoom struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_rooms_user_character" json:"user_id"`
	CharacterID uint      `gorm:"not null;uniqueIndex:idx_rooms_user_character" json:"character_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ChatRoom) TableName() string {
	return "chat_rooms"
}

// Message 是房间内的一条消息，只追加不修改，按创建顺序排列。
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"index;not null" json:"room_id"`
	Sender    string    `json:"sender"` // "user" 或 "bot"
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

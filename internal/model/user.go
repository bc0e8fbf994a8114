// Package model 包含了应用的数据模型定义。
package model

// User 代表一个注册用户及其基本偏好信息。
// 用户在注册后不再被修改或删除。
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Nickname     string `gorm:"not null" json:"nickname"`
	BirthDate    string `json:"birth_date"`
	MBTI         string `gorm:"column:mbti;size:4" json:"mbti"`
	Gender       string `json:"gender"`
	WebtoonLevel int    `gorm:"default:1" json:"webtoon_level"`
}

func (User) TableName() string {
	return "users"
}

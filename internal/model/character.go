package model

// Character 代表一个webtoon角色的完整人设档案。
// 所有描述字段都会被渲染进系统提示词中，创建后不可变。
type Character struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	WebtoonTitle string `gorm:"not null" json:"webtoon_title"`
	School       string `json:"school"`
	Age          int    `json:"age"`
	Physical     string `json:"physical"`
	BloodType    string `json:"bloodtype"`
	Location     string `json:"location"`
	Family       string `json:"family"`
	Likes        string `json:"likes"`
	Dislikes     string `json:"dislikes"`
	Personality  string `json:"personality"`
	SpeechStyle  string `json:"speech_style"`
	ProfileImg   string `json:"profile_img"`
}

func (Character) TableName() string {
	return "characters"
}

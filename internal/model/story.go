package model

// Story 用户提交的小故事，附带提交时计算的文本统计
// swagger:model Story
type Story struct {
	UUIDBase
	Date        string `gorm:"size:10;index" json:"date"`
	Text        string `gorm:"type:text;not null" json:"text"`
	Tokens      int    `gorm:"not null" json:"tokens"`
	UniqueWords int    `gorm:"not null" json:"unique_words"`
	GreHits     int    `gorm:"not null" json:"gre_hits"` // 0-2：单词命中+习语命中
}

func (Story) TableName() string {
	return "stories"
}

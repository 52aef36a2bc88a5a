package model

// 可读性等级
const (
	ReadabilityConcise  = "concise"
	ReadabilityBalanced = "balanced"
	ReadabilityWordy    = "wordy"
)

// Feedback 针对某个故事生成的启发式写作反馈，一个故事可以累积多条
// swagger:model Feedback
type Feedback struct {
	UUIDBase
	StoryID     string   `gorm:"type:varchar(36);index;not null" json:"story_id"`
	Readability string   `gorm:"size:20;not null" json:"readability"` // concise|balanced|wordy
	Strengths   []string `gorm:"type:json;serializer:json" json:"strengths"`
	Suggestions []string `gorm:"type:json;serializer:json" json:"suggestions"`
	BestVersion string   `gorm:"type:text" json:"best_version"`
	Score       int      `gorm:"not null" json:"score"` // 0-100
}

func (Feedback) TableName() string {
	return "feedbacks"
}

package model

// PracticeAnswer 单题判分明细
// swagger:model PracticeAnswer
type PracticeAnswer struct {
	Prompt    string `json:"prompt"`
	Chosen    int    `json:"chosen"`
	Correct   int    `json:"correct"`
	IsCorrect bool   `json:"is_correct"`
}

// PracticeResult 一次测验的判分结果，total固定为题目数5
// swagger:model PracticeResult
type PracticeResult struct {
	UUIDBase
	Date      string           `gorm:"size:10;index" json:"date"`
	Correct   int              `gorm:"not null" json:"correct"`
	Total     int              `gorm:"not null" json:"total"`
	Breakdown []PracticeAnswer `gorm:"type:json;serializer:json" json:"breakdown"`
}

func (PracticeResult) TableName() string {
	return "practice_results"
}

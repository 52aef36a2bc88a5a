package model

// 时间线事件类型
const (
	EventKindStory     = "story"
	EventKindFeedback  = "feedback"
	EventKindPractice  = "practice"
	EventKindMilestone = "milestone"
)

// TimelineEvent 活动时间线事件，只追加不修改
// swagger:model TimelineEvent
type TimelineEvent struct {
	UUIDBase
	Kind   string `gorm:"size:20;index;not null" json:"kind"` // story|feedback|practice|milestone
	Title  string `gorm:"size:255;not null" json:"title"`
	Detail string `gorm:"size:255" json:"detail"`
	RefID  string `gorm:"type:varchar(36)" json:"ref_id"` // 触发事件的实体ID
	Date   string `gorm:"size:10;index" json:"date"`
}

func (TimelineEvent) TableName() string {
	return "timeline_events"
}

package repository

import (
	"fluentleap_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(feedback *model.Feedback) error {
	return r.DB.Create(feedback).Error
}

// ListByStoryID 一个故事可以有多条反馈，按创建时间升序
func (r *FeedbackRepository) ListByStoryID(storyID string) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.DB.Where("story_id = ?", storyID).Order("created_at ASC").Find(&feedbacks).Error
	return feedbacks, err
}

package repository

import (
	"fluentleap_backend/internal/model"

	"gorm.io/gorm"
)

type TimelineRepository struct {
	DB *gorm.DB
}

func NewTimelineRepository(db *gorm.DB) *TimelineRepository {
	return &TimelineRepository{DB: db}
}

func (r *TimelineRepository) Create(event *model.TimelineEvent) error {
	return r.DB.Create(event).Error
}

// ListRecent 按创建时间倒序返回最近limit条事件
func (r *TimelineRepository) ListRecent(limit int) ([]model.TimelineEvent, error) {
	var events []model.TimelineEvent
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&events).Error
	return events, err
}

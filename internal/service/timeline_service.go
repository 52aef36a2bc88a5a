package service

import (
	"fluentleap_backend/internal/model"
	"fluentleap_backend/internal/repository"
)

// 活动时间线固定只取最近25条
const timelineFeedLimit = 25

type TimelineService struct {
	timeline *repository.TimelineRepository
}

func NewTimelineService(timeline *repository.TimelineRepository) *TimelineService {
	return &TimelineService{timeline: timeline}
}

// GetTimeline 按创建时间倒序返回最近的事件
func (s *TimelineService) GetTimeline() ([]model.TimelineEvent, error) {
	return s.timeline.ListRecent(timelineFeedLimit)
}

package service

import (
	"errors"
	"fmt"
	"time"

	"fluentleap_backend/internal/model"
	"fluentleap_backend/internal/repository"
	"fluentleap_backend/internal/util"

	"gorm.io/gorm"
)

// 可读性阈值：平均句长 <14 concise，<22 balanced，否则 wordy
const (
	conciseThreshold = 14
	wordyThreshold   = 22
)

type FeedbackService struct {
	stories   *repository.StoryRepository
	feedbacks *repository.FeedbackRepository
	timeline  *repository.TimelineRepository

	now func() time.Time
}

func NewFeedbackService(stories *repository.StoryRepository, feedbacks *repository.FeedbackRepository, timeline *repository.TimelineRepository) *FeedbackService {
	return &FeedbackService{stories: stories, feedbacks: feedbacks, timeline: timeline, now: time.Now}
}

// GenerateFeedback 对已有故事生成启发式反馈，不做唯一性约束，重复调用会累积多条
func (s *FeedbackService) GenerateFeedback(storyID string) (*model.Feedback, error) {
	story, err := s.stories.FindByID(storyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStoryNotFound
		}
		return nil, err
	}

	sentences := splitSentences(story.Text)
	avgLen := averageSentenceLength(sentences)

	readability := model.ReadabilityWordy
	switch {
	case avgLen < conciseThreshold:
		readability = model.ReadabilityConcise
	case avgLen < wordyThreshold:
		readability = model.ReadabilityBalanced
	}

	strengths := []string{}
	suggestions := []string{}

	if story.GreHits >= 1 {
		strengths = append(strengths, "Used today's challenge items in context")
	} else {
		suggestions = append(suggestions, "Try to incorporate the GRE word and idiom in your story")
	}

	if avgLen < 12 {
		strengths = append(strengths, "Crisp sentence structure")
		suggestions = append(suggestions, "Consider adding detail to a few sentences")
	} else if avgLen > 22 {
		suggestions = append(suggestions, "Break long sentences into shorter ones for clarity")
	} else {
		strengths = append(strengths, "Good rhythm and flow")
	}

	score := 60 + story.GreHits*10
	if readability == model.ReadabilityBalanced {
		score += 10
	}
	if score > 100 {
		score = 100
	}

	feedback := &model.Feedback{
		StoryID:     storyID,
		Readability: readability,
		Strengths:   strengths,
		Suggestions: suggestions,
		BestVersion: rewriteBestVersion(story.Text),
		Score:       score,
	}
	if err := s.feedbacks.Create(feedback); err != nil {
		return nil, err
	}

	eventDate := story.Date
	if eventDate == "" {
		eventDate = s.now().UTC().Format("2006-01-02")
	}
	event := &model.TimelineEvent{
		Kind:   model.EventKindFeedback,
		Title:  fmt.Sprintf("Feedback score: %d", score),
		Detail: readability,
		RefID:  feedback.ID,
		Date:   eventDate,
	}
	if err := s.timeline.Create(event); err != nil {
		return nil, err
	}

	return feedback, nil
}

// ListForStory 返回某个故事累积的全部反馈，按创建时间升序
func (s *FeedbackService) ListForStory(storyID string) ([]model.Feedback, error) {
	if _, err := s.stories.FindByID(storyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStoryNotFound
		}
		return nil, err
	}
	return s.feedbacks.ListByStoryID(storyID)
}

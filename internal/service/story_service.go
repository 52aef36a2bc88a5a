package service

import (
	"fmt"
	"strings"

	"fluentleap_backend/internal/model"
	"fluentleap_backend/internal/repository"
)

type StoryService struct {
	stories   *repository.StoryRepository
	timeline  *repository.TimelineRepository
	challenge *ChallengeService
}

func NewStoryService(stories *repository.StoryRepository, timeline *repository.TimelineRepository, challenge *ChallengeService) *StoryService {
	return &StoryService{stories: stories, timeline: timeline, challenge: challenge}
}

// SubmitStory 提交故事并计算文本统计：token数、去重词数、挑战命中数。
// 当天挑战不存在时会顺带创建（与首次访问 /api/challenge/today 相同）。
func (s *StoryService) SubmitStory(date, text string) (*model.Story, error) {
	text = strings.TrimSpace(text)

	tokens := countTokens(text)
	uniqueWords := countUniqueWords(text)

	challenge, err := s.challenge.GetTodayChallenge()
	if err != nil {
		return nil, err
	}
	greHits := countChallengeHits(text, challenge.Word, challenge.Idiom)

	story := &model.Story{
		Date:        date,
		Text:        text,
		Tokens:      tokens,
		UniqueWords: uniqueWords,
		GreHits:     greHits,
	}
	if err := s.stories.Create(story); err != nil {
		return nil, err
	}

	event := &model.TimelineEvent{
		Kind:   model.EventKindStory,
		Title:  "Story submitted",
		Detail: fmt.Sprintf("%d tokens, %d unique words", tokens, uniqueWords),
		RefID:  story.ID,
		Date:   date,
	}
	if err := s.timeline.Create(event); err != nil {
		return nil, err
	}

	return story, nil
}

package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"fluentleap_backend/internal/model"
	"fluentleap_backend/internal/repository"
	"fluentleap_backend/internal/util"

	"gorm.io/gorm"
)

func newFeedbackService(t *testing.T, db *gorm.DB) *FeedbackService {
	t.Helper()
	s := NewFeedbackService(
		repository.NewStoryRepository(db),
		repository.NewFeedbackRepository(db),
		repository.NewTimelineRepository(db),
	)
	s.now = func() time.Time { return testDay }
	return s
}

func insertStory(t *testing.T, db *gorm.DB, story *model.Story) *model.Story {
	t.Helper()
	if err := db.Create(story).Error; err != nil {
		t.Fatalf("insert story: %v", err)
	}
	return story
}

// sentence n个单词组成的一句话（无结尾标点）
func sentence(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestGenerateFeedbackStoryNotFound(t *testing.T) {
	db := newTestDB(t)
	s := newFeedbackService(t, db)

	_, err := s.GenerateFeedback("no-such-id")
	if !errors.Is(err, util.ErrStoryNotFound) {
		t.Fatalf("err = %v, want ErrStoryNotFound", err)
	}
}

func TestReadabilityBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		wordCnt int
		want    string
	}{
		{"short is concise", 5, model.ReadabilityConcise},
		{"below fourteen is concise", 13, model.ReadabilityConcise},
		{"exactly fourteen is balanced", 14, model.ReadabilityBalanced},
		{"below twentytwo is balanced", 21, model.ReadabilityBalanced},
		{"exactly twentytwo is wordy", 22, model.ReadabilityWordy},
		{"long is wordy", 30, model.ReadabilityWordy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			s := newFeedbackService(t, db)
			story := insertStory(t, db, &model.Story{Date: "2025-03-01", Text: sentence(tt.wordCnt)})

			fb, err := s.GenerateFeedback(story.ID)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if fb.Readability != tt.want {
				t.Errorf("readability = %q, want %q", fb.Readability, tt.want)
			}
			if fb.Score < 0 || fb.Score > 100 {
				t.Errorf("score %d out of [0,100]", fb.Score)
			}
		})
	}
}

func TestFeedbackRulePasses(t *testing.T) {
	db := newTestDB(t)
	s := newFeedbackService(t, db)

	// 命中挑战且句子很短：两条strength加一条suggestion同时给出
	short := insertStory(t, db, &model.Story{Date: "2025-03-01", Text: sentence(5), GreHits: 1})
	fb, err := s.GenerateFeedback(short.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	wantStrengths := []string{"Used today's challenge items in context", "Crisp sentence structure"}
	if len(fb.Strengths) != 2 || fb.Strengths[0] != wantStrengths[0] || fb.Strengths[1] != wantStrengths[1] {
		t.Errorf("strengths = %v, want %v", fb.Strengths, wantStrengths)
	}
	if len(fb.Suggestions) != 1 || fb.Suggestions[0] != "Consider adding detail to a few sentences" {
		t.Errorf("suggestions = %v", fb.Suggestions)
	}

	// 未命中且句子过长：只有两条suggestion
	long := insertStory(t, db, &model.Story{Date: "2025-03-01", Text: sentence(25), GreHits: 0})
	fb2, err := s.GenerateFeedback(long.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(fb2.Strengths) != 0 {
		t.Errorf("strengths = %v, want none", fb2.Strengths)
	}
	wantSuggestions := []string{
		"Try to incorporate the GRE word and idiom in your story",
		"Break long sentences into shorter ones for clarity",
	}
	if len(fb2.Suggestions) != 2 || fb2.Suggestions[0] != wantSuggestions[0] || fb2.Suggestions[1] != wantSuggestions[1] {
		t.Errorf("suggestions = %v, want %v", fb2.Suggestions, wantSuggestions)
	}
}

func TestFeedbackScore(t *testing.T) {
	db := newTestDB(t)
	s := newFeedbackService(t, db)

	// gre_hits=2 且 balanced: min(100, 60+20+10) = 90
	story := insertStory(t, db, &model.Story{Date: "2025-03-01", Text: sentence(16), GreHits: 2})
	fb, err := s.GenerateFeedback(story.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if fb.Readability != model.ReadabilityBalanced {
		t.Fatalf("readability = %q, want balanced", fb.Readability)
	}
	if fb.Score != 90 {
		t.Errorf("score = %d, want 90", fb.Score)
	}
}

func TestFeedbackBestVersion(t *testing.T) {
	db := newTestDB(t)
	s := newFeedbackService(t, db)

	story := insertStory(t, db, &model.Story{Date: "2025-03-01", Text: "hello there. this is fine."})
	fb, err := s.GenerateFeedback(story.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if fb.BestVersion != "Hello there. This is fine." {
		t.Errorf("best_version = %q", fb.BestVersion)
	}
}

func TestFeedbackAccumulatesAndLogsEvent(t *testing.T) {
	db := newTestDB(t)
	s := newFeedbackService(t, db)

	story := insertStory(t, db, &model.Story{Date: "2025-02-20", Text: sentence(16), GreHits: 1})

	// 反馈不做唯一性约束，重复生成会累积
	if _, err := s.GenerateFeedback(story.ID); err != nil {
		t.Fatalf("first: %v", err)
	}
	fb, err := s.GenerateFeedback(story.ID)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if n := countRows(t, db, &model.Feedback{}); n != 2 {
		t.Errorf("feedback rows = %d, want 2", n)
	}

	var events []model.TimelineEvent
	if err := db.Where("kind = ?", model.EventKindFeedback).Order("created_at ASC").Find(&events).Error; err != nil {
		t.Fatalf("load events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("feedback events = %d, want 2", len(events))
	}
	last := events[len(events)-1]
	if last.RefID != fb.ID {
		t.Errorf("ref_id = %q, want %q", last.RefID, fb.ID)
	}
	if last.Detail != fb.Readability {
		t.Errorf("detail = %q, want %q", last.Detail, fb.Readability)
	}
	// 事件日期取故事日期而不是当天
	if last.Date != "2025-02-20" {
		t.Errorf("event date = %q, want 2025-02-20", last.Date)
	}
	if last.Title != "Feedback score: 80" {
		t.Errorf("title = %q", last.Title)
	}
}

func TestListForStory(t *testing.T) {
	db := newTestDB(t)
	s := newFeedbackService(t, db)

	if _, err := s.ListForStory("no-such-id"); !errors.Is(err, util.ErrStoryNotFound) {
		t.Fatalf("err = %v, want ErrStoryNotFound", err)
	}

	story := insertStory(t, db, &model.Story{Date: "2025-03-01", Text: sentence(5)})
	items, err := s.ListForStory(story.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %d, want 0 before any feedback", len(items))
	}

	first, err := s.GenerateFeedback(story.ID)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := s.GenerateFeedback(story.ID)
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	items, err = s.ListForStory(story.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	// 升序：先生成的在前
	if items[0].ID != first.ID || items[1].ID != second.ID {
		t.Errorf("order = [%q %q], want [%q %q]", items[0].ID, items[1].ID, first.ID, second.ID)
	}
}

func TestFeedbackEventDateFallsBackToToday(t *testing.T) {
	db := newTestDB(t)
	s := newFeedbackService(t, db)

	story := insertStory(t, db, &model.Story{Date: "", Text: sentence(5)})
	if _, err := s.GenerateFeedback(story.ID); err != nil {
		t.Fatalf("generate: %v", err)
	}

	var event model.TimelineEvent
	if err := db.Where("kind = ?", model.EventKindFeedback).First(&event).Error; err != nil {
		t.Fatalf("load event: %v", err)
	}
	if event.Date != "2025-03-01" {
		t.Errorf("event date = %q, want fallback 2025-03-01", event.Date)
	}
}

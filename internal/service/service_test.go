package service

import (
	"testing"
	"time"

	"fluentleap_backend/internal/model"
	"fluentleap_backend/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// 内存库只允许一个连接，避免连接各自拿到独立的空库
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Challenge{},
		&model.ChallengePoolEntry{},
		&model.Story{},
		&model.Feedback{},
		&model.TimelineEvent{},
		&model.PracticeResult{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func seedPool(t *testing.T, db *gorm.DB, entries []model.ChallengePoolEntry) {
	t.Helper()
	for i := range entries {
		entries[i].Position = i
		if err := db.Create(&entries[i]).Error; err != nil {
			t.Fatalf("seed pool: %v", err)
		}
	}
}

func testPool() []model.ChallengePoolEntry {
	return []model.ChallengePoolEntry{
		{
			Word:         "aberration",
			WordMeaning:  "a departure from what is normal or expected",
			Idiom:        "break the ice",
			IdiomMeaning: "to relieve tension or get conversation going",
		},
		{
			Word:         "laconic",
			WordMeaning:  "using very few words; concise",
			Idiom:        "once in a blue moon",
			IdiomMeaning: "very rarely",
		},
		{
			Word:         "pellucid",
			WordMeaning:  "transparently clear; easily understood",
			Idiom:        "hit the books",
			IdiomMeaning: "to begin studying in earnest",
		},
	}
}

// newChallengeService 固定时钟的挑战服务，redis为nil走唯一索引兜底路径
func newChallengeService(t *testing.T, db *gorm.DB, at time.Time) *ChallengeService {
	t.Helper()
	s := NewChallengeService(
		repository.NewChallengeRepository(db),
		repository.NewPoolRepository(db),
		repository.NewTimelineRepository(db),
		nil,
	)
	s.now = func() time.Time { return at }
	return s
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

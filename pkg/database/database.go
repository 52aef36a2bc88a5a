package database

import (
	"fmt"
	"log"

	"fluentleap_backend/internal/config"
	"fluentleap_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Challenge{},
		&model.ChallengePoolEntry{},
		&model.Story{},
		&model.Feedback{},
		&model.TimelineEvent{},
		&model.PracticeResult{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := SeedChallengePool(db); err != nil {
		return nil, err
	}

	return db, nil
}

// SeedChallengePool 词库为空时写入内置的GRE单词+习语条目。
// 选取按position顺序循环，所以这里的顺序不能变。
func SeedChallengePool(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.ChallengePoolEntry{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaultPool := []model.ChallengePoolEntry{
		{
			Position:     0,
			Word:         "aberration",
			WordMeaning:  "a departure from what is normal or expected",
			WordExample:  "A warm winter day in Alaska is an aberration.",
			Idiom:        "break the ice",
			IdiomMeaning: "to relieve tension or get conversation going",
			IdiomExample: "He told a joke to break the ice at the meeting.",
		},
		{
			Position:     1,
			Word:         "laconic",
			WordMeaning:  "using very few words; concise",
			WordExample:  "Her laconic reply suggested disinterest.",
			Idiom:        "once in a blue moon",
			IdiomMeaning: "very rarely",
			IdiomExample: "We go out for a fancy dinner once in a blue moon.",
		},
		{
			Position:     2,
			Word:         "pellucid",
			WordMeaning:  "transparently clear; easily understood",
			WordExample:  "The professor gave a pellucid explanation.",
			Idiom:        "hit the books",
			IdiomMeaning: "to begin studying in earnest",
			IdiomExample: "I need to hit the books before finals.",
		},
	}

	for _, entry := range defaultPool {
		if err := db.Create(&entry).Error; err != nil {
			return err
		}
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fluentleap_backend/internal/model"
	"fluentleap_backend/internal/repository"
	"fluentleap_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const challengeLockTTL = 5 * time.Second

type ChallengeService struct {
	challenges *repository.ChallengeRepository
	pool       *repository.PoolRepository
	timeline   *repository.TimelineRepository
	rdb        *redis.Client

	now func() time.Time
}

// NewChallengeService rdb可以为nil，此时跳过按日期加锁，仅靠date唯一索引兜底
func NewChallengeService(challenges *repository.ChallengeRepository, pool *repository.PoolRepository, timeline *repository.TimelineRepository, rdb *redis.Client) *ChallengeService {
	return &ChallengeService{
		challenges: challenges,
		pool:       pool,
		timeline:   timeline,
		rdb:        rdb,
		now:        time.Now,
	}
}

// GetTodayChallenge 返回今天（UTC）的挑战，不存在时从词库按
// day-of-year mod pool_size 选取并落库。对固定词库和固定日期结果恒定。
func (s *ChallengeService) GetTodayChallenge() (*model.Challenge, error) {
	today := s.now().UTC()
	date := today.Format("2006-01-02")

	existing, err := s.challenges.FindByDate(date)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entries, err := s.pool.ListOrdered()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, util.ErrChallengePoolEmpty
	}
	pick := entries[today.YearDay()%len(entries)]

	// 按日期加锁，避免并发首访造成同一天重复建档
	if s.rdb != nil {
		ctx := context.Background()
		lockKey := "challenge:lock:" + date
		ok, lockErr := s.rdb.SetNX(ctx, lockKey, 1, challengeLockTTL).Result()
		if lockErr == nil && ok {
			defer s.rdb.Del(ctx, lockKey)
		}
		// 拿到锁后再查一次，另一个请求可能已经建好
		if existing, err = s.challenges.FindByDate(date); err == nil {
			return existing, nil
		}
	}

	challenge := &model.Challenge{
		Date:         date,
		Word:         pick.Word,
		WordMeaning:  pick.WordMeaning,
		WordExample:  pick.WordExample,
		Idiom:        pick.Idiom,
		IdiomMeaning: pick.IdiomMeaning,
		IdiomExample: pick.IdiomExample,
	}
	if err := s.challenges.Create(challenge); err != nil {
		// 输在并发竞争时读取赢家的记录
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.challenges.FindByDate(date)
		}
		return nil, err
	}

	event := &model.TimelineEvent{
		Kind:   model.EventKindMilestone,
		Title:  fmt.Sprintf("Daily challenge ready: %s", pick.Word),
		Detail: pick.Idiom,
		RefID:  challenge.ID,
		Date:   date,
	}
	if err := s.timeline.Create(event); err != nil {
		return nil, err
	}

	return challenge, nil
}

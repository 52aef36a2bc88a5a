package repository

import (
	"fluentleap_backend/internal/model"

	"gorm.io/gorm"
)

type PoolRepository struct {
	DB *gorm.DB
}

func NewPoolRepository(db *gorm.DB) *PoolRepository {
	return &PoolRepository{DB: db}
}

// ListOrdered 按position升序返回全部词库条目，选取顺序必须稳定
func (r *PoolRepository) ListOrdered() ([]model.ChallengePoolEntry, error) {
	var entries []model.ChallengePoolEntry
	err := r.DB.Order("position ASC").Find(&entries).Error
	return entries, err
}

// Count 词库条目总数
func (r *PoolRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.ChallengePoolEntry{}).Count(&count).Error
	return count, err
}

// Create 新增词库条目
func (r *PoolRepository) Create(entry *model.ChallengePoolEntry) error {
	return r.DB.Create(entry).Error
}

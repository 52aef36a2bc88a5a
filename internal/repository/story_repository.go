package repository

import (
	"fluentleap_backend/internal/model"

	"gorm.io/gorm"
)

type StoryRepository struct {
	DB *gorm.DB
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{DB: db}
}

func (r *StoryRepository) Create(story *model.Story) error {
	return r.DB.Create(story).Error
}

// FindByID 按ID查询故事，不存在时返回 gorm.ErrRecordNotFound
func (r *StoryRepository) FindByID(id string) (*model.Story, error) {
	var story model.Story
	err := r.DB.Where("id = ?", id).First(&story).Error
	if err != nil {
		return nil, err
	}
	return &story, nil
}

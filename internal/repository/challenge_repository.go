package repository

import (
	"fluentleap_backend/internal/model"

	"gorm.io/gorm"
)

type ChallengeRepository struct {
	DB *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{DB: db}
}

// Create 创建当日挑战，date列有唯一索引，重复创建返回冲突错误
func (r *ChallengeRepository) Create(challenge *model.Challenge) error {
	return r.DB.Create(challenge).Error
}

// FindByDate 按日期查询挑战，不存在时返回 gorm.ErrRecordNotFound
func (r *ChallengeRepository) FindByDate(date string) (*model.Challenge, error) {
	var challenge model.Challenge
	err := r.DB.Where("date = ?", date).First(&challenge).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

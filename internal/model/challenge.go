package model

// Challenge 每日挑战：一个GRE单词加一个习语，按日期唯一
// swagger:model Challenge
type Challenge struct {
	UUIDBase
	Date         string `gorm:"size:10;uniqueIndex;not null" json:"date"` // ISO日期 YYYY-MM-DD
	Word         string `gorm:"size:100;not null" json:"word"`
	WordMeaning  string `gorm:"size:255" json:"word_meaning"`
	WordExample  string `gorm:"type:text" json:"word_example"`
	Idiom        string `gorm:"size:100;not null" json:"idiom"`
	IdiomMeaning string `gorm:"size:255" json:"idiom_meaning"`
	IdiomExample string `gorm:"type:text" json:"idiom_example"`
}

func (Challenge) TableName() string {
	return "challenges"
}

// ChallengePoolEntry 挑战词库条目，按position排序循环选取
// swagger:model ChallengePoolEntry
type ChallengePoolEntry struct {
	UUIDBase
	Position     int    `gorm:"uniqueIndex;not null" json:"position"`
	Word         string `gorm:"size:100;not null" json:"word"`
	WordMeaning  string `gorm:"size:255" json:"word_meaning"`
	WordExample  string `gorm:"type:text" json:"word_example"`
	Idiom        string `gorm:"size:100;not null" json:"idiom"`
	IdiomMeaning string `gorm:"size:255" json:"idiom_meaning"`
	IdiomExample string `gorm:"type:text" json:"idiom_example"`
}

func (ChallengePoolEntry) TableName() string {
	return "challenge_pool_entries"
}

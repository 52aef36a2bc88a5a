package util

import "errors"

var (
	ErrStoryNotFound      = errors.New("story not found")
	ErrChallengePoolEmpty = errors.New("challenge pool is empty")
	ErrInvalidAnswerCount = errors.New("invalid number of answers")
)

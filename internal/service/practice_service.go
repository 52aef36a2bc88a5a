package service

import (
	"fmt"

	"fluentleap_backend/internal/model"
	"fluentleap_backend/internal/repository"
	"fluentleap_backend/internal/util"
)

// QuizQuestion 单道选择题。answer 是正确选项下标，随题目一起下发
// （沿用原始接口形状，判分始终以服务端重新生成的题目为准）。
type QuizQuestion struct {
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	Answer  int      `json:"answer"`
}

// Quiz 当日测验，题目是当日挑战的纯函数，同一天重复生成结果完全一致
type Quiz struct {
	Date      string         `json:"date"`
	Questions []QuizQuestion `json:"questions"`
}

type PracticeService struct {
	results   *repository.PracticeRepository
	timeline  *repository.TimelineRepository
	challenge *ChallengeService
}

func NewPracticeService(results *repository.PracticeRepository, timeline *repository.TimelineRepository, challenge *ChallengeService) *PracticeService {
	return &PracticeService{results: results, timeline: timeline, challenge: challenge}
}

// buildQuestions 固定5道题模板，只有挑战的word/idiom/释义会被代入。
// 正确答案下标固定为 [0,0,1,0,0]，由模板本身决定。
func buildQuestions(ch *model.Challenge) []QuizQuestion {
	return []QuizQuestion{
		{
			Prompt: fmt.Sprintf("What is the meaning of '%s'?", ch.Word),
			Choices: []string{
				ch.WordMeaning,
				"a type of musical notation",
				"complete agreement",
				"extreme scarcity",
			},
			Answer: 0,
		},
		{
			Prompt: fmt.Sprintf("What does the idiom '%s' mean?", ch.Idiom),
			Choices: []string{
				ch.IdiomMeaning,
				"to delay unnecessarily",
				"to agree reluctantly",
				"to speak frankly",
			},
			Answer: 0,
		},
		{
			Prompt:  fmt.Sprintf("True or False: Using '%s' means being extremely talkative.", ch.Word),
			Choices: []string{"True", "False"},
			Answer:  1,
		},
		{
			Prompt: fmt.Sprintf("Select the sentence that correctly uses '%s'.", ch.Word),
			Choices: []string{
				fmt.Sprintf("Her %s explanation made everything clearer.", ch.Word),
				"He aberration to the store quickly.",
				"They idiom the plan yesterday.",
				"The book was very once in a blue moon.",
			},
			Answer: 0,
		},
		{
			Prompt: fmt.Sprintf("Choose the best context to use the idiom '%s'.", ch.Idiom),
			Choices: []string{
				"Starting a conversation in a quiet group",
				"Describing a scientific anomaly",
				"Talking about heavy rainfall",
				"Explaining a legal contract",
			},
			Answer: 0,
		},
	}
}

// GetQuiz 基于当日挑战生成测验，挑战不存在时会顺带创建
func (s *PracticeService) GetQuiz() (*Quiz, error) {
	challenge, err := s.challenge.GetTodayChallenge()
	if err != nil {
		return nil, err
	}
	return &Quiz{Date: challenge.Date, Questions: buildQuestions(challenge)}, nil
}

// SubmitQuiz 判分并落库。注意：始终按"今天"的测验判分，提交的date只用于
// 记录，跨天提交会被按当天的题目判（沿用原始行为）。
func (s *PracticeService) SubmitQuiz(date string, answers []int) (*model.PracticeResult, error) {
	quiz, err := s.GetQuiz()
	if err != nil {
		return nil, err
	}
	if len(answers) != len(quiz.Questions) {
		return nil, util.ErrInvalidAnswerCount
	}

	correct := 0
	breakdown := make([]model.PracticeAnswer, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		isCorrect := answers[i] == q.Answer
		if isCorrect {
			correct++
		}
		breakdown = append(breakdown, model.PracticeAnswer{
			Prompt:    q.Prompt,
			Chosen:    answers[i],
			Correct:   q.Answer,
			IsCorrect: isCorrect,
		})
	}

	result := &model.PracticeResult{
		Date:      date,
		Correct:   correct,
		Total:     len(quiz.Questions),
		Breakdown: breakdown,
	}
	if err := s.results.Create(result); err != nil {
		return nil, err
	}

	event := &model.TimelineEvent{
		Kind:   model.EventKindPractice,
		Title:  fmt.Sprintf("Practice: %d/%d", correct, result.Total),
		Detail: "Quiz completed",
		RefID:  result.ID,
		Date:   date,
	}
	if err := s.timeline.Create(event); err != nil {
		return nil, err
	}

	return result, nil
}

package controller

import (
	"errors"

	"fluentleap_backend/internal/service"
	"fluentleap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	service *service.PracticeService
}

func NewPracticeController(s *service.PracticeService) *PracticeController {
	return &PracticeController{service: s}
}

// GetQuiz godoc
// @Summary 获取今日测验
// @Description 基于今日挑战生成固定5道选择题
// @Tags 练习
// @Produce json
// @Success 200 {object} util.Response{data=service.Quiz}
// @Router /api/practice/quiz [get]
func (c *PracticeController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.service.GetQuiz()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

type SubmitQuizRequest struct {
	Date    string `json:"date" binding:"required"`
	Answers []int  `json:"answers"`
}

// SubmitQuiz godoc
// @Summary 提交测验答案
// @Description 按今日题目判分并记录练习结果
// @Tags 练习
// @Accept json
// @Produce json
// @Param body body SubmitQuizRequest true "答案下标数组，长度必须为5"
// @Success 200 {object} util.Response{data=model.PracticeResult}
// @Failure 400 {object} util.Response
// @Router /api/practice/submit [post]
func (c *PracticeController) SubmitQuiz(ctx *gin.Context) {
	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.service.SubmitQuiz(req.Date, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrInvalidAnswerCount) {
			util.BadRequest(ctx, "Invalid number of answers")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

package controller

import (
	"fluentleap_backend/internal/service"
	"fluentleap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	service *service.ChallengeService
}

func NewChallengeController(s *service.ChallengeService) *ChallengeController {
	return &ChallengeController{service: s}
}

// GetTodayChallenge godoc
// @Summary 获取今日挑战
// @Description 返回今天的GRE单词+习语挑战，首次访问时懒创建
// @Tags 挑战
// @Produce json
// @Success 200 {object} util.Response{data=model.Challenge}
// @Router /api/challenge/today [get]
func (c *ChallengeController) GetTodayChallenge(ctx *gin.Context) {
	challenge, err := c.service.GetTodayChallenge()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, challenge)
}

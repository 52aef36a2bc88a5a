package controller

import (
	"errors"

	"fluentleap_backend/internal/service"
	"fluentleap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	service *service.FeedbackService
}

func NewFeedbackController(s *service.FeedbackService) *FeedbackController {
	return &FeedbackController{service: s}
}

// GenerateFeedback godoc
// @Summary 生成写作反馈
// @Description 对指定故事生成可读性/优点/建议/最佳版本/分数
// @Tags 故事
// @Produce json
// @Param storyId path string true "故事ID"
// @Success 200 {object} util.Response{data=model.Feedback}
// @Failure 404 {object} util.Response
// @Router /api/feedback/{storyId} [post]
func (c *FeedbackController) GenerateFeedback(ctx *gin.Context) {
	storyID := ctx.Param("storyId")

	feedback, err := c.service.GenerateFeedback(storyID)
	if err != nil {
		if errors.Is(err, util.ErrStoryNotFound) {
			util.NotFound(ctx, "Story not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, feedback)
}

// ListFeedback godoc
// @Summary 查看故事的历史反馈
// @Description 返回某个故事累积的全部反馈，按生成时间升序
// @Tags 故事
// @Produce json
// @Param storyId path string true "故事ID"
// @Success 200 {object} util.Response{data=[]model.Feedback}
// @Failure 404 {object} util.Response
// @Router /api/feedback/{storyId} [get]
func (c *FeedbackController) ListFeedback(ctx *gin.Context) {
	storyID := ctx.Param("storyId")

	feedbacks, err := c.service.ListForStory(storyID)
	if err != nil {
		if errors.Is(err, util.ErrStoryNotFound) {
			util.NotFound(ctx, "Story not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"items": feedbacks})
}

package controller

import (
	"fluentleap_backend/internal/service"
	"fluentleap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StoryController struct {
	service *service.StoryService
}

func NewStoryController(s *service.StoryService) *StoryController {
	return &StoryController{service: s}
}

type SubmitStoryRequest struct {
	Date string `json:"date" binding:"required"`
	Text string `json:"text" binding:"required"`
}

// SubmitStory godoc
// @Summary 提交故事
// @Description 提交自由文本故事，返回token/去重词/挑战命中统计
// @Tags 故事
// @Accept json
// @Produce json
// @Param body body SubmitStoryRequest true "故事内容"
// @Success 200 {object} util.Response{data=model.Story}
// @Router /api/story [post]
func (c *StoryController) SubmitStory(ctx *gin.Context) {
	var req SubmitStoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	story, err := c.service.SubmitStory(req.Date, req.Text)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, story)
}

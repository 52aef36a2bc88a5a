package controller

import (
	"fluentleap_backend/internal/service"
	"fluentleap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TimelineController struct {
	service *service.TimelineService
}

func NewTimelineController(s *service.TimelineService) *TimelineController {
	return &TimelineController{service: s}
}

// GetTimeline godoc
// @Summary 获取活动时间线
// @Description 按创建时间倒序返回最近25条事件
// @Tags 时间线
// @Produce json
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/timeline [get]
func (c *TimelineController) GetTimeline(ctx *gin.Context) {
	items, err := c.service.GetTimeline()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"items": items})
}

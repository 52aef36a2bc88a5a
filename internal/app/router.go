package app

import (
	"fluentleap_backend/docs"
	"fluentleap_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 诊断与自省
	router.GET("/", c.system.Root)
	router.GET("/test", c.system.TestDatabase)
	router.GET("/schema", c.system.Schema)

	api := router.Group("/api")
	{
		api.GET("/hello", c.system.Hello)
		api.GET("/health", c.health.HealthCheck)

		api.GET("/challenge/today", c.challenge.GetTodayChallenge)
		api.POST("/story", c.story.SubmitStory)
		api.POST("/feedback/:storyId", c.feedback.GenerateFeedback)
		api.GET("/feedback/:storyId", c.feedback.ListFeedback)
		api.GET("/practice/quiz", c.practice.GetQuiz)
		api.POST("/practice/submit", c.practice.SubmitQuiz)
		api.GET("/timeline", c.timeline.GetTimeline)
	}
}

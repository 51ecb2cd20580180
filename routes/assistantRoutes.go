package routes

import (
	"citifix-be/controllers"

	"github.com/gin-gonic/gin"
)

// AssistantRoutes sets up the mock AI assistant routes
func AssistantRoutes(r *gin.Engine) {
	assistant := r.Group("/api/assistant")
	{
		assistant.POST("/chat", controllers.ChatWithBot)
		assistant.POST("/describe", controllers.DescribeImage)
	}
}

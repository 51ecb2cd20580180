package routes

import (
	"citifix-be/controllers"
	"citifix-be/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// IssueRoutes sets up the citizen-facing issue routes
func IssueRoutes(r *gin.Engine, ic *controllers.IssueController, rdb *redis.Client, rateLimit int) {
	issue := r.Group("/api/issue", middlewares.AuthMiddleware())
	{
		issue.POST("/create", middlewares.IssueRateLimiter(rdb, rateLimit), ic.CreateIssue)
		issue.GET("/my", ic.GetMyIssues)
		issue.GET("/:id", ic.GetIssue)
	}
}

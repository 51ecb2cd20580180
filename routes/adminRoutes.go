package routes

import (
	"citifix-be/controllers"
	"citifix-be/middlewares"
	"citifix-be/models"

	"github.com/gin-gonic/gin"
)

// AdminRoutes sets up the triage routes, restricted to admin tokens
func AdminRoutes(r *gin.Engine, ac *controllers.AdminController) {
	admin := r.Group("/api/admin",
		middlewares.AuthMiddleware(),
		middlewares.RequireRole(string(models.RoleAdmin)),
	)
	{
		admin.GET("/issues", ac.ListIssues)
		admin.GET("/analytics", ac.GetAnalytics)
		admin.PATCH("/issue/:id/department", ac.AssignDepartment)
		admin.PATCH("/issue/:id/status", ac.SetStatus)
	}
}

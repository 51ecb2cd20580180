package controllers

import (
	"net/http"

	"citifix-be/models"
	"citifix-be/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminController exposes the triage endpoints: filtered listing, department
// assignment, status changes and dashboard analytics.
type AdminController struct {
	Lifecycle *services.LifecycleService
}

func NewAdminController(lifecycle *services.LifecycleService) *AdminController {
	return &AdminController{Lifecycle: lifecycle}
}

// ListIssues handles retrieving all issues with status/category/search
// filters. "all" and empty both mean no filter, matching the dashboard UI.
func (ac *AdminController) ListIssues(c *gin.Context) {
	filter := models.IssueFilter{Search: c.Query("search")}

	if status := c.Query("status"); status != "" && status != "all" {
		filter.Status = models.IssueStatus(status)
	}
	if category := c.Query("category"); category != "" && category != "all" {
		filter.Category = models.IssueCategory(category)
	}

	issues, err := ac.Lifecycle.ListIssues(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"issues":      issues,
		"totalIssues": len(issues),
	})
}

// AssignDepartment assigns a civic department to an issue. A Pending issue
// moves to In Progress as part of the assignment.
func (ac *AdminController) AssignDepartment(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var input struct {
		Department string `json:"department" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := ac.Lifecycle.AssignDepartment(c.Request.Context(), issueID, input.Department)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// SetStatus updates an issue's status. Marking an issue Resolved credits the
// reporting citizen with reward points.
func (ac *AdminController) SetStatus(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := ac.Lifecycle.SetStatus(c.Request.Context(), issueID, models.IssueStatus(input.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// GetAnalytics returns aggregate issue counts for the admin dashboard.
func (ac *AdminController) GetAnalytics(c *gin.Context) {
	stats, err := ac.Lifecycle.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

package controllers

import (
	"net/http"

	"citifix-be/models"
	"citifix-be/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueController exposes the citizen-facing issue endpoints. All lifecycle
// rules live in the service; this layer only parses input and maps errors.
type IssueController struct {
	Lifecycle *services.LifecycleService
}

func NewIssueController(lifecycle *services.LifecycleService) *IssueController {
	return &IssueController{Lifecycle: lifecycle}
}

// currentUserID pulls the authenticated user's id out of the gin context.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return primitive.NilObjectID, false
	}

	objectID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return primitive.NilObjectID, false
	}
	return objectID, true
}

// CreateIssue handles the submission of a new issue. Category is assigned by
// the classifier, never taken from the client.
func (ic *IssueController) CreateIssue(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Title       string           `json:"title" binding:"required,max=200"`
		Description string           `json:"description" binding:"required,max=1000"`
		ImageURL    *string          `json:"imageUrl,omitempty"`
		Location    *models.GeoPoint `json:"location" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := ic.Lifecycle.SubmitIssue(c.Request.Context(), userID, input.Title, input.Description, input.ImageURL, input.Location)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// GetMyIssues retrieves the caller's issues in submission order.
func (ic *IssueController) GetMyIssues(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	issues, err := ic.Lifecycle.ListUserIssues(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, issues)
}

// GetIssue retrieves an issue by its ID
func (ic *IssueController) GetIssue(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	issue, err := ic.Lifecycle.GetIssue(c.Request.Context(), issueID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

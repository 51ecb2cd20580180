package controllers

import (
	"net/http"

	"citifix-be/services"

	"github.com/gin-gonic/gin"
)

// ChatWithBot answers a user message from the keyword-response table.
func ChatWithBot(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": services.BotReply(input.Message)})
}

// DescribeImage generates a mock AI description for an uploaded photo from
// the issue title and image filename.
func DescribeImage(c *gin.Context) {
	var input struct {
		Title    string `json:"title" binding:"required"`
		Filename string `json:"filename" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": services.DescribeImage(input.Title, input.Filename)})
}

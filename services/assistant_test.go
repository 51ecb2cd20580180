package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBotReplyKeywords(t *testing.T) {
	assert.Contains(t, BotReply("How do I report a pothole?"), "Report New Issue")
	assert.Contains(t, BotReply("Tell me about REWARD points"), "10 reward points")
	assert.Contains(t, BotReply("what does an admin do"), "civic bodies")
}

func TestBotReplyFallback(t *testing.T) {
	reply := BotReply("what's the weather like")
	assert.Equal(t, botFallback, reply)
}

func TestDescribeImage(t *testing.T) {
	desc := DescribeImage("Big pothole", "IMG_2041.jpg")
	assert.True(t, strings.Contains(desc, "pothole"))

	desc = DescribeImage("Something odd", "garbage_pile.png")
	assert.Contains(t, desc, "uncollected garbage")

	desc = DescribeImage("Unclear", "photo.jpg")
	assert.Equal(t, analysisFallback, desc)
}

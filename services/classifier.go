package services

import (
	"strings"

	"citifix-be/models"
)

// categoryKeywords maps each category to its trigger keywords. Declaration
// order is load-bearing: Classify tests categories in this exact order and
// the first match wins, so a description mentioning both garbage and a water
// pipe classifies as Garbage. Reordering would silently change results for
// multi-category descriptions.
var categoryKeywords = []struct {
	category models.IssueCategory
	keywords []string
}{
	{models.Road, []string{"pothole", "road", "street", "pavement", "crack"}},
	{models.Garbage, []string{"garbage", "waste", "trash", "litter", "dump"}},
	{models.Water, []string{"water", "leak", "pipe", "drainage", "sewage"}},
	{models.Electricity, []string{"light", "electricity", "power", "streetlight", "lamp"}},
}

// Classify maps a free-text description to an issue category by keyword
// matching. It is a deterministic mock, not a learned model; empty or
// unrecognized input yields Other.
func Classify(description string) models.IssueCategory {
	lower := strings.ToLower(description)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category
			}
		}
	}
	return models.Other
}

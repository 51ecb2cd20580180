package services

import (
	"testing"

	"citifix-be/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyByCategory(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        models.IssueCategory
	}{
		{"road keyword", "huge pothole on Main St", models.Road},
		{"road keyword uppercase", "CRACKED PAVEMENT near the school", models.Road},
		{"garbage keyword", "trash piling up for days", models.Garbage},
		{"water keyword", "sewage overflowing into the gutter", models.Water},
		{"electricity keyword", "streetlamp flickering all night", models.Electricity},
		{"no keyword", "xyz", models.Other},
		{"empty input", "", models.Other},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.description))
		})
	}
}

// The declaration order of the keyword table is part of the contract: a
// description matching several categories resolves to the earliest declared
// one, not the alphabetically first.
func TestClassifyPrecedence(t *testing.T) {
	// Matches both Garbage ("garbage") and Water ("water", "pipe");
	// Garbage is declared first.
	assert.Equal(t, models.Garbage, Classify("garbage near a water pipe"))

	// Matches both Road ("street", via "streetlight") and Electricity;
	// Road is declared first.
	assert.Equal(t, models.Road, Classify("broken streetlight"))

	// Matches both Water ("leak") and Electricity ("power"); Water wins.
	assert.Equal(t, models.Water, Classify("power cable leaking sparks"))
}

func TestClassifyDeterministic(t *testing.T) {
	const description = "garbage dump next to a water pipe under a lamp"
	first := Classify(description)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(description))
	}
}

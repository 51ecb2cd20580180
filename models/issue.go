package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueCategory enum
type IssueCategory string

const (
	Road        IssueCategory = "Road"
	Garbage     IssueCategory = "Garbage"
	Water       IssueCategory = "Water"
	Electricity IssueCategory = "Electricity"
	Other       IssueCategory = "Other"
)

// IssueStatus enum
type IssueStatus string

const (
	Pending    IssueStatus = "Pending"
	InProgress IssueStatus = "In Progress"
	Resolved   IssueStatus = "Resolved"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s IssueStatus) bool {
	switch s {
	case Pending, InProgress, Resolved:
		return true
	}
	return false
}

// GeoPoint is a captured device location.
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Issue represents a civic issue reported by a citizen.
// Category is assigned by the classifier at creation and never edited;
// Department stays empty until an admin assigns one.
type Issue struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    IssueCategory      `bson:"category" json:"category"`
	ImageURL    *string            `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Location    *GeoPoint          `bson:"location,omitempty" json:"location,omitempty"`
	Status      IssueStatus        `bson:"status" json:"status"`
	Department  string             `bson:"department,omitempty" json:"department,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IssueFilter narrows ListAll results. Zero-value fields are ignored;
// populated fields compose with logical AND. Search matches the term
// case-insensitively against title or description.
type IssueFilter struct {
	Status   IssueStatus
	Category IssueCategory
	Search   string
}

// IssueUpdate is a partial mutation applied by the lifecycle service.
// Nil fields are left untouched.
type IssueUpdate struct {
	Status     *IssueStatus
	Department *string
}

// IssueStats aggregates issue counts for the admin dashboard.
type IssueStats struct {
	Total      int64                   `json:"totalIssues"`
	Open       int64                   `json:"openIssues"`
	ByCategory map[IssueCategory]int64 `json:"issuesByCategory"`
	ByStatus   map[IssueStatus]int64   `json:"issuesByStatus"`
}

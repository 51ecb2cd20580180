package repository

import (
	"context"
	"testing"

	"citifix-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedIssue(t *testing.T, store *MemoryIssueStore, userID primitive.ObjectID, title string, category models.IssueCategory, status models.IssueStatus) models.Issue {
	t.Helper()
	issue, err := store.Create(context.Background(), &models.Issue{
		UserID:      userID,
		Title:       title,
		Description: title + " description",
		Category:    category,
		Location:    &models.GeoPoint{Lat: 1, Lng: 1},
		Status:      status,
	})
	require.NoError(t, err)
	return issue
}

func TestMemoryIssueStoreCreateValidation(t *testing.T) {
	store := NewMemoryIssueStore()

	_, err := store.Create(context.Background(), &models.Issue{
		Title: "Pothole", Description: "big one",
	})
	assert.True(t, models.IsValidation(err), "missing location must be rejected")

	_, err = store.Create(context.Background(), &models.Issue{
		Description: "big one", Location: &models.GeoPoint{Lat: 1, Lng: 1},
	})
	assert.True(t, models.IsValidation(err), "missing title must be rejected")
}

func TestMemoryIssueStoreGetNotFound(t *testing.T) {
	store := NewMemoryIssueStore()
	_, err := store.Get(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = store.Update(context.Background(), primitive.NewObjectID(), models.IssueUpdate{})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryIssueStoreListByUserKeepsInsertionOrder(t *testing.T) {
	store := NewMemoryIssueStore()
	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	first := seedIssue(t, store, userID, "first", models.Road, models.Pending)
	seedIssue(t, store, otherID, "theirs", models.Water, models.Pending)
	second := seedIssue(t, store, userID, "second", models.Garbage, models.Pending)

	issues, err := store.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, first.ID, issues[0].ID)
	assert.Equal(t, second.ID, issues[1].ID)
}

func TestMemoryIssueStoreFiltersCompose(t *testing.T) {
	store := NewMemoryIssueStore()
	userID := primitive.NewObjectID()

	seedIssue(t, store, userID, "pothole one", models.Road, models.Pending)
	seedIssue(t, store, userID, "burst pipe", models.Water, models.Resolved)
	third := seedIssue(t, store, userID, "pothole two", models.Road, models.Resolved)

	issues, err := store.ListAll(context.Background(), models.IssueFilter{
		Status:   models.Resolved,
		Category: models.Road,
	})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, third.ID, issues[0].ID)
}

func TestMemoryIssueStoreSearchIsCaseInsensitive(t *testing.T) {
	store := NewMemoryIssueStore()
	userID := primitive.NewObjectID()

	match := seedIssue(t, store, userID, "Broken Streetlight", models.Electricity, models.Pending)
	seedIssue(t, store, userID, "burst pipe", models.Water, models.Pending)

	issues, err := store.ListAll(context.Background(), models.IssueFilter{Search: "STREETLIGHT"})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, match.ID, issues[0].ID)

	// Search also covers descriptions.
	issues, err = store.ListAll(context.Background(), models.IssueFilter{Search: "pipe description"})
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}

func TestMemoryIssueStoreEmptyFilterReturnsEverything(t *testing.T) {
	store := NewMemoryIssueStore()
	userID := primitive.NewObjectID()

	seedIssue(t, store, userID, "one", models.Road, models.Pending)
	seedIssue(t, store, userID, "two", models.Water, models.Resolved)

	issues, err := store.ListAll(context.Background(), models.IssueFilter{})
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}

func TestMemoryIssueStoreUpdateIsPartial(t *testing.T) {
	store := NewMemoryIssueStore()
	issue := seedIssue(t, store, primitive.NewObjectID(), "pothole", models.Road, models.Pending)

	dept := "Roads"
	updated, err := store.Update(context.Background(), issue.ID, models.IssueUpdate{Department: &dept})
	require.NoError(t, err)
	assert.Equal(t, "Roads", updated.Department)
	assert.Equal(t, models.Pending, updated.Status, "status untouched when not part of the mutation")
	assert.Equal(t, issue.Category, updated.Category)
}

func TestMemoryIssueStoreStats(t *testing.T) {
	store := NewMemoryIssueStore()
	userID := primitive.NewObjectID()

	seedIssue(t, store, userID, "one", models.Road, models.Pending)
	seedIssue(t, store, userID, "two", models.Road, models.InProgress)
	seedIssue(t, store, userID, "three", models.Water, models.Resolved)

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Open)
	assert.Equal(t, int64(2), stats.ByCategory[models.Road])
	assert.Equal(t, int64(1), stats.ByStatus[models.Resolved])
}

func TestMemoryUserStore(t *testing.T) {
	store := NewMemoryUserStore()

	user, err := store.Create(context.Background(), &models.User{
		Name:  "Asha",
		Email: "asha@example.com",
		Role:  models.RoleCitizen,
	})
	require.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, int64(0), user.RewardPoints)

	found, err := store.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = store.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)

	credited, err := store.IncrementRewardPoints(context.Background(), user.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), credited.RewardPoints)

	_, err = store.IncrementRewardPoints(context.Background(), primitive.NewObjectID(), 10)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

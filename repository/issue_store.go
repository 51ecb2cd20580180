package repository

import (
	"context"
	"errors"
	"time"

	"citifix-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 10 * time.Second

// IssueStore is the persistence boundary for issues. Update is reserved for
// the lifecycle service; HTTP callers never get raw field mutation.
type IssueStore interface {
	Create(ctx context.Context, issue *models.Issue) (models.Issue, error)
	Get(ctx context.Context, id primitive.ObjectID) (models.Issue, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Issue, error)
	ListAll(ctx context.Context, filter models.IssueFilter) ([]models.Issue, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.IssueUpdate) (models.Issue, error)
	Stats(ctx context.Context) (models.IssueStats, error)
}

// validateNewIssue enforces the creation invariants shared by every store
// implementation: a location must be captured and title/description must be
// non-empty before an issue is accepted.
func validateNewIssue(issue *models.Issue) error {
	if issue.Title == "" {
		return &models.ValidationError{Field: "title", Message: "title is required"}
	}
	if issue.Description == "" {
		return &models.ValidationError{Field: "description", Message: "description is required"}
	}
	if issue.Location == nil {
		return &models.ValidationError{Field: "location", Message: "location is required"}
	}
	return nil
}

// MongoIssueStore persists issues in a MongoDB collection.
type MongoIssueStore struct {
	collection *mongo.Collection
}

func NewMongoIssueStore(collection *mongo.Collection) *MongoIssueStore {
	return &MongoIssueStore{collection: collection}
}

func (s *MongoIssueStore) Create(ctx context.Context, issue *models.Issue) (models.Issue, error) {
	if err := validateNewIssue(issue); err != nil {
		return models.Issue{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if issue.ID.IsZero() {
		issue.ID = primitive.NewObjectID()
	}
	if issue.CreatedAt.IsZero() {
		issue.CreatedAt = time.Now()
	}
	issue.UpdatedAt = issue.CreatedAt

	if _, err := s.collection.InsertOne(ctx, issue); err != nil {
		return models.Issue{}, err
	}
	return *issue, nil
}

func (s *MongoIssueStore) Get(ctx context.Context, id primitive.ObjectID) (models.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var issue models.Issue
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&issue)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Issue{}, models.ErrNotFound
	}
	if err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

func (s *MongoIssueStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// ObjectIDs are time-prefixed, so sorting by _id keeps insertion order.
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	issues := []models.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

func (s *MongoIssueStore) ListAll(ctx context.Context, filter models.IssueFilter) ([]models.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		query["$or"] = []bson.M{
			{"title": bson.M{"$regex": filter.Search, "$options": "i"}},
			{"description": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	issues := []models.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

func (s *MongoIssueStore) Update(ctx context.Context, id primitive.ObjectID, update models.IssueUpdate) (models.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Department != nil {
		set["department"] = *update.Department
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var issue models.Issue
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&issue)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Issue{}, models.ErrNotFound
	}
	if err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

func (s *MongoIssueStore) Stats(ctx context.Context) (models.IssueStats, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	stats := models.IssueStats{
		ByCategory: map[models.IssueCategory]int64{},
		ByStatus:   map[models.IssueStatus]int64{},
	}

	total, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.IssueStats{}, err
	}
	stats.Total = total

	open, err := s.collection.CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": []models.IssueStatus{models.Pending, models.InProgress}},
	})
	if err != nil {
		return models.IssueStats{}, err
	}
	stats.Open = open

	type bucket struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}

	groupBy := func(field string) ([]bucket, error) {
		pipeline := []bson.M{
			{"$group": bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}},
		}
		cursor, err := s.collection.Aggregate(ctx, pipeline)
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		var buckets []bucket
		if err := cursor.All(ctx, &buckets); err != nil {
			return nil, err
		}
		return buckets, nil
	}

	byCategory, err := groupBy("category")
	if err != nil {
		return models.IssueStats{}, err
	}
	for _, b := range byCategory {
		stats.ByCategory[models.IssueCategory(b.ID)] = b.Count
	}

	byStatus, err := groupBy("status")
	if err != nil {
		return models.IssueStats{}, err
	}
	for _, b := range byStatus {
		stats.ByStatus[models.IssueStatus(b.ID)] = b.Count
	}

	return stats, nil
}

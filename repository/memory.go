package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"citifix-be/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryIssueStore is an in-process IssueStore. It preserves insertion order
// and applies the same filter semantics as the mongo implementation. Used by
// the test suite and usable as a standalone store for single-process runs.
type MemoryIssueStore struct {
	mu     sync.RWMutex
	issues []models.Issue
	index  map[primitive.ObjectID]int
}

func NewMemoryIssueStore() *MemoryIssueStore {
	return &MemoryIssueStore{index: map[primitive.ObjectID]int{}}
}

func (s *MemoryIssueStore) Create(_ context.Context, issue *models.Issue) (models.Issue, error) {
	if err := validateNewIssue(issue); err != nil {
		return models.Issue{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if issue.ID.IsZero() {
		issue.ID = primitive.NewObjectID()
	}
	if issue.CreatedAt.IsZero() {
		issue.CreatedAt = time.Now()
	}
	issue.UpdatedAt = issue.CreatedAt

	s.index[issue.ID] = len(s.issues)
	s.issues = append(s.issues, *issue)
	return *issue, nil
}

func (s *MemoryIssueStore) Get(_ context.Context, id primitive.ObjectID) (models.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Issue{}, models.ErrNotFound
	}
	return s.issues[i], nil
}

func (s *MemoryIssueStore) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Issue{}
	for _, issue := range s.issues {
		if issue.UserID == userID {
			out = append(out, issue)
		}
	}
	return out, nil
}

func (s *MemoryIssueStore) ListAll(_ context.Context, filter models.IssueFilter) ([]models.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	out := []models.Issue{}
	for _, issue := range s.issues {
		if filter.Status != "" && issue.Status != filter.Status {
			continue
		}
		if filter.Category != "" && issue.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(issue.Title), search) &&
			!strings.Contains(strings.ToLower(issue.Description), search) {
			continue
		}
		out = append(out, issue)
	}
	return out, nil
}

func (s *MemoryIssueStore) Update(_ context.Context, id primitive.ObjectID, update models.IssueUpdate) (models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return models.Issue{}, models.ErrNotFound
	}

	issue := s.issues[i]
	if update.Status != nil {
		issue.Status = *update.Status
	}
	if update.Department != nil {
		issue.Department = *update.Department
	}
	issue.UpdatedAt = time.Now()
	s.issues[i] = issue
	return issue, nil
}

func (s *MemoryIssueStore) Stats(_ context.Context) (models.IssueStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.IssueStats{
		ByCategory: map[models.IssueCategory]int64{},
		ByStatus:   map[models.IssueStatus]int64{},
	}
	for _, issue := range s.issues {
		stats.Total++
		stats.ByCategory[issue.Category]++
		stats.ByStatus[issue.Status]++
		if issue.Status == models.Pending || issue.Status == models.InProgress {
			stats.Open++
		}
	}
	return stats, nil
}

// MemoryUserStore is an in-process UserStore.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
	index map[primitive.ObjectID]int
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{index: map[primitive.ObjectID]int{}}
}

func (s *MemoryUserStore) Create(_ context.Context, user *models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.UpdatedAt = user.CreatedAt

	s.index[user.ID] = len(s.users)
	s.users = append(s.users, *user)
	return *user, nil
}

func (s *MemoryUserStore) Get(_ context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return s.users[i], nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (s *MemoryUserStore) IncrementRewardPoints(_ context.Context, id primitive.ObjectID, points int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return models.User{}, models.ErrNotFound
	}

	user := s.users[i]
	user.RewardPoints += points
	user.UpdatedAt = time.Now()
	s.users[i] = user
	return user, nil
}

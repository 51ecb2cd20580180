package services

import (
	"context"

	"citifix-be/models"
	"citifix-be/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LifecycleService owns the issue state machine. All issue mutations flow
// through it; the HTTP layer never touches the stores directly.
//
// States: Pending (initial) -> In Progress -> Resolved. Transitions are
// otherwise unrestricted: re-setting the same status or moving backward is
// allowed, and the reward trigger is tied to the value Resolved alone.
type LifecycleService struct {
	issues  repository.IssueStore
	users   repository.UserStore
	rewards *RewardLedger
}

func NewLifecycleService(issues repository.IssueStore, users repository.UserStore) *LifecycleService {
	return &LifecycleService{
		issues:  issues,
		users:   users,
		rewards: NewRewardLedger(users),
	}
}

// SubmitIssue classifies the description and persists a new Pending issue
// with no department. The store enforces the creation invariants (location
// present, title/description non-empty).
func (s *LifecycleService) SubmitIssue(ctx context.Context, userID primitive.ObjectID, title, description string, imageURL *string, location *models.GeoPoint) (models.Issue, error) {
	issue := models.Issue{
		UserID:      userID,
		Title:       title,
		Description: description,
		Category:    Classify(description),
		ImageURL:    imageURL,
		Location:    location,
		Status:      models.Pending,
	}
	return s.issues.Create(ctx, &issue)
}

// AssignDepartment sets the issue's department. Assigning a department to a
// Pending issue also moves it to In Progress; issues already In Progress or
// Resolved keep their status. No reward side effect.
func (s *LifecycleService) AssignDepartment(ctx context.Context, issueID primitive.ObjectID, department string) (models.Issue, error) {
	if department == "" {
		return models.Issue{}, &models.ValidationError{Field: "department", Message: "department is required"}
	}

	issue, err := s.issues.Get(ctx, issueID)
	if err != nil {
		return models.Issue{}, err
	}

	update := models.IssueUpdate{Department: &department}
	if issue.Status == models.Pending {
		inProgress := models.InProgress
		update.Status = &inProgress
	}
	return s.issues.Update(ctx, issueID, update)
}

// SetStatus writes the new status and, only when that status is Resolved,
// credits the reporting citizen after the write succeeds. There is no edge
// guard: marking an already-Resolved issue Resolved again credits again.
func (s *LifecycleService) SetStatus(ctx context.Context, issueID primitive.ObjectID, status models.IssueStatus) (models.Issue, error) {
	if !models.ValidStatus(status) {
		return models.Issue{}, &models.ValidationError{Field: "status", Message: "status must be Pending, In Progress or Resolved"}
	}

	issue, err := s.issues.Update(ctx, issueID, models.IssueUpdate{Status: &status})
	if err != nil {
		return models.Issue{}, err
	}

	if status == models.Resolved {
		s.rewards.Credit(ctx, issue.UserID, ResolveRewardPoints)
	}
	return issue, nil
}

// GetIssue returns a single issue by id.
func (s *LifecycleService) GetIssue(ctx context.Context, issueID primitive.ObjectID) (models.Issue, error) {
	return s.issues.Get(ctx, issueID)
}

// ListUserIssues returns a citizen's issues in submission order.
func (s *LifecycleService) ListUserIssues(ctx context.Context, userID primitive.ObjectID) ([]models.Issue, error) {
	return s.issues.ListByUser(ctx, userID)
}

// ListIssues returns all issues matching the filter; an empty filter returns
// everything.
func (s *LifecycleService) ListIssues(ctx context.Context, filter models.IssueFilter) ([]models.Issue, error) {
	return s.issues.ListAll(ctx, filter)
}

// Stats returns aggregate issue counts for the admin dashboard.
func (s *LifecycleService) Stats(ctx context.Context) (models.IssueStats, error) {
	return s.issues.Stats(ctx)
}

// GetUser returns a user, primarily so the UI can display reward points.
func (s *LifecycleService) GetUser(ctx context.Context, userID primitive.ObjectID) (models.User, error) {
	return s.users.Get(ctx, userID)
}

package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"citifix-be/models"
	"citifix-be/repository"
	"citifix-be/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router *gin.Engine
	issues *repository.MemoryIssueStore
	users  *repository.MemoryUserStore
}

// newTestEnv wires the controllers against in-memory stores with a stub auth
// middleware injecting the given user.
func newTestEnv(t *testing.T, user models.User) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issues := repository.NewMemoryIssueStore()
	users := repository.NewMemoryUserStore()
	created, err := users.Create(context.Background(), &user)
	require.NoError(t, err)

	lifecycle := services.NewLifecycleService(issues, users)
	ic := NewIssueController(lifecycle)
	ac := NewAdminController(lifecycle)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", created.ID.Hex())
		c.Set("role", string(created.Role))
	})
	r.POST("/api/issue/create", ic.CreateIssue)
	r.GET("/api/issue/my", ic.GetMyIssues)
	r.GET("/api/issue/:id", ic.GetIssue)
	r.GET("/api/admin/issues", ac.ListIssues)
	r.PATCH("/api/admin/issue/:id/department", ac.AssignDepartment)
	r.PATCH("/api/admin/issue/:id/status", ac.SetStatus)

	return testEnv{router: r, issues: issues, users: users}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateIssueEndpoint(t *testing.T) {
	env := newTestEnv(t, models.User{Name: "Asha", Email: "asha@example.com", Role: models.RoleCitizen})

	w := doJSON(t, env.router, http.MethodPost, "/api/issue/create", gin.H{
		"title":       "Big pothole",
		"description": "huge pothole on Main St",
		"location":    gin.H{"lat": 1.0, "lng": 1.0},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var issue models.Issue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issue))
	assert.Equal(t, models.Road, issue.Category)
	assert.Equal(t, models.Pending, issue.Status)
	assert.Empty(t, issue.Department)
}

func TestCreateIssueEndpointRejectsMissingLocation(t *testing.T) {
	env := newTestEnv(t, models.User{Name: "Asha", Email: "asha@example.com", Role: models.RoleCitizen})

	w := doJSON(t, env.router, http.MethodPost, "/api/issue/create", gin.H{
		"title":       "Big pothole",
		"description": "huge pothole on Main St",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIssueEndpointNotFound(t *testing.T) {
	env := newTestEnv(t, models.User{Name: "Asha", Email: "asha@example.com", Role: models.RoleCitizen})

	w := doJSON(t, env.router, http.MethodGet, "/api/issue/64b0c0ffee0ddba11ad0c0de", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, env.router, http.MethodGet, "/api/issue/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminTriageEndpoints(t *testing.T) {
	env := newTestEnv(t, models.User{Name: "Officer", Email: "officer@example.com", Role: models.RoleAdmin, Department: "Roads"})

	reporter, err := env.users.Create(context.Background(), &models.User{
		Name: "Asha", Email: "asha@example.com", Role: models.RoleCitizen,
	})
	require.NoError(t, err)

	issue, err := env.issues.Create(context.Background(), &models.Issue{
		UserID:      reporter.ID,
		Title:       "Big pothole",
		Description: "huge pothole on Main St",
		Category:    models.Road,
		Location:    &models.GeoPoint{Lat: 1, Lng: 1},
		Status:      models.Pending,
	})
	require.NoError(t, err)

	w := doJSON(t, env.router, http.MethodPatch, "/api/admin/issue/"+issue.ID.Hex()+"/department", gin.H{
		"department": "Roads",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Issue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Roads", updated.Department)
	assert.Equal(t, models.InProgress, updated.Status)

	w = doJSON(t, env.router, http.MethodPatch, "/api/admin/issue/"+issue.ID.Hex()+"/status", gin.H{
		"status": "Resolved",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.Resolved, updated.Status)

	credited, err := env.users.Get(context.Background(), reporter.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), credited.RewardPoints)

	w = doJSON(t, env.router, http.MethodPatch, "/api/admin/issue/"+issue.ID.Hex()+"/status", gin.H{
		"status": "Closed",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminListIssuesFilter(t *testing.T) {
	env := newTestEnv(t, models.User{Name: "Officer", Email: "officer@example.com", Role: models.RoleAdmin})

	userID := func() models.User {
		u, err := env.users.Create(context.Background(), &models.User{Name: "Asha", Email: "a@example.com", Role: models.RoleCitizen})
		require.NoError(t, err)
		return u
	}()

	seed := func(title string, category models.IssueCategory, status models.IssueStatus) {
		_, err := env.issues.Create(context.Background(), &models.Issue{
			UserID:      userID.ID,
			Title:       title,
			Description: title,
			Category:    category,
			Location:    &models.GeoPoint{Lat: 1, Lng: 1},
			Status:      status,
		})
		require.NoError(t, err)
	}
	seed("pothole one", models.Road, models.Pending)
	seed("burst pipe", models.Water, models.Resolved)
	seed("pothole two", models.Road, models.Resolved)

	w := doJSON(t, env.router, http.MethodGet, "/api/admin/issues?status=Resolved&category=Road", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Issues      []models.Issue `json:"issues"`
		TotalIssues int            `json:"totalIssues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Issues, 1)
	assert.Equal(t, "pothole two", response.Issues[0].Title)
	assert.Equal(t, 1, response.TotalIssues)
}

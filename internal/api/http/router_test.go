package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kig-backend/internal/domain"
	"kig-backend/internal/metrics"
	"kig-backend/internal/repository/memory"
	"kig-backend/internal/security"
	"kig-backend/internal/service"
	"kig-backend/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.NewSeededStore()
	tokens := security.NewTokenManager("test-secret", 7*24*time.Hour)
	collector := metrics.NewCollector()
	recorder := service.NewActivityRecorder(store.ActivityLogs(), collector)
	blobs := storage.NewMockBlobStorage("issues")

	auth := service.NewAuthService(store.Users(), tokens, recorder)
	router := NewRouter(Services{
		Auth:       auth,
		Issues:     service.NewIssueService(store.Issues(), store.Users(), blobs, recorder, service.NoopNotifier{}, collector),
		WorkGroups: service.NewWorkGroupService(store.WorkGroups(), recorder),
		Tasks:      service.NewTaskService(store.Tasks()),
		Users:      service.NewUserService(store.Users()),
		Activity:   service.NewActivityService(store.ActivityLogs()),
		Stats:      service.NewStatsService(store.Issues(), store.WorkGroups()),
		Metrics:    collector,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func loginAs(t *testing.T, server *httptest.Server, email, password string) string {
	t.Helper()
	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "",
		map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestAuthEndpoints(t *testing.T) {
	server := newTestServer(t)

	t.Run("Login success", func(t *testing.T) {
		token := loginAs(t, server, "admin@kig.com", "admin123")

		resp := doJSON(t, http.MethodGet, server.URL+"/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var user domain.User
		decodeBody(t, resp, &user)
		assert.Equal(t, "admin@kig.com", user.Email)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("Login bad password", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "",
			map[string]string{"email": "admin@kig.com", "password": "wrong"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Me without token", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/auth/me", "", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Register then login", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", "",
			map[string]string{"email": "new@kig.com", "name": "New User", "password": "password123"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var body struct {
			Token string       `json:"token"`
			User  *domain.User `json:"user"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, domain.RoleResident, body.User.Role)
		assert.NotEmpty(t, body.Token)
	})

	t.Run("Register duplicate email", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", "",
			map[string]string{"email": "admin@kig.com", "name": "Impostor", "password": "password123"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestIssueEndpoints(t *testing.T) {
	server := newTestServer(t)
	adminToken := loginAs(t, server, "admin@kig.com", "admin123")

	t.Run("List is public", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/issues", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var issues []domain.Issue
		decodeBody(t, resp, &issues)
		assert.Len(t, issues, 2)
	})

	t.Run("Create requires auth", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/issues", "",
			map[string]any{"title": "X", "description": "Y", "category": "water"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Create and fetch", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/issues", adminToken, map[string]any{
			"title":       "Broken street light",
			"description": "Pole 14 on Queen Street has been dark for a week.",
			"category":    "lights",
			"location":    map[string]any{"latitude": -34.04, "longitude": 23.05, "address": "Queen Street"},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var created domain.Issue
		decodeBody(t, resp, &created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, domain.StatusOpen, created.Status)
		assert.Equal(t, domain.PriorityMedium, created.Priority)

		got := doJSON(t, http.MethodGet, server.URL+"/api/issues/"+created.ID, "", nil)
		require.Equal(t, http.StatusOK, got.StatusCode)
		var fetched domain.Issue
		decodeBody(t, got, &fetched)
		assert.Equal(t, created.ID, fetched.ID)
	})

	t.Run("Create with missing title", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/issues", adminToken,
			map[string]any{"description": "Y", "category": "water"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Get missing issue", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/issues/nope", "", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Resolve issue", func(t *testing.T) {
		resp := doJSON(t, http.MethodPatch, server.URL+"/api/issues/1", adminToken,
			map[string]string{"status": "resolved"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var updated domain.Issue
		decodeBody(t, resp, &updated)
		assert.Equal(t, domain.StatusResolved, updated.Status)
		assert.NotNil(t, updated.ResolvedAt)
	})

	t.Run("Update blocked for unrelated resident", func(t *testing.T) {
		register := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", "",
			map[string]string{"email": "bystander@kig.com", "name": "Bystander", "password": "password123"})
		require.Equal(t, http.StatusCreated, register.StatusCode)
		var body struct {
			Token string `json:"token"`
		}
		decodeBody(t, register, &body)

		resp := doJSON(t, http.MethodPatch, server.URL+"/api/issues/2", body.Token,
			map[string]string{"status": "closed"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestPhotoUpload(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "leader@kig.com", "leader123")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("photo", "a.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/issues/temp/photos", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "https://mockblob.core.windows.net/issues/temp/a.jpg", body["url"])
}

func TestWorkGroupAndTaskEndpoints(t *testing.T) {
	server := newTestServer(t)
	leaderToken := loginAs(t, server, "leader@kig.com", "leader123")

	t.Run("Resident cannot create group", func(t *testing.T) {
		register := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", "",
			map[string]string{"email": "resident@kig.com", "name": "Resident", "password": "password123"})
		require.Equal(t, http.StatusCreated, register.StatusCode)
		var body struct {
			Token string `json:"token"`
		}
		decodeBody(t, register, &body)

		resp := doJSON(t, http.MethodPost, server.URL+"/api/workgroups", body.Token,
			map[string]any{"name": "Lighting", "specialization": []string{"lights"}})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Leader creates group and task", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/workgroups", leaderToken,
			map[string]any{"name": "Lighting Crew", "specialization": []string{"lights"}})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var group domain.WorkGroup
		decodeBody(t, resp, &group)
		assert.NotEmpty(t, group.ID)
		assert.True(t, group.IsActive)

		taskResp := doJSON(t, http.MethodPost, server.URL+"/api/tasks", leaderToken,
			map[string]any{"title": "Replace pole 14", "workGroupId": group.ID})
		require.Equal(t, http.StatusCreated, taskResp.StatusCode)
		var task domain.Task
		decodeBody(t, taskResp, &task)
		assert.Equal(t, domain.TaskStatusPending, task.Status)

		listResp := doJSON(t, http.MethodGet, server.URL+"/api/workgroups/"+group.ID+"/tasks", "", nil)
		require.Equal(t, http.StatusOK, listResp.StatusCode)
		var tasks []domain.Task
		decodeBody(t, listResp, &tasks)
		require.Len(t, tasks, 1)
		assert.Equal(t, task.ID, tasks[0].ID)
	})
}

func TestActivityAndStatsEndpoints(t *testing.T) {
	server := newTestServer(t)

	t.Run("Activity honors limit", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/activity?limit=2", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var entries []domain.ActivityLog
		decodeBody(t, resp, &entries)
		assert.Len(t, entries, 2)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/activity?limit=abc", "", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Stats", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/stats", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var stats service.Stats
		decodeBody(t, resp, &stats)
		assert.Equal(t, 2, stats.TotalIssues)
		assert.Equal(t, 2, stats.ActiveWorkGroups)
	})

	t.Run("Healthz", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Users list is admin only", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/users", "", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		token := loginAs(t, server, "admin@kig.com", "admin123")
		authed := doJSON(t, http.MethodGet, server.URL+"/api/users", token, nil)
		require.Equal(t, http.StatusOK, authed.StatusCode)
		var users []domain.User
		decodeBody(t, authed, &users)
		assert.Len(t, users, 2)
	})
}

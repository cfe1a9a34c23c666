package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"kig-backend/internal/domain"
	"kig-backend/internal/metrics"
	"kig-backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth       service.AuthService
	Issues     service.IssueService
	WorkGroups service.WorkGroupService
	Tasks      service.TaskService
	Users      service.UserService
	Activity   service.ActivityService
	Stats      service.StatsService
	Metrics    *metrics.Collector
}

// NewRouter builds the full route table. Reads are public, mutations require
// an authenticated role at or above the route's threshold.
func NewRouter(s Services) *mux.Router {
	authHandler := NewAuthHandler(s.Auth)
	issueHandler := NewIssueHandler(s.Issues, s.Auth)
	groupHandler := NewWorkGroupHandler(s.WorkGroups, s.Tasks)
	taskHandler := NewTaskHandler(s.Tasks)
	activityHandler := NewActivityHandler(s.Activity)
	userHandler := NewUserHandler(s.Users, s.Stats)

	limiter := newRateLimiter(1, 5)

	router := mux.NewRouter()
	router.Use(loggingMiddleware(s.Metrics))
	router.Use(authMiddleware(s.Auth))

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	router.Handle("/metrics", s.Metrics.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/login", limiter.limit(authHandler.Login)).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", limiter.limit(authHandler.Register)).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", authHandler.Me).Methods(http.MethodGet)

	api.HandleFunc("/issues", issueHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/issues", requireRole(s.Auth, domain.RoleResident, issueHandler.Create)).Methods(http.MethodPost)
	api.HandleFunc("/issues/{id}", issueHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/issues/{id}", requireRole(s.Auth, domain.RoleResident, issueHandler.Update)).Methods(http.MethodPatch)
	api.HandleFunc("/issues/{id}/photos", requireRole(s.Auth, domain.RoleResident, issueHandler.UploadPhoto)).Methods(http.MethodPost)

	api.HandleFunc("/workgroups", groupHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/workgroups", requireRole(s.Auth, domain.RoleWorkGroupLeader, groupHandler.Create)).Methods(http.MethodPost)
	api.HandleFunc("/workgroups/{id}", groupHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/workgroups/{id}/tasks", groupHandler.Tasks).Methods(http.MethodGet)

	api.HandleFunc("/tasks", requireRole(s.Auth, domain.RoleWorkGroupLeader, taskHandler.Create)).Methods(http.MethodPost)

	api.HandleFunc("/activity", activityHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/stats", userHandler.Stats).Methods(http.MethodGet)
	api.HandleFunc("/users", requireRole(s.Auth, domain.RoleAdmin, userHandler.List)).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", userHandler.Get).Methods(http.MethodGet)

	return router
}

package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"kig-backend/internal/domain"
	"kig-backend/internal/service"
)

// 10 MB cap on photo uploads.
const maxUploadBytes = 10 << 20

type IssueHandler struct {
	issues service.IssueService
	auth   service.AuthService
}

func NewIssueHandler(issues service.IssueService, auth service.AuthService) *IssueHandler {
	return &IssueHandler{issues: issues, auth: auth}
}

func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	issues, err := h.issues.ListIssues(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
	issue, err := h.issues.GetIssue(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issue)
}

func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateIssueInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.ReportedBy == "" {
		input.ReportedBy = userFromContext(r.Context()).ID
	}

	issue, err := h.issues.CreateIssue(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, issue)
}

func (h *IssueHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	user := userFromContext(r.Context())

	existing, err := h.issues.GetIssue(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !h.auth.CanManageIssue(user, existing) {
		writeError(w, http.StatusForbidden, "Insufficient permissions")
		return
	}

	var update domain.IssueUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	issue, err := h.issues.UpdateIssue(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issue)
}

// UploadPhoto accepts a multipart form with a "photo" file part and attaches
// the stored URL to the issue.
func (h *IssueHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing photo file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read upload")
		return
	}

	url, err := h.issues.UploadPhoto(r.Context(), id, header.Filename, data)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

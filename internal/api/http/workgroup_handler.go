package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"kig-backend/internal/service"
)

type WorkGroupHandler struct {
	groups service.WorkGroupService
	tasks  service.TaskService
}

func NewWorkGroupHandler(groups service.WorkGroupService, tasks service.TaskService) *WorkGroupHandler {
	return &WorkGroupHandler{groups: groups, tasks: tasks}
}

func (h *WorkGroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groups.ListWorkGroups(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *WorkGroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	group, err := h.groups.GetWorkGroup(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (h *WorkGroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateWorkGroupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.LeaderID == "" {
		input.LeaderID = userFromContext(r.Context()).ID
	}

	group, err := h.groups.CreateWorkGroup(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

// Tasks lists the tasks belonging to one work group.
func (h *WorkGroupHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.ListTasksByWorkGroup(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

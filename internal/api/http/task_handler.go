package http

import (
	"encoding/json"
	"net/http"

	"kig-backend/internal/service"
)

type TaskHandler struct {
	tasks service.TaskService
}

func NewTaskHandler(tasks service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.CreatedBy == "" {
		input.CreatedBy = userFromContext(r.Context()).ID
	}

	task, err := h.tasks.CreateTask(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

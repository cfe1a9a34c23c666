package http

import (
	"net/http"
	"strconv"

	"kig-backend/internal/service"
)

type ActivityHandler struct {
	activity service.ActivityService
}

func NewActivityHandler(activity service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// List returns recent activity, newest first. The optional limit query
// parameter caps the number of entries.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	entries, err := h.activity.ListActivity(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mergington/activity-roster/internal/model"
	"github.com/mergington/activity-roster/internal/roster"
	"github.com/mergington/activity-roster/internal/service"
)

// ActivityHandler holds all HTTP handlers for the activity roster API.
type ActivityHandler struct {
	svc *service.RosterService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc *service.RosterService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.DetailResponse{Detail: detail})
}

// activityName extracts the {activity_name} path parameter. chi routes on
// the decoded path in the common case, but when the request carries a
// RawPath the parameter arrives percent-encoded, so unescape defensively
// and keep the raw value if unescaping fails.
func activityName(r *http.Request) string {
	name := chi.URLParam(r, "activity_name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// ListActivities handles GET /activities
// Returns the full roster as a mapping from activity name to its record.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListActivities(r.Context()))
}

// Signup handles POST /activities/{activity_name}/signup?email=...
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	err := h.svc.Signup(r.Context(), name, email)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, model.MessageResponse{
			Message: fmt.Sprintf("%s signed up for %s", email, name),
		})
	case errors.Is(err, roster.ErrNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, roster.ErrAlreadyRegistered):
		writeError(w, http.StatusBadRequest, "Already signed up")
	case errors.Is(err, roster.ErrActivityFull):
		writeError(w, http.StatusBadRequest, "Activity is full")
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

// Unregister handles POST /activities/{activity_name}/unregister?email=...
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	err := h.svc.Unregister(r.Context(), name, email)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, model.MessageResponse{
			Message: fmt.Sprintf("%s has been unregistered from %s", email, name),
		})
	case errors.Is(err, roster.ErrNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, roster.ErrNotRegistered):
		writeError(w, http.StatusBadRequest, "Not signed up")
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

// RootRedirect handles GET /
// The bundled front-end lives under /static/.
func RootRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

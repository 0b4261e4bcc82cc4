package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleActivitiesList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activities_list"

	roster, err := h.Roster.ListActivities(r.Context())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, roster)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_signup"

	activityName := activityNameParam(r)
	email, err := EmailQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	msg, err := h.Roster.Signup(r.Context(), activityName, email)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_unregister"

	activityName := activityNameParam(r)
	email, err := EmailQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	msg, err := h.Roster.Unregister(r.Context(), activityName, email)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// activityNameParam достаёт название занятия из пути.
// chi матчит по RawPath, если он задан, поэтому в этом случае параметр надо раскодировать.
func activityNameParam(r *http.Request) string {
	name := chi.URLParam(r, "activity_name")
	if r.URL.RawPath == "" {
		return name
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

package http

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
)

const staticIndex = "/static/index.html"

// mountStatic подключает фронтенд из StaticDir под /static и редирект с корня.
func (h *Handler) mountStatic(r chi.Router) {
	if h.opts.StaticDir == "" {
		return
	}
	info, err := os.Stat(h.opts.StaticDir)
	if err != nil || !info.IsDir() {
		h.Log.Warn("static dir not available, UI disabled", "dir", h.opts.StaticDir)
		return
	}

	fs := http.StripPrefix("/static/", http.FileServer(http.Dir(h.opts.StaticDir)))
	r.Handle("/static/*", fs)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, staticIndex, http.StatusTemporaryRedirect)
	})
}

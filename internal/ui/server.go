package ui

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"pingwatch/internal/snapshot"
)

// ActionSink is the capability surface for side-effecting menu actions. The
// monitoring core never touches process lifecycle; the HTTP surface routes
// user actions here.
type ActionSink interface {
	// Configure launches the target editor as a separate process.
	Configure() error
	// Quit terminates the process.
	Quit()
}

type menuView struct {
	Title   string    `json:"title"`
	Tooltip string    `json:"tooltip"`
	Color   IconColor `json:"color"`
	Lines   []string  `json:"lines"`
}

// NewRouter builds the status surface consumed by tray/menu frontends:
// the raw snapshot, a rendered menu model, and the two user actions.
func NewRouter(actions ActionSink, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot.Get()); err != nil {
			http.Error(w, "failed to encode status", http.StatusInternalServerError)
			return
		}
	})

	r.Get("/menu", func(w http.ResponseWriter, r *http.Request) {
		s := snapshot.Get()
		now := time.Now()
		view := menuView{
			Title:   Title(s, now),
			Tooltip: Tooltip(s),
			Color:   Color(s),
			Lines:   MenuLines(s, now),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(view); err != nil {
			http.Error(w, "failed to encode menu", http.StatusInternalServerError)
			return
		}
	})

	r.Post("/actions/configure", func(w http.ResponseWriter, r *http.Request) {
		if err := actions.Configure(); err != nil {
			logger.Error("configure action failed", zap.Error(err))
			http.Error(w, "failed to launch editor", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	})

	r.Post("/actions/quit", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		// respond first; Quit does not return
		go actions.Quit()
	})

	return r
}

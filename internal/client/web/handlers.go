package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"NotesApp/internal/client/notify"
	"NotesApp/internal/client/render"
	"NotesApp/internal/client/service"
	"NotesApp/internal/config"
	"NotesApp/internal/middleware"
)

type Handler struct {
	Router chi.Router
}

// NewHandler собирает роутер браузерного клиента.
func NewHandler(
	sync *service.Synchronizer,
	notes *service.Notes,
	renderer *render.Renderer,
	flash *notify.FlashStore,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithSession(cfg.SessionSecret))

	pages := NewPageHandler(sync, notes, renderer, flash, logger)

	r.Get("/", pages.Home)
	r.Post("/notes", pages.AddNote)
	r.Get("/notes/{id}", pages.Note)
	r.Post("/notes/{id}/delete", pages.DeleteNote)
	r.Post("/notes/{id}/archive", pages.ToggleArchive)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	return &Handler{Router: r}
}

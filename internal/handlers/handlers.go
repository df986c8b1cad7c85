package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"NotesApp/internal/config"
	"NotesApp/internal/middleware"
	"NotesApp/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров notes API
func NewHandler(
	noteService *service.NoteService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	noteHandler := NewNoteHandler(noteService, logger, config)

	// те же маршруты доступны и с префиксом /v2, как у публичного API
	r.Group(noteHandler.routes)
	r.Route("/v2", noteHandler.routes)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	return &Handler{Router: r}
}

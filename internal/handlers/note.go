package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"NotesApp/internal/config"
	"NotesApp/internal/repo"
	"NotesApp/internal/service"
)

// maxBodyBytes ограничивает тело POST /notes.
const maxBodyBytes = 1 << 20

// NoteHandler обрабатывает запросы к заметкам.
type NoteHandler struct {
	NoteService *service.NoteService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewNoteHandler создаёт хендлер заметок
func NewNoteHandler(noteService *service.NoteService, logger *zap.SugaredLogger, cfg *config.Config) *NoteHandler {
	return &NoteHandler{NoteService: noteService, Logger: logger, Config: cfg}
}

func (h *NoteHandler) routes(r chi.Router) {
	r.Get("/notes", h.ListActive)
	r.Get("/notes/archived", h.ListArchived)
	r.Post("/notes", h.Create)
	r.Get("/notes/{id}", h.Get)
	r.Delete("/notes/{id}", h.Delete)
	r.Post("/notes/{id}/archive", h.Archive)
	r.Post("/notes/{id}/unarchive", h.Unarchive)
}

// envelope — общий формат ответа API.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// NoteRequest — тело POST /notes.
type NoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func success(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Status: "success", Message: message, Data: data})
}

func fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Status: "fail", Message: message})
}

// serviceError переводит ошибку сервиса в HTTP ответ.
func (h *NoteHandler) serviceError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		fail(w, http.StatusNotFound, "Note is not found")
	case errors.Is(err, service.ErrInvalidPayload):
		fail(w, http.StatusBadRequest, "Title and body are required")
	default:
		h.Logger.Errorw(op+": service error", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Status: "error", Message: "Internal server error"})
	}
}

// ListActive возвращает неархивные заметки
func (h *NoteHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	notes, err := h.NoteService.ListActive(r.Context())
	if err != nil {
		h.serviceError(w, "ListActive", "", err)
		return
	}
	success(w, http.StatusOK, "Notes retrieved", notes)
}

// ListArchived возвращает архивные заметки
func (h *NoteHandler) ListArchived(w http.ResponseWriter, r *http.Request) {
	notes, err := h.NoteService.ListArchived(r.Context())
	if err != nil {
		h.serviceError(w, "ListArchived", "", err)
		return
	}
	success(w, http.StatusOK, "Archived notes retrieved", notes)
}

// Create создаёт заметку
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	n, err := h.NoteService.Create(r.Context(), req.Title, req.Body)
	if err != nil {
		h.serviceError(w, "Create", "", err)
		return
	}
	success(w, http.StatusCreated, "Note created", n)
}

// Get возвращает одну заметку
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	n, err := h.NoteService.Get(r.Context(), id)
	if err != nil {
		h.serviceError(w, "Get", id, err)
		return
	}
	success(w, http.StatusOK, "Note retrieved", n)
}

// Delete удаляет заметку
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.NoteService.Delete(r.Context(), id); err != nil {
		h.serviceError(w, "Delete", id, err)
		return
	}
	success(w, http.StatusOK, "Note deleted", nil)
}

// Archive переносит заметку в архив
func (h *NoteHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.NoteService.Archive(r.Context(), id); err != nil {
		h.serviceError(w, "Archive", id, err)
		return
	}
	success(w, http.StatusOK, "Note archived", nil)
}

// Unarchive возвращает заметку из архива
func (h *NoteHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.NoteService.Unarchive(r.Context(), id); err != nil {
		h.serviceError(w, "Unarchive", id, err)
		return
	}
	success(w, http.StatusOK, "Note unarchived", nil)
}

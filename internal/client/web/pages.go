package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"NotesApp/internal/client/notify"
	"NotesApp/internal/client/render"
	"NotesApp/internal/client/service"
)

// PageHandler связывает формы страницы с действиями над заметками.
type PageHandler struct {
	Sync     *service.Synchronizer
	Notes    *service.Notes
	Renderer *render.Renderer
	Flash    *notify.FlashStore
	Logger   *zap.SugaredLogger
}

func NewPageHandler(
	sync *service.Synchronizer,
	notes *service.Notes,
	renderer *render.Renderer,
	flash *notify.FlashStore,
	logger *zap.SugaredLogger,
) *PageHandler {
	return &PageHandler{Sync: sync, Notes: notes, Renderer: renderer, Flash: flash, Logger: logger}
}

// Home resynchronizes with the search query (?q=) and renders the page.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	board := h.Sync.Sync(r.Context(), r.URL.Query().Get("q"))
	h.renderHome(w, r, http.StatusOK, board, render.FormState{})
}

// AddNote handles #addNoteForm.
func (h *PageHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Warnw("AddNote: invalid form", "error", err)
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	title := r.PostForm.Get("title")
	body := r.PostForm.Get("body")

	if err := service.ValidateDraft(title, body); err != nil {
		// без обращения к API: последний снимок этой сессии, оба поля помечены
		form := render.FormState{Title: title, Body: body, Invalid: true}
		h.renderHome(w, r, http.StatusUnprocessableEntity, h.Sync.Current(r.Context()), form)
		return
	}

	h.Notes.Create(r.Context(), title, body)
	h.resync(w, r)
}

// DeleteNote handles .button-delete.
func (h *PageHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	h.Notes.Delete(r.Context(), chi.URLParam(r, "id"))
	h.resync(w, r)
}

// ToggleArchive handles .button-archive; the form carries the data-archived marker.
func (h *PageHandler) ToggleArchive(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	archived := r.PostForm.Get("archived") == "true"
	h.Notes.ToggleArchive(r.Context(), chi.URLParam(r, "id"), archived)
	h.resync(w, r)
}

// Note renders a single note.
func (h *PageHandler) Note(w http.ResponseWriter, r *http.Request) {
	data := render.PageData{}
	status := http.StatusOK
	if note, ok := h.Notes.Get(r.Context(), chi.URLParam(r, "id")); ok {
		card, err := h.Renderer.Card(*note)
		if err != nil {
			h.Logger.Errorw("Note: render failed", "id", note.ID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		data.Title = note.Title
		data.Detail = card
	} else {
		status = http.StatusNotFound
	}
	data.Notifications = h.popFlashes(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.Renderer.NoteDetail(w, data); err != nil {
		h.Logger.Errorw("Note: render page failed", "error", err)
	}
}

// resync — после любой мутации полная перерисовка через GET /.
func (h *PageHandler) resync(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PageHandler) renderHome(w http.ResponseWriter, r *http.Request, status int, board service.Board, form render.FormState) {
	data := render.PageData{
		Search:        board.Search,
		Active:        board.ActiveHTML(),
		Archived:      board.ArchivedHTML(),
		LoadingHidden: board.LoadingHidden,
		Stale:         board.Stale,
		Form:          form,
		Notifications: h.popFlashes(r),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.Renderer.Home(w, data); err != nil {
		h.Logger.Errorw("Home: render failed", "error", err)
	}
}

func (h *PageHandler) popFlashes(r *http.Request) []notify.Flash {
	key, ok := notify.SessionFromContext(r.Context())
	if !ok {
		return nil
	}
	return h.Flash.Pop(key)
}

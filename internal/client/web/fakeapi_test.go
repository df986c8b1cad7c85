package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"NotesApp/internal/client/model"
)

// fakeAPI — минимальная in-memory реализация контракта notes API для тестов.
type fakeAPI struct {
	mu    sync.Mutex
	notes []model.Note
	seq   int
	calls []string
	down  bool
}

func (f *fakeAPI) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) reply(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeAPI) find(id string) int {
	for i, n := range f.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	if f.down {
		f.reply(w, http.StatusInternalServerError, map[string]any{"status": "error", "message": "Service unavailable"})
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/notes":
		out := []model.Note{}
		for _, n := range f.notes {
			if !n.Archived {
				out = append(out, n)
			}
		}
		f.reply(w, http.StatusOK, map[string]any{"status": "success", "data": out})
	case r.Method == http.MethodGet && r.URL.Path == "/notes/archived":
		out := []model.Note{}
		for _, n := range f.notes {
			if n.Archived {
				out = append(out, n)
			}
		}
		f.reply(w, http.StatusOK, map[string]any{"status": "success", "data": out})
	case r.Method == http.MethodPost && r.URL.Path == "/notes":
		var d model.Draft
		_ = json.NewDecoder(r.Body).Decode(&d)
		f.seq++
		n := model.Note{ID: fmt.Sprintf("note-%d", f.seq), Title: d.Title, Body: d.Body, CreatedAt: time.Now().UTC()}
		f.notes = append(f.notes, n)
		f.reply(w, http.StatusCreated, map[string]any{"status": "success", "message": "Note created", "data": n})
	case len(parts) >= 2 && parts[0] == "notes":
		i := f.find(parts[1])
		if i < 0 {
			f.reply(w, http.StatusNotFound, map[string]any{"status": "fail", "message": "Note is not found"})
			return
		}
		switch {
		case r.Method == http.MethodGet && len(parts) == 2:
			f.reply(w, http.StatusOK, map[string]any{"status": "success", "data": f.notes[i]})
		case r.Method == http.MethodDelete && len(parts) == 2:
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			f.reply(w, http.StatusOK, map[string]any{"status": "success", "message": "Note deleted"})
		case r.Method == http.MethodPost && len(parts) == 3 && parts[2] == "archive":
			f.notes[i].Archived = true
			f.reply(w, http.StatusOK, map[string]any{"status": "success", "message": "Note archived"})
		case r.Method == http.MethodPost && len(parts) == 3 && parts[2] == "unarchive":
			f.notes[i].Archived = false
			f.reply(w, http.StatusOK, map[string]any{"status": "success", "message": "Note unarchived"})
		default:
			f.reply(w, http.StatusNotFound, map[string]any{"status": "fail", "message": "Not found"})
		}
	default:
		f.reply(w, http.StatusNotFound, map[string]any{"status": "fail", "message": "Not found"})
	}
}

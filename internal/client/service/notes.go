package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"NotesApp/internal/client/model"
	"NotesApp/internal/client/notify"
)

// ErrInvalidDraft is returned when the title or body is empty after trimming.
var ErrInvalidDraft = errors.New("title and body are required")

// NoteSource — операции notes API, которыми пользуется клиент.
// Реализуется *api.Client.
type NoteSource interface {
	ListActive(ctx context.Context) ([]model.Note, error)
	ListArchived(ctx context.Context) ([]model.Note, error)
	Get(ctx context.Context, id string) (*model.Note, error)
	Create(ctx context.Context, title, body string) (*model.Note, error)
	Archive(ctx context.Context, id string) (string, error)
	Unarchive(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}

// ValidateDraft checks the add-note form input.
func ValidateDraft(title, body string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return ErrInvalidDraft
	}
	return nil
}

// Notes performs note mutations on behalf of the user. Failures are reported
// through the notifier and surface to callers only as ok=false.
type Notes struct {
	source   NoteSource
	notifier notify.Notifier
	logger   *zap.SugaredLogger
}

func NewNotes(source NoteSource, n notify.Notifier, logger *zap.SugaredLogger) *Notes {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Notes{source: source, notifier: n, logger: logger}
}

func (s *Notes) fail(ctx context.Context, op string, err error) {
	s.logger.Warnw("note action failed", "op", op, "error", err)
	s.notifier.Notify(ctx, err.Error())
}

// Create validates and creates a note. The draft is sent as typed; only the
// emptiness check trims.
func (s *Notes) Create(ctx context.Context, title, body string) (*model.Note, bool) {
	if err := ValidateDraft(title, body); err != nil {
		return nil, false
	}
	note, err := s.source.Create(ctx, title, body)
	if err != nil {
		s.fail(ctx, "create", err)
		return nil, false
	}
	s.logger.Infow("note created", "id", note.ID)
	return note, true
}

// Get fetches a single note.
func (s *Notes) Get(ctx context.Context, id string) (*model.Note, bool) {
	note, err := s.source.Get(ctx, id)
	if err != nil {
		s.fail(ctx, "get", err)
		return nil, false
	}
	return note, true
}

// Delete removes a note.
func (s *Notes) Delete(ctx context.Context, id string) bool {
	if _, err := s.source.Delete(ctx, id); err != nil {
		s.fail(ctx, "delete", err)
		return false
	}
	s.logger.Infow("note deleted", "id", id)
	return true
}

// ToggleArchive unarchives the note when archived is true (the marker the
// control was rendered with) and archives it otherwise.
func (s *Notes) ToggleArchive(ctx context.Context, id string, archived bool) bool {
	var err error
	op := "archive"
	if archived {
		op = "unarchive"
		_, err = s.source.Unarchive(ctx, id)
	} else {
		_, err = s.source.Archive(ctx, id)
	}
	if err != nil {
		s.fail(ctx, op, err)
		return false
	}
	s.logger.Infow("note archive state changed", "id", id, "op", op)
	return true
}

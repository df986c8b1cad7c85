package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"NotesApp/internal/model"
	"NotesApp/internal/repo"
)

// ErrInvalidPayload — заголовок или текст заметки пустые.
var ErrInvalidPayload = errors.New("title and body must be non-empty strings")

// NoteService инкапсулирует бизнес-логику работы с Note.
type NoteService struct {
	repo   repo.NoteRepository
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewNoteService(r repo.NoteRepository, logger *zap.SugaredLogger) *NoteService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &NoteService{repo: r, logger: logger, now: time.Now}
}

// NewNoteID генерирует идентификатор вида notes-<uuid>.
func NewNoteID() string {
	return "notes-" + uuid.NewString()
}

// Create проверяет данные и сохраняет новую активную заметку.
func (s *NoteService) Create(ctx context.Context, title, body string) (*model.Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, ErrInvalidPayload
	}
	n := &model.Note{
		ID:        NewNoteID(),
		Title:     title,
		Body:      body,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	s.logger.Infow("note created", "id", n.ID)
	return n, nil
}

func (s *NoteService) Get(ctx context.Context, id string) (*model.Note, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *NoteService) ListActive(ctx context.Context) ([]model.Note, error) {
	return s.repo.List(ctx, false)
}

func (s *NoteService) ListArchived(ctx context.Context) ([]model.Note, error) {
	return s.repo.List(ctx, true)
}

func (s *NoteService) Archive(ctx context.Context, id string) error {
	return s.setArchived(ctx, id, true)
}

func (s *NoteService) Unarchive(ctx context.Context, id string) error {
	return s.setArchived(ctx, id, false)
}

func (s *NoteService) setArchived(ctx context.Context, id string, archived bool) error {
	if err := s.repo.SetArchived(ctx, id, archived); err != nil {
		return err
	}
	s.logger.Infow("note archive state changed", "id", id, "archived", archived)
	return nil
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("note deleted", "id", id)
	return nil
}

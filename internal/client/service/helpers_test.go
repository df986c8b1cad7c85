package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"NotesApp/internal/client/model"
	"NotesApp/internal/client/notify"
	"NotesApp/internal/client/render"
)

// mockSource — мок notes API
type mockSource struct{ mock.Mock }

func (m *mockSource) ListActive(ctx context.Context) ([]model.Note, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSource) ListArchived(ctx context.Context) ([]model.Note, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSource) Get(ctx context.Context, id string) (*model.Note, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSource) Create(ctx context.Context, title, body string) (*model.Note, error) {
	args := m.Called(ctx, title, body)
	if v, ok := args.Get(0).(*model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSource) Archive(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
func (m *mockSource) Unarchive(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
func (m *mockSource) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

var _ NoteSource = (*mockSource)(nil)

// recorder собирает уведомления
type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) Notify(_ context.Context, m string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, m)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}

var _ notify.Notifier = (*recorder)(nil)

func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.New(render.Options{Location: time.UTC})
	require.NoError(t, err)
	return r
}

func note(id, title string, archived bool) model.Note {
	return model.Note{
		ID:        id,
		Title:     title,
		Body:      "body of " + title,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Archived:  archived,
	}
}

func ids(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Note.ID)
	}
	return out
}

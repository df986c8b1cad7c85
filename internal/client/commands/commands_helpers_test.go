package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"NotesApp/internal/config"
	"NotesApp/internal/handlers"
	"NotesApp/internal/repo"
	"NotesApp/internal/service"
)

// перехват вывода CLI на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// newAPIConfig поднимает локальный notes API на in-memory SQLite и возвращает конфиг CLI.
func newAPIConfig(t *testing.T) (*config.Config, *httptest.Server) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	logger := zap.NewNop().Sugar()
	svc := service.NewNoteService(repo.NewNoteRepository(db), logger)
	srv := httptest.NewServer(handlers.NewHandler(svc, logger, &config.Config{}).Router)
	t.Cleanup(func() {
		srv.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	cfg := &config.Config{
		NotesAPIURL:    srv.URL,
		RequestTimeout: 5 * time.Second,
		TimeZone:       "UTC",
		TimeLayout:     config.DefaultTimeLayout,
	}
	return cfg, srv
}

func run(t *testing.T, cfg *config.Config, args ...string) (string, int) {
	t.Helper()
	var code int
	out := withStdoutCapture(t, func() { code = Dispatch(context.Background(), cfg, args) })
	return out, code
}

// section возвращает текст секции "Notes" или "Archived" из вывода printBoard.
func section(out, title string) string {
	i := strings.LastIndex(out, title+" (")
	if i < 0 {
		return ""
	}
	rest := out[i:]
	if title == "Notes" {
		if j := strings.Index(rest, "Archived ("); j >= 0 {
			return rest[:j]
		}
	}
	return rest
}

// createdID достаёт id из строки "Created <id>".
func createdID(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Created ") {
			return strings.TrimPrefix(line, "Created ")
		}
	}
	t.Fatalf("no Created line in output: %s", out)
	return ""
}

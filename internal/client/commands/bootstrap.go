package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"NotesApp/internal/client/api"
	"NotesApp/internal/client/notify"
	"NotesApp/internal/client/render"
	"NotesApp/internal/client/service"
	"NotesApp/internal/config"
)

// Logger используется командами; по умолчанию CLI ничего не логирует.
var Logger = zap.NewNop().Sugar()

// app — клиентские сервисы, собранные из конфигурации.
type app struct {
	notes    *service.Notes
	sync     *service.Synchronizer
	renderer *render.Renderer
}

func openApp(cfg *config.Config) (*app, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	client := api.NewClient(cfg.NotesAPIURL, api.WithTimeout(cfg.RequestTimeout), api.WithLogger(Logger))
	renderer, err := render.New(render.Options{Location: cfg.Location(), TimeLayout: cfg.TimeLayout})
	if err != nil {
		return nil, err
	}
	n := notify.Logged(notify.NewWriterNotifier(Out), Logger)
	return &app{
		notes:    service.NewNotes(client, n, Logger),
		sync:     service.NewSynchronizer(client, renderer, n, Logger),
		renderer: renderer,
	}, nil
}

// errNotified — ошибка уже показана пользователю через notifier.
var errNotified = errors.New("request failed")

// printBoard выполняет полную синхронизацию и печатает оба списка.
func (a *app) printBoard(ctx context.Context, search string) error {
	board := a.sync.Sync(ctx, search)
	if board.Stale {
		return errNotified
	}
	fmt.Fprintf(Out, "Notes (%d)\n", len(board.Active))
	for _, c := range board.Active {
		a.printCard(c)
	}
	fmt.Fprintf(Out, "Archived (%d)\n", len(board.Archived))
	for _, c := range board.Archived {
		a.printCard(c)
	}
	return nil
}

func (a *app) printCard(c service.Card) {
	fmt.Fprintf(Out, "- %s  %s  [%s]\n", c.Note.ID, c.Note.Title, a.renderer.FormatTime(c.Note.CreatedAt))
	if body := strings.TrimSpace(c.Note.Body); body != "" {
		fmt.Fprintf(Out, "    %s\n", strings.ReplaceAll(body, "\n", "\n    "))
	}
}

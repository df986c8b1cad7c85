package service

import (
	"context"
	"html/template"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"NotesApp/internal/client/model"
	"NotesApp/internal/client/notify"
	"NotesApp/internal/client/render"
)

// Card — отрисованная карточка вместе с заметкой, из которой она получена.
type Card struct {
	Note model.Note
	HTML template.HTML
}

// Board is one rendered snapshot of both lists.
type Board struct {
	Search        string
	Active        []Card
	Archived      []Card
	LoadingHidden bool
	// Stale is set when the last sync failed and the board is an older snapshot.
	Stale      bool
	Generation uint64
}

// ActiveHTML returns the rendered active cards in order.
func (b Board) ActiveHTML() []template.HTML { return cardsHTML(b.Active) }

// ArchivedHTML returns the rendered archived cards in order.
func (b Board) ArchivedHTML() []template.HTML { return cardsHTML(b.Archived) }

func cardsHTML(cards []Card) []template.HTML {
	out := make([]template.HTML, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.HTML)
	}
	return out
}

const (
	// maxViews ограничивает число сессий, для которых хранится последний снимок.
	maxViews = 1024
	viewTTL  = 30 * time.Minute
)

// Synchronizer rebuilds the board from a fresh fetch of the notes API.
// The last committed board is kept per session (see notify.WithSession);
// callers without a session share one view.
type Synchronizer struct {
	source   NoteSource
	renderer *render.Renderer
	notifier notify.Notifier
	logger   *zap.SugaredLogger

	mu     sync.Mutex
	issued uint64
	views  *expirable.LRU[string, Board]
}

func NewSynchronizer(source NoteSource, r *render.Renderer, n notify.Notifier, logger *zap.SugaredLogger) *Synchronizer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Synchronizer{
		source:   source,
		renderer: r,
		notifier: n,
		logger:   logger,
		views:    expirable.NewLRU[string, Board](maxViews, nil, viewTTL),
	}
}

// MatchesSearch reports whether a title matches search: case-insensitive substring.
func MatchesSearch(title, search string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(search))
}

func viewKey(ctx context.Context) string {
	key, _ := notify.SessionFromContext(ctx)
	return key
}

// Sync fetches active then archived notes, filters the active ones by search
// (title only) and renders both lists. The returned board is always built
// for this search. A sync that started before the session's committed one
// does not replace it. On failure the user is notified and the session's
// last committed board is returned with Stale set.
func (s *Synchronizer) Sync(ctx context.Context, search string) Board {
	key := viewKey(ctx)

	s.mu.Lock()
	s.issued++
	gen := s.issued
	s.mu.Unlock()

	board, err := s.build(ctx, search, gen)
	if err != nil {
		s.logger.Warnw("sync failed", "generation", gen, "error", err)
		s.notifier.Notify(ctx, err.Error())
		stale := s.Current(ctx)
		stale.LoadingHidden = true
		stale.Stale = true
		return stale
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if last, ok := s.views.Get(key); ok && gen < last.Generation {
		s.logger.Debugw("older sync result not committed", "generation", gen, "committed", last.Generation)
		return board
	}
	s.views.Add(key, board)
	return board
}

// Current returns the last board committed for the session in ctx.
// Its Search is the query that board was filtered with.
func (s *Synchronizer) Current(ctx context.Context) Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.views.Get(viewKey(ctx)); ok {
		return b
	}
	return Board{Active: []Card{}, Archived: []Card{}}
}

func (s *Synchronizer) build(ctx context.Context, search string, gen uint64) (Board, error) {
	active, err := s.source.ListActive(ctx)
	if err != nil {
		return Board{}, err
	}
	archived, err := s.source.ListArchived(ctx)
	if err != nil {
		return Board{}, err
	}

	board := Board{
		Search:        search,
		Active:        make([]Card, 0, len(active)),
		Archived:      make([]Card, 0, len(archived)),
		LoadingHidden: true,
		Generation:    gen,
	}
	for _, n := range active {
		// партиция определяется только флагом archived из ответа сервиса
		if n.Archived || !MatchesSearch(n.Title, search) {
			continue
		}
		html, err := s.renderer.Card(n)
		if err != nil {
			return Board{}, err
		}
		board.Active = append(board.Active, Card{Note: n, HTML: html})
	}
	for _, n := range archived {
		if !n.Archived {
			continue
		}
		html, err := s.renderer.Card(n)
		if err != nil {
			return Board{}, err
		}
		board.Archived = append(board.Archived, Card{Note: n, HTML: html})
	}
	s.logger.Debugw("sync done",
		"generation", gen,
		"active", len(board.Active),
		"archived", len(board.Archived),
		"search", search,
	)
	return board, nil
}

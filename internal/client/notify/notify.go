package notify

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"NotesApp/internal/client/api"
)

// Notifier presents a single human-readable message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// Func adapts a function to Notifier.
type Func func(ctx context.Context, message string)

func (f Func) Notify(ctx context.Context, message string) { f(ctx, message) }

func normalize(message string) string {
	if strings.TrimSpace(message) == "" {
		return api.DefaultMessage
	}
	return message
}

// WriterNotifier печатает сообщения в writer (используется CLI).
type WriterNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriterNotifier(out io.Writer) *WriterNotifier {
	return &WriterNotifier{out: out}
}

func (n *WriterNotifier) Notify(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "! %s\n", normalize(message))
}

// Logged wraps n so that every notification is also logged.
func Logged(n Notifier, logger *zap.SugaredLogger) Notifier {
	return Func(func(ctx context.Context, message string) {
		logger.Infow("user notification", "message", normalize(message))
		n.Notify(ctx, message)
	})
}

type sessionKey struct{}

// WithSession returns a context carrying the session key used by FlashStore.
func WithSession(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, sessionKey{}, key)
}

// SessionFromContext returns the session key put by WithSession.
func SessionFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(sessionKey{}).(string)
	return key, ok && key != ""
}

// Flash — сообщение, ожидающее показа пользователю.
type Flash struct {
	ID        string
	Message   string
	CreatedAt time.Time
}

// Лимиты очереди сообщений: клиент без cookie получает новую сессию на каждый
// запрос и может не вернуться за своими сообщениями.
const (
	DefaultMaxSessions   = 4096
	DefaultMaxPerSession = 16
	DefaultFlashTTL      = 10 * time.Minute
)

// FlashStore keeps pending messages per session until the next page render.
// Sessions are evicted least-recently-used beyond maxSessions or after ttl;
// each queue keeps only its newest maxPerSession messages.
type FlashStore struct {
	mu            sync.Mutex
	bySession     *expirable.LRU[string, []Flash]
	maxPerSession int
	now           func() time.Time
}

func NewFlashStore() *FlashStore {
	return NewFlashStoreSize(DefaultMaxSessions, DefaultMaxPerSession, DefaultFlashTTL)
}

// NewFlashStoreSize creates a store with explicit limits.
func NewFlashStoreSize(maxSessions, maxPerSession int, ttl time.Duration) *FlashStore {
	if maxPerSession <= 0 {
		maxPerSession = DefaultMaxPerSession
	}
	return &FlashStore{
		bySession:     expirable.NewLRU[string, []Flash](maxSessions, nil, ttl),
		maxPerSession: maxPerSession,
		now:           time.Now,
	}
}

// Notify queues message for the session found in ctx. Without a session the
// message is dropped.
func (s *FlashStore) Notify(ctx context.Context, message string) {
	key, ok := SessionFromContext(ctx)
	if !ok {
		return
	}
	s.Add(key, message)
}

// Add queues message for key.
func (s *FlashStore) Add(key, message string) {
	if key == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	queue, _ := s.bySession.Get(key)
	queue = append(queue, Flash{
		ID:        uuid.NewString(),
		Message:   normalize(message),
		CreatedAt: s.now(),
	})
	if over := len(queue) - s.maxPerSession; over > 0 {
		queue = append([]Flash(nil), queue[over:]...)
	}
	s.bySession.Add(key, queue)
}

// Pop returns and forgets all pending messages for key, oldest first.
func (s *FlashStore) Pop(key string) []Flash {
	if key == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	flashes, ok := s.bySession.Get(key)
	if !ok || len(flashes) == 0 {
		return nil
	}
	s.bySession.Remove(key)
	out := make([]Flash, len(flashes))
	copy(out, flashes)
	return out
}

// Sessions returns the number of sessions with pending messages.
func (s *FlashStore) Sessions() int {
	return s.bySession.Len()
}

// Len returns the number of pending messages for key.
func (s *FlashStore) Len(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	queue, _ := s.bySession.Get(key)
	return len(queue)
}

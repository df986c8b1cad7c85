package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"NotesApp/internal/client/model"
)

const statusSuccess = "success"

// envelope — общий формат ответа notes API.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client wraps the remote notes API operations.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.SugaredLogger
	timeout *time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero disables it. It applies to the
// final http.Client regardless of option order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = &d
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for the API rooted at baseURL (e.g. https://host/v2).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout != nil {
		// копия, чтобы не менять переданный снаружи клиент
		hc := *c.http
		hc.Timeout = *c.timeout
		c.http = &hc
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// ListActive returns notes that are not archived. Archived entries the service
// may include are filtered out.
func (c *Client) ListActive(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if _, err := c.do(ctx, OpListActive, http.MethodGet, "/notes", nil, &notes); err != nil {
		return nil, err
	}
	active := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		if !n.Archived {
			active = append(active, n)
		}
	}
	return active, nil
}

// ListArchived returns archived notes.
func (c *Client) ListArchived(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if _, err := c.do(ctx, OpListArchived, http.MethodGet, "/notes/archived", nil, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

// Get returns a single note.
func (c *Client) Get(ctx context.Context, id string) (*model.Note, error) {
	var note model.Note
	if _, err := c.do(ctx, OpGet, http.MethodGet, notePath(id, ""), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// Create creates a note; the service assigns id and createdAt.
func (c *Client) Create(ctx context.Context, title, body string) (*model.Note, error) {
	var note model.Note
	payload := model.Draft{Title: title, Body: body}
	if _, err := c.do(ctx, OpCreate, http.MethodPost, "/notes", payload, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// Archive moves a note to the archived partition. Returns the service message.
func (c *Client) Archive(ctx context.Context, id string) (string, error) {
	return c.do(ctx, OpArchive, http.MethodPost, notePath(id, "archive"), nil, nil)
}

// Unarchive moves a note back to the active partition.
func (c *Client) Unarchive(ctx context.Context, id string) (string, error) {
	return c.do(ctx, OpUnarchive, http.MethodPost, notePath(id, "unarchive"), nil, nil)
}

// Delete removes a note.
func (c *Client) Delete(ctx context.Context, id string) (string, error) {
	return c.do(ctx, OpDelete, http.MethodDelete, notePath(id, ""), nil, nil)
}

func notePath(id, action string) string {
	p := "/notes/" + url.PathEscape(id)
	if action != "" {
		p += "/" + action
	}
	return p
}

// do выполняет запрос, разбирает конверт ответа и (если out != nil) декодирует data.
// Возвращает message из конверта.
func (c *Client) do(ctx context.Context, op, method, path string, payload any, out any) (string, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return "", &Error{Kind: KindService, Op: op, Err: err}
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warnw("notes api request failed", "op", op, "method", method, "path", path, "error", err)
		return "", &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Op: op, Status: resp.StatusCode, Err: err}
	}
	c.logger.Debugw("notes api request",
		"op", op,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			// не-JSON тело при ошибочном статусе — это ошибка сервиса
			return "", &Error{Kind: KindService, Op: op, Status: resp.StatusCode, Err: err}
		}
		return "", &Error{Kind: KindDecode, Op: op, Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || env.Status != statusSuccess {
		return "", &Error{
			Kind:    KindService,
			Op:      op,
			Status:  resp.StatusCode,
			Message: env.Message,
			Err:     fmt.Errorf("status %d (%s)", resp.StatusCode, env.Status),
		}
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", &Error{Kind: KindDecode, Op: op, Status: resp.StatusCode, Err: err}
		}
	}
	return env.Message, nil
}

package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"

	"NotesApp/internal/client/model"
	"NotesApp/internal/client/notify"
)

//go:embed templates/*.html
var templateFS embed.FS

const defaultLayout = "02/01/2006, 15:04:05"

// Options control how timestamps and bodies are rendered.
type Options struct {
	Location   *time.Location
	TimeLayout string
	Markdown   bool
	Now        func() time.Time
}

// Renderer turns notes into HTML. It is safe for concurrent use.
type Renderer struct {
	opts Options
	tmpl *template.Template
	md   goldmark.Markdown
}

func New(opts Options) (*Renderer, error) {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.TimeLayout == "" {
		opts.TimeLayout = defaultLayout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	t, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{opts: opts, tmpl: t, md: goldmark.New()}, nil
}

// MustNew is New that panics on error. Templates are embedded, so an error
// here means a broken build.
func MustNew(opts Options) *Renderer {
	r, err := New(opts)
	if err != nil {
		panic(err)
	}
	return r
}

type cardData struct {
	Note         model.Note
	Body         template.HTML
	Created      string
	Relative     string
	ArchiveClass string
	ArchiveLabel string
	ArchivedAttr string
}

// Card renders one note as an HTML fragment.
func (r *Renderer) Card(note model.Note) (template.HTML, error) {
	body, err := r.body(note.Body)
	if err != nil {
		return "", err
	}
	data := cardData{
		Note:         note,
		Body:         body,
		Created:      r.FormatTime(note.CreatedAt),
		Relative:     humanize.RelTime(note.CreatedAt, r.opts.Now(), "ago", "from now"),
		ArchiveClass: "btn-success",
		ArchiveLabel: "Archive",
		ArchivedAttr: "false",
	}
	if note.Archived {
		data.ArchiveClass = "btn-warning"
		data.ArchiveLabel = "Unarchive"
		data.ArchivedAttr = "true"
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "note_card", data); err != nil {
		return "", fmt.Errorf("render card %s: %w", note.ID, err)
	}
	return template.HTML(buf.String()), nil
}

// FormatTime formats t in the configured location and layout.
func (r *Renderer) FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(r.opts.Location).Format(r.opts.TimeLayout)
}

func (r *Renderer) body(text string) (template.HTML, error) {
	if !r.opts.Markdown {
		return template.HTML("<p>" + template.HTMLEscapeString(text) + "</p>"), nil
	}
	// goldmark без WithUnsafe не пропускает сырой HTML
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// FormState — состояние формы добавления заметки.
type FormState struct {
	Title   string
	Body    string
	Invalid bool
}

// PageData is everything the page templates need.
type PageData struct {
	Title         string
	Search        string
	Active        []template.HTML
	Archived      []template.HTML
	LoadingHidden bool
	Stale         bool
	Form          FormState
	Notifications []notify.Flash
	Detail        template.HTML

	ContentHTML template.HTML
}

// Home renders the notes page.
func (r *Renderer) Home(w io.Writer, data PageData) error {
	if data.Title == "" {
		data.Title = "Notes App"
	}
	return r.page(w, "home", data)
}

// NoteDetail renders a page with a single note card.
func (r *Renderer) NoteDetail(w io.Writer, data PageData) error {
	if data.Title == "" {
		data.Title = "Note"
	}
	return r.page(w, "note_detail", data)
}

func (r *Renderer) page(w io.Writer, content string, data PageData) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, content, data); err != nil {
		return fmt.Errorf("render %s: %w", content, err)
	}
	data.ContentHTML = template.HTML(buf.String())
	return r.tmpl.ExecuteTemplate(w, "base", data)
}

package config

import (
	"flag"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DefaultNotesAPIURL = "https://notes-api.dicoding.dev/v2"
	DefaultListenAddr  = "localhost:8080"
	DefaultAPIAddr     = "localhost:8081"
	DefaultTimeLayout  = "02/01/2006, 15:04:05"
)

type Config struct {
	// Client-side settings
	NotesAPIURL    string        `env:"NOTES_API_URL"`
	ListenAddr     string        `env:"LISTEN_ADDR"`
	SessionSecret  string        `env:"SESSION_SECRET"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	TimeZone       string        `env:"TIME_ZONE"`
	TimeLayout     string        `env:"TIME_LAYOUT"`
	RenderMarkdown bool          `env:"RENDER_MARKDOWN"`

	// Notes API service settings
	APIListenAddr string `env:"API_LISTEN_ADDR"`
	DatabaseDSN   string `env:"DATABASE_URI"`

	Version bool `env:"-"` // show version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags переопределяют значения из env
	flag.StringVar(&cfg.NotesAPIURL, "api-url", cfg.NotesAPIURL, "base URL of the notes API")
	flag.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address of the web client (host:port)")
	flag.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "secret for signing the session cookie")
	flag.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "timeout of a single notes API request")
	flag.StringVar(&cfg.TimeZone, "tz", cfg.TimeZone, "time zone for note timestamps (IANA name or Local)")
	flag.BoolVar(&cfg.RenderMarkdown, "markdown", cfg.RenderMarkdown, "render note bodies as markdown")
	flag.StringVar(&cfg.APIListenAddr, "api-addr", cfg.APIListenAddr, "address of the notes API service (host:port)")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN of the notes API service")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "show version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.NotesAPIURL = strings.TrimRight(strings.TrimSpace(c.NotesAPIURL), "/")
	if c.NotesAPIURL == "" {
		c.NotesAPIURL = DefaultNotesAPIURL
	}
	// адреса только в виде host:port, иначе значение по умолчанию
	if !hostPortRe.MatchString(c.ListenAddr) {
		c.ListenAddr = DefaultListenAddr
	}
	if !hostPortRe.MatchString(c.APIListenAddr) {
		c.APIListenAddr = DefaultAPIAddr
	}
	if c.SessionSecret == "" {
		c.SessionSecret = "dev-session-secret"
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 10 * time.Second
	}
	if c.TimeZone == "" {
		c.TimeZone = "Local"
	}
	if c.TimeLayout == "" {
		c.TimeLayout = DefaultTimeLayout
	}
	if c.DatabaseDSN == "" {
		c.DatabaseDSN = "notes.db"
	}
}

// Location resolves TimeZone, falling back to time.Local for unknown names.
func (c *Config) Location() *time.Location {
	if c.TimeZone == "" || strings.EqualFold(c.TimeZone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

package main

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"NotesApp/internal/client/api"
	"NotesApp/internal/client/notify"
	"NotesApp/internal/client/render"
	"NotesApp/internal/client/service"
	"NotesApp/internal/client/web"
	"NotesApp/internal/config"
	"NotesApp/internal/middleware"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()
	if cfg.Version {
		fmt.Printf("Notes App web client\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return
	}

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	client := api.NewClient(cfg.NotesAPIURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(sugar),
	)

	renderer, err := render.New(render.Options{
		Location:   cfg.Location(),
		TimeLayout: cfg.TimeLayout,
		Markdown:   cfg.RenderMarkdown,
	})
	if err != nil {
		sugar.Fatalw("failed to load templates", "error", err)
	}

	flash := notify.NewFlashStore()
	notifier := notify.Logged(flash, sugar)

	sync := service.NewSynchronizer(client, renderer, notifier, sugar)
	notes := service.NewNotes(client, notifier, sugar)

	h := web.NewHandler(sync, notes, renderer, flash, sugar, cfg)

	sugar.Infow("Starting web client",
		"addr", cfg.ListenAddr,
		"api", cfg.NotesAPIURL,
		"timeout", cfg.RequestTimeout,
		"markdown", cfg.RenderMarkdown,
	)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}

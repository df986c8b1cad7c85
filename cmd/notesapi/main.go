package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"NotesApp/internal/config"
	"NotesApp/internal/handlers"
	"NotesApp/internal/middleware"
	"NotesApp/internal/repo"
	"NotesApp/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()
	if cfg.Version {
		fmt.Printf("Notes API\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return
	}

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	noteRepo := repo.NewNoteRepository(gormDB)
	noteService := service.NewNoteService(noteRepo, sugar)

	h := handlers.NewHandler(noteService, sugar, cfg)

	addr := cfg.APIListenAddr

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	// DSN может содержать пароль, поэтому логируем только драйвер
	sugar.Infow("Config",
		"APIListenAddr", cfg.APIListenAddr,
		"Postgres", repo.IsPostgresDSN(cfg.DatabaseDSN),
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}

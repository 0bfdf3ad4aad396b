package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/i4ali/flygen/internal/providers/image"
)

// App bundles the dependencies shared by all HTTP handlers.
type App struct {
	Generator image.Generator
	Logger    zerolog.Logger
}

func NewApp(generator image.Generator, logger zerolog.Logger) *App {
	return &App{Generator: generator, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}
